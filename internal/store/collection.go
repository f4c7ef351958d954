package store

// collection holds the records of one entity kind keyed by id.
// It is not safe for concurrent use; Store serialises access.
type collection[T any] struct {
	items  map[int]T
	order  []int
	nextID int
	clone  func(T) T
}

func newCollection[T any](clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{
		items:  make(map[int]T),
		nextID: 1,
		clone:  clone,
	}
}

// create assigns the next id through setID and stores a copy of the record
func (c *collection[T]) create(draft T, setID func(*T, int)) T {
	id := c.nextID
	c.nextID++

	record := c.clone(draft)
	setID(&record, id)
	c.items[id] = record
	c.order = append(c.order, id)

	return c.clone(record)
}

func (c *collection[T]) get(id int) (T, bool) {
	record, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(record), true
}

// all returns every record in insertion order
func (c *collection[T]) all() []T {
	return c.filter(nil)
}

// filter returns the records matching keep in insertion order; a nil keep matches everything
func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		record := c.items[id]
		if keep != nil && !keep(record) {
			continue
		}
		out = append(out, c.clone(record))
	}
	return out
}

// find returns the first record matching match in insertion order
func (c *collection[T]) find(match func(T) bool) (T, bool) {
	for _, id := range c.order {
		if record := c.items[id]; match(record) {
			return c.clone(record), true
		}
	}
	var zero T
	return zero, false
}

// replace swaps the stored record for id using merge; false if id is unknown
func (c *collection[T]) replace(id int, merge func(T) T) (T, bool) {
	current, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	updated := c.clone(merge(c.clone(current)))
	c.items[id] = updated
	return c.clone(updated), true
}

func (c *collection[T]) delete(id int) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) len() int {
	return len(c.items)
}

// clear drops every record but keeps nextID so ids are never reused
func (c *collection[T]) clear() {
	c.items = make(map[int]T)
	c.order = nil
}
