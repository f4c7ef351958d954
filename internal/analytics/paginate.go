package analytics

const (
	// DefaultPageSize is used when a caller asks for a non-positive page size
	DefaultPageSize = 4
	// MaxPageSize is the largest page size accepted at the API boundary
	MaxPageSize = 100
)

// Page is one page of a listing
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate returns the 1-indexed page of items. Pages outside
// [1, TotalPages] come back with an empty Items slice.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: total / size,
	}
	if total%size != 0 {
		p.TotalPages++
	}
	if page < 1 || page > p.TotalPages {
		return p
	}

	start := (page - 1) * size
	end := start + min(size, total-start)
	p.Items = append(p.Items, items[start:end]...)
	return p
}
