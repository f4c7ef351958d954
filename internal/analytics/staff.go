package analytics

import (
	"strings"

	"github.com/AbdelwaliNour/Hospital/pkg/model"
)

// FilterStaff narrows doctors to a department and a free-text search.
// department matches the specialty ignoring case; "" and "all" match every
// doctor. search matches a case-insensitive substring of name or specialty.
func FilterStaff(doctors []model.Doctor, department, search string) []model.Doctor {
	department = strings.TrimSpace(department)
	query := strings.ToLower(strings.TrimSpace(search))

	out := make([]model.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if department != "" && !strings.EqualFold(department, "all") && !strings.EqualFold(d.Specialty, department) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(d.Name), query) &&
			!strings.Contains(strings.ToLower(d.Specialty), query) {
			continue
		}
		out = append(out, d.Clone())
	}
	return out
}
