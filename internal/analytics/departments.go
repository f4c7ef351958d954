package analytics

import (
	"math"
	"strings"

	"github.com/AbdelwaliNour/Hospital/pkg/model"
)

const (
	unknownDepartmentName  = "Unknown"
	unknownDepartmentColor = "#cccccc"
)

// DepartmentShare is one slice of a department distribution chart
type DepartmentShare struct {
	DepartmentID int    `json:"departmentId"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	Count        int    `json:"count"`
	Percentage   int    `json:"percentage"`
}

// DepartmentVisits is the visit count attributed to a department
type DepartmentVisits struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// DepartmentStaff is the number of doctors whose specialty names a department
type DepartmentStaff struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// PatientDistribution returns each department's share of all patients
func PatientDistribution(departments []model.Department) []DepartmentShare {
	return distribution(departments, func(d model.Department) int { return d.PatientCount })
}

// StaffDistribution returns each department's share of all staff
func StaffDistribution(departments []model.Department) []DepartmentShare {
	return distribution(departments, func(d model.Department) int { return d.StaffCount })
}

// distribution rounds each department's share to a whole percentage.
// Negative counts are treated as zero; a zero total gives every department 0%.
func distribution(departments []model.Department, count func(model.Department) int) []DepartmentShare {
	total := 0
	for _, d := range departments {
		total += max(count(d), 0)
	}

	out := make([]DepartmentShare, 0, len(departments))
	for _, d := range departments {
		c := max(count(d), 0)
		share := DepartmentShare{
			DepartmentID: d.ID,
			Name:         d.Name,
			Color:        d.Color,
			Count:        c,
		}
		if total > 0 {
			share.Percentage = int(math.Round(100 * float64(c) / float64(total)))
		}
		out = append(out, share)
	}
	return out
}

// DepartmentVisitsByBucket attributes visits to departments by bucketing
// doctor ids: a visit counts for a department when
// doctorId mod n == departmentId mod n, n being the number of departments.
// This is an approximation kept for dashboard compatibility and is not
// a real doctor-to-department join; see StaffBySpecialty for that.
func DepartmentVisitsByBucket(departments []model.Department, visits []model.Visit) []DepartmentVisits {
	n := len(departments)
	out := make([]DepartmentVisits, 0, n)
	for _, d := range departments {
		if d.Name == "" || d.Color == "" {
			out = append(out, DepartmentVisits{Name: unknownDepartmentName, Color: unknownDepartmentColor})
			continue
		}
		bucket := mod(d.ID, n)
		count := 0
		for _, v := range visits {
			if v.DoctorID <= 0 {
				continue
			}
			if mod(v.DoctorID, n) == bucket {
				count++
			}
		}
		out = append(out, DepartmentVisits{Name: d.Name, Value: count, Color: d.Color})
	}
	return out
}

// StaffBySpecialty counts the doctors whose specialty matches each
// department name, ignoring case.
func StaffBySpecialty(departments []model.Department, doctors []model.Doctor) []DepartmentStaff {
	out := make([]DepartmentStaff, 0, len(departments))
	for _, d := range departments {
		count := 0
		for _, doc := range doctors {
			if strings.EqualFold(doc.Specialty, d.Name) {
				count++
			}
		}
		out = append(out, DepartmentStaff{Name: d.Name, Color: d.Color, Count: count})
	}
	return out
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
