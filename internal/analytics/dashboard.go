package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/AbdelwaliNour/Hospital/pkg/model"
)

const (
	// AvgTreatmentTime is the average treatment time in minutes shown on the dashboard
	AvgTreatmentTime = 32
	// PatientSatisfaction is the satisfaction score shown on the dashboard
	PatientSatisfaction = 4.8
)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// VisitComparison compares visit counts of the current and previous calendar month
type VisitComparison struct {
	ThisMonth int `json:"thisMonth"`
	LastMonth int `json:"lastMonth"`
	Change    int `json:"change"`
}

// DashboardStats is the composite summary behind the dashboard header cards
type DashboardStats struct {
	TodayAppointments     int             `json:"todayAppointments"`
	CompletedAppointments int             `json:"completedAppointments"`
	RemainingAppointments int             `json:"remainingAppointments"`
	PatientVisits         VisitComparison `json:"patientVisits"`
	AvgTreatmentTime      int             `json:"avgTreatmentTime"`
	PatientSatisfaction   float64         `json:"patientSatisfaction"`
}

// ConditionCount is the number of visits recorded for one condition
type ConditionCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthlyCount is the number of visits in one month
type MonthlyCount struct {
	Name   string `json:"name"`
	Visits int    `json:"visits"`
}

// ComputeDashboardStats summarises today's appointments and compares this
// month's visits with last month's. Months are calendar months in now's
// location, so January is compared with December of the previous year.
func ComputeDashboardStats(appointments []model.Appointment, visits []model.Visit, now time.Time) DashboardStats {
	stats := DashboardStats{
		AvgTreatmentTime:    AvgTreatmentTime,
		PatientSatisfaction: PatientSatisfaction,
	}

	for _, a := range appointments {
		if !SameDay(a.Date, now) {
			continue
		}
		stats.TodayAppointments++
		if a.Status == model.AppointmentStatusCompleted {
			stats.CompletedAppointments++
		}
	}
	stats.RemainingAppointments = stats.TodayAppointments - stats.CompletedAppointments
	stats.PatientVisits = CompareMonths(visits, now)

	return stats
}

// CompareMonths counts visits in now's calendar month and the one before it
func CompareMonths(visits []model.Visit, now time.Time) VisitComparison {
	loc := now.Location()
	thisYear, thisMonth, _ := now.Date()
	prev := time.Date(thisYear, thisMonth, 1, 0, 0, 0, 0, loc).AddDate(0, -1, 0)
	lastYear, lastMonth := prev.Year(), prev.Month()

	var c VisitComparison
	for _, v := range visits {
		if v.Date.IsZero() {
			continue
		}
		y, m, _ := v.Date.In(loc).Date()
		switch {
		case y == thisYear && m == thisMonth:
			c.ThisMonth++
		case y == lastYear && m == lastMonth:
			c.LastMonth++
		}
	}
	c.Change = c.ThisMonth - c.LastMonth
	return c
}

// ChangeText renders a month-over-month comparison for display
func ChangeText(c VisitComparison) string {
	if c.ThisMonth == 0 && c.LastMonth == 0 {
		return "No visit data available"
	}
	if c.Change > 0 {
		return fmt.Sprintf("↑ %d from last month", c.Change)
	}
	return fmt.Sprintf("↓ %d from last month", -c.Change)
}

// MonthlyVisits counts visits per month of year, Jan through Dec
func MonthlyVisits(visits []model.Visit, year int, loc *time.Location) []MonthlyCount {
	var counts [12]int
	for _, v := range visits {
		if v.Date.IsZero() {
			continue
		}
		d := v.Date.In(loc)
		if d.Year() == year {
			counts[d.Month()-1]++
		}
	}

	out := make([]MonthlyCount, 12)
	for i, name := range monthNames {
		out[i] = MonthlyCount{Name: name, Visits: counts[i]}
	}
	return out
}

// ConditionFrequency tallies visits per condition in order of first appearance.
// Blank conditions are ignored.
func ConditionFrequency(visits []model.Visit) []ConditionCount {
	out := []ConditionCount{}
	positions := make(map[string]int)
	for _, v := range visits {
		if strings.TrimSpace(v.Condition) == "" {
			continue
		}
		if i, ok := positions[v.Condition]; ok {
			out[i].Value++
			continue
		}
		positions[v.Condition] = len(out)
		out = append(out, ConditionCount{Name: v.Condition, Value: 1})
	}
	return out
}
