package analytics

import (
	"time"

	"github.com/AbdelwaliNour/Hospital/pkg/model"
)

// TimeRange labels the period an analytics report was requested for
type TimeRange string

const (
	TimeRangeThisWeek    TimeRange = "thisWeek"
	TimeRangeThisMonth   TimeRange = "thisMonth"
	TimeRangeThisQuarter TimeRange = "thisQuarter"
	TimeRangeThisYear    TimeRange = "thisYear"
)

// DefaultTimeRange is used when no time range is requested
const DefaultTimeRange = TimeRangeThisMonth

// Valid reports whether r is a known time range
func (r TimeRange) Valid() bool {
	switch r {
	case TimeRangeThisWeek, TimeRangeThisMonth, TimeRangeThisQuarter, TimeRangeThisYear:
		return true
	}
	return false
}

// Report is the analytics page summary. TimeRange is recorded as metadata;
// the summaries always cover the calendar year of GeneratedAt and every visit.
type Report struct {
	GeneratedAt       time.Time          `json:"generatedAt"`
	TimeRange         TimeRange          `json:"timeRange"`
	VisitChange       VisitComparison    `json:"visitChange"`
	VisitChangeText   string             `json:"visitChangeText"`
	VisitsSummary     []MonthlyCount     `json:"visitsSummary"`
	DepartmentSummary []DepartmentVisits `json:"departmentSummary"`
	ConditionSummary  []ConditionCount   `json:"conditionSummary"`
}

// BuildReport assembles the analytics summary as of now
func BuildReport(visits []model.Visit, departments []model.Department, timeRange TimeRange, now time.Time) Report {
	change := CompareMonths(visits, now)
	return Report{
		GeneratedAt:       now,
		TimeRange:         timeRange,
		VisitChange:       change,
		VisitChangeText:   ChangeText(change),
		VisitsSummary:     MonthlyVisits(visits, now.Year(), now.Location()),
		DepartmentSummary: DepartmentVisitsByBucket(departments, visits),
		ConditionSummary:  ConditionFrequency(visits),
	}
}
