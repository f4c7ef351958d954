package service

import (
	"context"
	"fmt"

	"github.com/AbdelwaliNour/Hospital/internal/analytics"
	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"go.uber.org/zap"
)

// DashboardRepositoryInterface defines the data access the dashboard needs
type DashboardRepositoryInterface interface {
	Appointments() []model.Appointment
	Visits() []model.Visit
	Departments() []model.Department
	Doctors() []model.Doctor
}

// DepartmentDistribution holds the dashboard's two department charts
type DepartmentDistribution struct {
	Patients []analytics.DepartmentShare `json:"patients"`
	Staff    []analytics.DepartmentShare `json:"staff"`
}

// StaffDirectory is the staff page: matching doctors plus per-department counts
type StaffDirectory struct {
	Doctors      []model.Doctor              `json:"doctors"`
	ByDepartment []analytics.DepartmentStaff `json:"byDepartment"`
}

// DashboardService handles dashboard, staff and analytics read models
type DashboardService struct {
	repo     DashboardRepositoryInterface
	calendar Calendar
	logger   *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(repo DashboardRepositoryInterface, calendar Calendar, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		repo:     repo,
		calendar: calendar,
		logger:   logger,
	}
}

// Stats returns the dashboard counters as of now
func (s *DashboardService) Stats(ctx context.Context) analytics.DashboardStats {
	stats := analytics.ComputeDashboardStats(s.repo.Appointments(), s.repo.Visits(), s.calendar.now())

	s.logger.Debug("dashboard stats computed",
		zap.Int("today_appointments", stats.TodayAppointments),
		zap.Int("completed_appointments", stats.CompletedAppointments),
	)
	return stats
}

// DepartmentDistribution returns the patient and staff shares per department
func (s *DashboardService) DepartmentDistribution(ctx context.Context) DepartmentDistribution {
	departments := s.repo.Departments()
	return DepartmentDistribution{
		Patients: analytics.PatientDistribution(departments),
		Staff:    analytics.StaffDistribution(departments),
	}
}

// Staff filters doctors by department and search text
func (s *DashboardService) Staff(ctx context.Context, department, search string) StaffDirectory {
	doctors := s.repo.Doctors()
	return StaffDirectory{
		Doctors:      analytics.FilterStaff(doctors, department, search),
		ByDepartment: analytics.StaffBySpecialty(s.repo.Departments(), doctors),
	}
}

// Analytics builds the analytics report. An empty timeRange uses the default.
func (s *DashboardService) Analytics(ctx context.Context, timeRange string) (analytics.Report, error) {
	tr := analytics.DefaultTimeRange
	if timeRange != "" {
		tr = analytics.TimeRange(timeRange)
	}
	if !tr.Valid() {
		return analytics.Report{}, invalid("timeRange", fmt.Sprintf("unknown time range %q", timeRange))
	}
	return analytics.BuildReport(s.repo.Visits(), s.repo.Departments(), tr, s.calendar.now()), nil
}
