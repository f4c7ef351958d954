package api

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// Error codes used in ErrorResponse
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternalError   = "INTERNAL_ERROR"
)

// FieldError describes one invalid field of a request
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details *string       `json:"details,omitempty"`
	Errors  *[]FieldError `json:"errors,omitempty"`
}

// NewAppointment defines model for NewAppointment.
type NewAppointment struct {
	PatientId int        `json:"patientId"`
	DoctorId  int        `json:"doctorId"`
	Date      types.Date `json:"date"`
	Time      string     `json:"time"`
	Status    *string    `json:"status,omitempty"`
	Condition *string    `json:"condition,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// AppointmentUpdate defines model for AppointmentUpdate.
type AppointmentUpdate struct {
	PatientId *int        `json:"patientId,omitempty"`
	DoctorId  *int        `json:"doctorId,omitempty"`
	Date      *types.Date `json:"date,omitempty"`
	Time      *string     `json:"time,omitempty"`
	Status    *string     `json:"status,omitempty"`
	Condition *string     `json:"condition,omitempty"`
	Notes     *string     `json:"notes,omitempty"`
}

// NewHealthMetric defines model for NewHealthMetric.
type NewHealthMetric struct {
	Timestamp     *time.Time `json:"timestamp,omitempty"`
	HeartRate     *int       `json:"heartRate,omitempty"`
	SleepHours    *int       `json:"sleepHours,omitempty"`
	BloodPressure *string    `json:"bloodPressure,omitempty"`
	Temperature   *int       `json:"temperature,omitempty"`
	Weight        *int       `json:"weight,omitempty"`
}

// GenerateReportRequest defines model for GenerateReportRequest.
type GenerateReportRequest struct {
	TimeRange *string `json:"timeRange,omitempty"`
}

// ReportResponse defines model for ReportResponse.
type ReportResponse struct {
	ReportId    string    `json:"reportId"`
	TimeRange   string    `json:"timeRange"`
	GeneratedAt time.Time `json:"generatedAt"`
	DownloadUrl string    `json:"downloadUrl"`
}

// ListAppointmentsParams defines parameters for ListAppointments.
type ListAppointmentsParams struct {
	DoctorId  *int    `form:"doctorId,omitempty" json:"doctorId,omitempty"`
	PatientId *int    `form:"patientId,omitempty" json:"patientId,omitempty"`
	Status    *string `form:"status,omitempty" json:"status,omitempty"`
	Expand    *bool   `form:"expand,omitempty" json:"expand,omitempty"`
}

// ListVisitsParams defines parameters for ListVisits.
type ListVisitsParams struct {
	DoctorId  *int `form:"doctorId,omitempty" json:"doctorId,omitempty"`
	PatientId *int `form:"patientId,omitempty" json:"patientId,omitempty"`
}

// GetVisitHistoryParams defines parameters for GetVisitHistory.
type GetVisitHistoryParams struct {
	Window   *string `form:"window,omitempty" json:"window,omitempty"`
	Page     *int    `form:"page,omitempty" json:"page,omitempty"`
	PageSize *int    `form:"pageSize,omitempty" json:"pageSize,omitempty"`
}

// ListStaffParams defines parameters for ListStaff.
type ListStaffParams struct {
	Department *string `form:"department,omitempty" json:"department,omitempty"`
	Search     *string `form:"search,omitempty" json:"search,omitempty"`
}

// GetAnalyticsParams defines parameters for GetAnalytics.
type GetAnalyticsParams struct {
	TimeRange *string `form:"timeRange,omitempty" json:"timeRange,omitempty"`
}
