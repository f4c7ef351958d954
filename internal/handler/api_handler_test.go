package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/AbdelwaliNour/Hospital/internal/analytics"
	"github.com/AbdelwaliNour/Hospital/internal/audit"
	"github.com/AbdelwaliNour/Hospital/internal/service"
	"github.com/AbdelwaliNour/Hospital/pkg/api"
	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUser(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/users/current", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	user := decode[model.User](t, w)
	assert.Equal(t, "admin", user.Username)
}

func TestDirectoryEndpoints(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"list doctors", "/api/doctors", http.StatusOK},
		{"get doctor", "/api/doctors/2", http.StatusOK},
		{"unknown doctor", "/api/doctors/99", http.StatusNotFound},
		{"bad doctor id", "/api/doctors/abc", http.StatusBadRequest},
		{"list patients", "/api/patients", http.StatusOK},
		{"get patient", "/api/patients/1", http.StatusOK},
		{"unknown patient", "/api/patients/42", http.StatusNotFound},
		{"list departments", "/api/departments", http.StatusOK},
		{"get department", "/api/departments/1", http.StatusOK},
		{"unknown department", "/api/departments/9", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}

	doctors := decode[[]model.Doctor](t, ts.do(http.MethodGet, "/api/doctors", nil))
	assert.Len(t, doctors, 2)

	resp := decode[api.ErrorResponse](t, ts.do(http.MethodGet, "/api/doctors/abc", nil))
	assert.Equal(t, api.CodeValidationError, resp.Code)
	require.NotNil(t, resp.Errors)
	assert.Equal(t, "id", (*resp.Errors)[0].Field)
}

func TestAppointmentLifecycle(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/appointments", map[string]interface{}{
		"patientId": 1,
		"doctorId":  1,
		"date":      "2018-04-06",
		"time":      "09:00 AM",
		"condition": "Mumps Stage 3",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[model.Appointment](t, w)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, model.AppointmentStatusScheduled, created.Status)

	// same doctor, same slot
	w = ts.do(http.MethodPost, "/api/appointments", map[string]interface{}{
		"patientId": 2,
		"doctorId":  1,
		"date":      "2018-04-06",
		"time":      "09:00 AM",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, api.CodeConflict, decode[api.ErrorResponse](t, w).Code)

	w = ts.do(http.MethodGet, "/api/appointments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPatch, "/api/appointments/1", map[string]interface{}{"status": "completed", "notes": "done"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[model.Appointment](t, w)
	assert.Equal(t, model.AppointmentStatusCompleted, updated.Status)
	assert.Equal(t, "Mumps Stage 3", *updated.Condition)

	w = ts.do(http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[analytics.DashboardStats](t, w)
	assert.Equal(t, 1, stats.TodayAppointments)
	assert.Equal(t, 1, stats.CompletedAppointments)

	w = ts.do(http.MethodDelete, "/api/appointments/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = ts.do(http.MethodDelete, "/api/appointments/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = ts.do(http.MethodPatch, "/api/appointments/1", map[string]interface{}{"notes": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	ops := make([]audit.OperationType, 0, 3)
	for _, e := range ts.audit.Recent(0) {
		assert.Equal(t, "1", e.UserID)
		ops = append(ops, e.OperationType)
	}
	assert.Equal(t, []audit.OperationType{audit.OperationDelete, audit.OperationUpdate, audit.OperationCreate}, ops)
}

func TestCreateAppointment_ValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		body  interface{}
		field string
	}{
		{"malformed json", `{"patientId": 1,`, "body"},
		{"missing doctor", map[string]interface{}{"patientId": 1, "date": "2018-04-06", "time": "09:00 AM"}, "doctorId"},
		{"bad date", map[string]interface{}{"patientId": 1, "doctorId": 1, "date": "06/04/2018", "time": "09:00 AM"}, "date"},
		{"unknown status", map[string]interface{}{"patientId": 1, "doctorId": 1, "date": "2018-04-06", "time": "09:00 AM", "status": "booked"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(http.MethodPost, "/api/appointments", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			resp := decode[api.ErrorResponse](t, w)
			assert.Equal(t, api.CodeValidationError, resp.Code)
			require.NotNil(t, resp.Errors)
			fields := make([]string, 0, len(*resp.Errors))
			for _, f := range *resp.Errors {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
	assert.Empty(t, ts.store.Appointments())
}

func TestUpdateAppointment_EmptyBody(t *testing.T) {
	ts := newTestServer(t)
	ts.store.CreateAppointment(model.Appointment{PatientID: 1, DoctorID: 1, Date: testNow, Time: "09:00 AM", Status: model.AppointmentStatusScheduled})

	w := ts.do(http.MethodPatch, "/api/appointments/1", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAppointments(t *testing.T) {
	ts := newTestServer(t)
	ts.store.CreateAppointment(model.Appointment{PatientID: 1, DoctorID: 1, Date: testNow, Time: "09:00 AM", Status: model.AppointmentStatusScheduled})
	ts.store.CreateAppointment(model.Appointment{PatientID: 2, DoctorID: 2, Date: testNow, Time: "09:00 AM", Status: model.AppointmentStatusCancelled})

	all := decode[[]model.Appointment](t, ts.do(http.MethodGet, "/api/appointments", nil))
	assert.Len(t, all, 2)

	byDoctor := decode[[]model.Appointment](t, ts.do(http.MethodGet, "/api/appointments?doctorId=2&patientId=1", nil))
	require.Len(t, byDoctor, 1)
	assert.Equal(t, 2, byDoctor[0].ID)

	cancelled := decode[[]model.Appointment](t, ts.do(http.MethodGet, "/api/appointments?status=cancelled", nil))
	require.Len(t, cancelled, 1)

	expanded := decode[[]analytics.EnrichedAppointment](t, ts.do(http.MethodGet, "/api/appointments?expand=true&patientId=1", nil))
	require.Len(t, expanded, 1)
	require.NotNil(t, expanded[0].Patient)
	assert.Equal(t, "Wade Warren", expanded[0].Patient.Name)

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/appointments?status=lost", nil).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/appointments?doctorId=one", nil).Code)
}

func TestVisitEndpoints(t *testing.T) {
	ts := newTestServer(t)

	visits := decode[[]model.Visit](t, ts.do(http.MethodGet, "/api/visits?patientId=1", nil))
	assert.Len(t, visits, 2)

	today := decode[analytics.Page[analytics.EnrichedVisit]](t, ts.do(http.MethodGet, "/api/visits/history?window=today", nil))
	require.Len(t, today.Items, 1)
	assert.Equal(t, 2, today.Items[0].ID)
	require.NotNil(t, today.Items[0].Patient)
	assert.Equal(t, "Cody Fisher", today.Items[0].Patient.Name)

	month := decode[analytics.Page[analytics.EnrichedVisit]](t, ts.do(http.MethodGet, "/api/visits/history?window=thisMonth&pageSize=1&page=2", nil))
	assert.Equal(t, 2, month.Total)
	assert.Equal(t, 2, month.TotalPages)
	require.Len(t, month.Items, 1)
	assert.Equal(t, 2, month.Items[0].ID)

	w := ts.do(http.MethodGet, "/api/visits/history?pageSize=9223372036854775807", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[api.ErrorResponse](t, w)
	require.NotNil(t, resp.Errors)
	assert.Equal(t, "pageSize", (*resp.Errors)[0].Field)

	w = ts.do(http.MethodGet, "/api/visits/history?window=yesterday", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp = decode[api.ErrorResponse](t, w)
	require.NotNil(t, resp.Errors)
	assert.Equal(t, "window", (*resp.Errors)[0].Field)
}

func TestHealthMetricEndpoints(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/patients/1/health-metrics", map[string]interface{}{
		"heartRate":     80,
		"bloodPressure": "120/80",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[model.HealthMetric](t, w)
	assert.Equal(t, 1, created.PatientID)
	assert.True(t, created.Timestamp.Equal(testNow))

	metrics := decode[[]model.HealthMetric](t, ts.do(http.MethodGet, "/api/patients/1/health-metrics", nil))
	assert.Len(t, metrics, 2)

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/patients/9/health-metrics", nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodPost, "/api/patients/9/health-metrics", map[string]interface{}{"heartRate": 70}).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodPost, "/api/patients/1/health-metrics", map[string]interface{}{}).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodPost, "/api/patients/1/health-metrics", map[string]interface{}{"heartRate": 900}).Code)

	vitals := decode[service.Vitals](t, ts.do(http.MethodGet, "/api/patients/1/vitals", nil))
	assert.Len(t, vitals.HeartRate, 2)
	require.Len(t, vitals.Sleep, 1)
	assert.Equal(t, "Apr", vitals.Sleep[0].Label)
}

func TestDashboardEndpoints(t *testing.T) {
	ts := newTestServer(t)

	dist := decode[service.DepartmentDistribution](t, ts.do(http.MethodGet, "/api/dashboard/departments", nil))
	require.Len(t, dist.Patients, 2)
	assert.Equal(t, 57, dist.Patients[0].Percentage)
	assert.Equal(t, 43, dist.Patients[1].Percentage)

	staff := decode[service.StaffDirectory](t, ts.do(http.MethodGet, "/api/staff?department=neurology", nil))
	require.Len(t, staff.Doctors, 1)
	assert.Equal(t, "Dr. Dianne Russell", staff.Doctors[0].Name)
	assert.Len(t, staff.ByDepartment, 2)

	searched := decode[service.StaffDirectory](t, ts.do(http.MethodGet, "/api/staff?search=wade", nil))
	require.Len(t, searched.Doctors, 1)

	report := decode[analytics.Report](t, ts.do(http.MethodGet, "/api/analytics?timeRange=thisYear", nil))
	assert.Equal(t, analytics.TimeRangeThisYear, report.TimeRange)
	assert.Equal(t, analytics.VisitComparison{ThisMonth: 2, LastMonth: 1, Change: 1}, report.VisitChange)
	assert.Equal(t, "↑ 1 from last month", report.VisitChangeText)
	assert.Equal(t, 1, report.VisitsSummary[2].Visits)
	assert.Equal(t, 2, report.VisitsSummary[3].Visits)

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/analytics?timeRange=decade", nil).Code)
}

func TestReportEndpoints(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/reports", map[string]interface{}{"timeRange": "thisQuarter"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	report := decode[api.ReportResponse](t, w)
	assert.Equal(t, "thisQuarter", report.TimeRange)
	assert.Equal(t, "/api/reports/"+report.ReportId, report.DownloadUrl)
	assert.Equal(t, []string{"reports/" + report.ReportId + ".pdf"}, ts.blobs.ListBlobs())

	w = ts.do(http.MethodGet, report.DownloadUrl, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	// the body is optional
	w = ts.do(http.MethodPost, "/api/reports", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "thisMonth", decode[api.ReportResponse](t, w).TimeRange)

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodPost, "/api/reports", map[string]interface{}{"timeRange": "someday"}).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/reports/3b241101-e2bb-4255-8caf-4136c566a962", nil).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/reports/not-a-report", nil).Code)
}

func TestGetHealth(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]interface{}](t, w)
	assert.Equal(t, "healthy", body["status"])
	records := body["records"].(map[string]interface{})
	assert.Equal(t, float64(3), records["visits"])
}
