package handler

import (
	"github.com/AbdelwaliNour/Hospital/pkg/api"
	"github.com/gin-gonic/gin"
)

// APIHandler implements api.ServerInterface by delegating to the individual handlers
type APIHandler struct {
	Directory    *DirectoryHandler
	Appointment  *AppointmentHandler
	Visit        *VisitHandler
	HealthMetric *HealthMetricHandler
	Dashboard    *DashboardHandler
	Report       *ReportHandler
	Health       *HealthHandler
}

var _ api.ServerInterface = (*APIHandler)(nil)

// Directory endpoints
func (h *APIHandler) GetCurrentUser(c *gin.Context) {
	h.Directory.GetCurrentUser(c)
}

func (h *APIHandler) ListDoctors(c *gin.Context) {
	h.Directory.ListDoctors(c)
}

func (h *APIHandler) GetDoctor(c *gin.Context, id int) {
	h.Directory.GetDoctor(c, id)
}

func (h *APIHandler) ListPatients(c *gin.Context) {
	h.Directory.ListPatients(c)
}

func (h *APIHandler) GetPatient(c *gin.Context, id int) {
	h.Directory.GetPatient(c, id)
}

func (h *APIHandler) ListDepartments(c *gin.Context) {
	h.Directory.ListDepartments(c)
}

func (h *APIHandler) GetDepartment(c *gin.Context, id int) {
	h.Directory.GetDepartment(c, id)
}

// Health metric endpoints
func (h *APIHandler) ListHealthMetrics(c *gin.Context, id int) {
	h.HealthMetric.ListHealthMetrics(c, id)
}

func (h *APIHandler) CreateHealthMetric(c *gin.Context, id int) {
	h.HealthMetric.CreateHealthMetric(c, id)
}

func (h *APIHandler) GetVitals(c *gin.Context, id int) {
	h.HealthMetric.GetVitals(c, id)
}

// Appointment endpoints
func (h *APIHandler) ListAppointments(c *gin.Context, params api.ListAppointmentsParams) {
	h.Appointment.ListAppointments(c, params)
}

func (h *APIHandler) CreateAppointment(c *gin.Context) {
	h.Appointment.CreateAppointment(c)
}

func (h *APIHandler) GetAppointment(c *gin.Context, id int) {
	h.Appointment.GetAppointment(c, id)
}

func (h *APIHandler) UpdateAppointment(c *gin.Context, id int) {
	h.Appointment.UpdateAppointment(c, id)
}

func (h *APIHandler) DeleteAppointment(c *gin.Context, id int) {
	h.Appointment.DeleteAppointment(c, id)
}

// Visit endpoints
func (h *APIHandler) ListVisits(c *gin.Context, params api.ListVisitsParams) {
	h.Visit.ListVisits(c, params)
}

func (h *APIHandler) GetVisitHistory(c *gin.Context, params api.GetVisitHistoryParams) {
	h.Visit.GetVisitHistory(c, params)
}

// Dashboard endpoints
func (h *APIHandler) GetDashboardStats(c *gin.Context) {
	h.Dashboard.GetDashboardStats(c)
}

func (h *APIHandler) GetDepartmentDistribution(c *gin.Context) {
	h.Dashboard.GetDepartmentDistribution(c)
}

func (h *APIHandler) ListStaff(c *gin.Context, params api.ListStaffParams) {
	h.Dashboard.ListStaff(c, params)
}

func (h *APIHandler) GetAnalytics(c *gin.Context, params api.GetAnalyticsParams) {
	h.Dashboard.GetAnalytics(c, params)
}

// Report endpoints
func (h *APIHandler) GenerateReport(c *gin.Context) {
	h.Report.GenerateReport(c)
}

func (h *APIHandler) GetReport(c *gin.Context, id string) {
	h.Report.GetReport(c, id)
}

func (h *APIHandler) GetHealth(c *gin.Context) {
	h.Health.GetHealth(c)
}
