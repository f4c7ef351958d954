package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/users/current)
	GetCurrentUser(c *gin.Context)
	// (GET /api/doctors)
	ListDoctors(c *gin.Context)
	// (GET /api/doctors/{id})
	GetDoctor(c *gin.Context, id int)
	// (GET /api/patients)
	ListPatients(c *gin.Context)
	// (GET /api/patients/{id})
	GetPatient(c *gin.Context, id int)
	// (GET /api/patients/{id}/health-metrics)
	ListHealthMetrics(c *gin.Context, id int)
	// (POST /api/patients/{id}/health-metrics)
	CreateHealthMetric(c *gin.Context, id int)
	// (GET /api/patients/{id}/vitals)
	GetVitals(c *gin.Context, id int)
	// (GET /api/departments)
	ListDepartments(c *gin.Context)
	// (GET /api/departments/{id})
	GetDepartment(c *gin.Context, id int)
	// (GET /api/appointments)
	ListAppointments(c *gin.Context, params ListAppointmentsParams)
	// (POST /api/appointments)
	CreateAppointment(c *gin.Context)
	// (GET /api/appointments/{id})
	GetAppointment(c *gin.Context, id int)
	// (PATCH /api/appointments/{id})
	UpdateAppointment(c *gin.Context, id int)
	// (DELETE /api/appointments/{id})
	DeleteAppointment(c *gin.Context, id int)
	// (GET /api/visits)
	ListVisits(c *gin.Context, params ListVisitsParams)
	// (GET /api/visits/history)
	GetVisitHistory(c *gin.Context, params GetVisitHistoryParams)
	// (GET /api/dashboard/stats)
	GetDashboardStats(c *gin.Context)
	// (GET /api/dashboard/departments)
	GetDepartmentDistribution(c *gin.Context)
	// (GET /api/staff)
	ListStaff(c *gin.Context, params ListStaffParams)
	// (GET /api/analytics)
	GetAnalytics(c *gin.Context, params GetAnalyticsParams)
	// (POST /api/reports)
	GenerateReport(c *gin.Context)
	// (GET /api/reports/{id})
	GetReport(c *gin.Context, id string)
	// (GET /health)
	GetHealth(c *gin.Context)
}

// ParamError reports a path or query parameter that could not be bound
type ParamError struct {
	Name string
	Err  error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %v", e.Name, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

type MiddlewareFunc func(c *gin.Context)

func (siw *ServerInterfaceWrapper) runMiddlewares(c *gin.Context) bool {
	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return false
		}
	}
	return true
}

func (siw *ServerInterfaceWrapper) bindPathID(c *gin.Context) (int, bool) {
	var id int
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, &ParamError{Name: "id", Err: err}, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (siw *ServerInterfaceWrapper) bindQuery(c *gin.Context, name string, dest interface{}) bool {
	err := runtime.BindQueryParameter("form", true, false, name, c.Request.URL.Query(), dest)
	if err != nil {
		siw.ErrorHandler(c, &ParamError{Name: name, Err: err}, http.StatusBadRequest)
		return false
	}
	return true
}

// withID wraps an operation taking an integer id path parameter
func (siw *ServerInterfaceWrapper) withID(op func(*gin.Context, int)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := siw.bindPathID(c)
		if !ok || !siw.runMiddlewares(c) {
			return
		}
		op(c, id)
	}
}

// plain wraps an operation without parameters
func (siw *ServerInterfaceWrapper) plain(op func(*gin.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !siw.runMiddlewares(c) {
			return
		}
		op(c)
	}
}

// ListAppointments operation middleware
func (siw *ServerInterfaceWrapper) ListAppointments(c *gin.Context) {
	var params ListAppointmentsParams

	if !siw.bindQuery(c, "doctorId", &params.DoctorId) ||
		!siw.bindQuery(c, "patientId", &params.PatientId) ||
		!siw.bindQuery(c, "status", &params.Status) ||
		!siw.bindQuery(c, "expand", &params.Expand) {
		return
	}

	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.ListAppointments(c, params)
}

// ListVisits operation middleware
func (siw *ServerInterfaceWrapper) ListVisits(c *gin.Context) {
	var params ListVisitsParams

	if !siw.bindQuery(c, "doctorId", &params.DoctorId) ||
		!siw.bindQuery(c, "patientId", &params.PatientId) {
		return
	}

	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.ListVisits(c, params)
}

// GetVisitHistory operation middleware
func (siw *ServerInterfaceWrapper) GetVisitHistory(c *gin.Context) {
	var params GetVisitHistoryParams

	if !siw.bindQuery(c, "window", &params.Window) ||
		!siw.bindQuery(c, "page", &params.Page) ||
		!siw.bindQuery(c, "pageSize", &params.PageSize) {
		return
	}

	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetVisitHistory(c, params)
}

// ListStaff operation middleware
func (siw *ServerInterfaceWrapper) ListStaff(c *gin.Context) {
	var params ListStaffParams

	if !siw.bindQuery(c, "department", &params.Department) ||
		!siw.bindQuery(c, "search", &params.Search) {
		return
	}

	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.ListStaff(c, params)
}

// GetAnalytics operation middleware
func (siw *ServerInterfaceWrapper) GetAnalytics(c *gin.Context) {
	var params GetAnalyticsParams

	if !siw.bindQuery(c, "timeRange", &params.TimeRange) {
		return
	}

	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetAnalytics(c, params)
}

// GetReport operation middleware
func (siw *ServerInterfaceWrapper) GetReport(c *gin.Context) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, &ParamError{Name: "id", Err: err}, http.StatusBadRequest)
		return
	}

	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetReport(c, id)
}

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

// RegisterHandlers creates http.Handler with routing matching the OpenAPI document.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, ErrorResponse{Code: CodeValidationError, Message: err.Error()})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	base := options.BaseURL
	router.GET(base+"/api/users/current", wrapper.plain(si.GetCurrentUser))
	router.GET(base+"/api/doctors", wrapper.plain(si.ListDoctors))
	router.GET(base+"/api/doctors/:id", wrapper.withID(si.GetDoctor))
	router.GET(base+"/api/patients", wrapper.plain(si.ListPatients))
	router.GET(base+"/api/patients/:id", wrapper.withID(si.GetPatient))
	router.GET(base+"/api/patients/:id/health-metrics", wrapper.withID(si.ListHealthMetrics))
	router.POST(base+"/api/patients/:id/health-metrics", wrapper.withID(si.CreateHealthMetric))
	router.GET(base+"/api/patients/:id/vitals", wrapper.withID(si.GetVitals))
	router.GET(base+"/api/departments", wrapper.plain(si.ListDepartments))
	router.GET(base+"/api/departments/:id", wrapper.withID(si.GetDepartment))
	router.GET(base+"/api/appointments", wrapper.ListAppointments)
	router.POST(base+"/api/appointments", wrapper.plain(si.CreateAppointment))
	router.GET(base+"/api/appointments/:id", wrapper.withID(si.GetAppointment))
	router.PATCH(base+"/api/appointments/:id", wrapper.withID(si.UpdateAppointment))
	router.DELETE(base+"/api/appointments/:id", wrapper.withID(si.DeleteAppointment))
	router.GET(base+"/api/visits", wrapper.ListVisits)
	router.GET(base+"/api/visits/history", wrapper.GetVisitHistory)
	router.GET(base+"/api/dashboard/stats", wrapper.plain(si.GetDashboardStats))
	router.GET(base+"/api/dashboard/departments", wrapper.plain(si.GetDepartmentDistribution))
	router.GET(base+"/api/staff", wrapper.ListStaff)
	router.GET(base+"/api/analytics", wrapper.GetAnalytics)
	router.POST(base+"/api/reports", wrapper.plain(si.GenerateReport))
	router.GET(base+"/api/reports/:id", wrapper.GetReport)
	router.GET(base+"/health", wrapper.plain(si.GetHealth))
}
