package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AbdelwaliNour/Hospital/internal/audit"
	"github.com/AbdelwaliNour/Hospital/internal/azure"
	"github.com/AbdelwaliNour/Hospital/internal/middleware"
	"github.com/AbdelwaliNour/Hospital/internal/pdf"
	"github.com/AbdelwaliNour/Hospital/internal/service"
	"github.com/AbdelwaliNour/Hospital/internal/store"
	"github.com/AbdelwaliNour/Hospital/pkg/api"
	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2018, 4, 6, 15, 0, 0, 0, time.UTC)

type testServer struct {
	router *gin.Engine
	store  *store.Store
	audit  *audit.Logger
	blobs  *azure.MemoryBlobStorage
}

func intPtr(i int) *int { return &i }

// newTestServer wires the full API over a small clinic
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	s := store.New()
	s.CreateUser(model.User{Username: "admin", Password: "secret-hash", Name: "Dr. Zack Williams", Role: "admin"})
	s.CreateDoctor(model.Doctor{Name: "Dr. Wade Warren", Specialty: "Cardiology"})
	s.CreateDoctor(model.Doctor{Name: "Dr. Dianne Russell", Specialty: "Neurology"})
	s.CreatePatient(model.Patient{Name: "Wade Warren", MedicalConditions: []string{"Mumps Stage 3"}})
	s.CreatePatient(model.Patient{Name: "Cody Fisher", MedicalConditions: []string{"Depression"}})
	s.CreateDepartment(model.Department{Name: "Cardiology", Color: "#1366AE", StaffCount: 15, PatientCount: 120})
	s.CreateDepartment(model.Department{Name: "Neurology", Color: "#4A90E2", StaffCount: 12, PatientCount: 90})
	s.CreateVisit(model.Visit{PatientID: 1, DoctorID: 2, Date: time.Date(2018, 4, 4, 0, 0, 0, 0, time.UTC), Time: "9:00-10:00 PM", Condition: "Mumps Stage 3"})
	s.CreateVisit(model.Visit{PatientID: 2, DoctorID: 1, Date: time.Date(2018, 4, 6, 0, 0, 0, 0, time.UTC), Time: "10:00-11:00 PM", Condition: "Depression"})
	s.CreateVisit(model.Visit{PatientID: 1, DoctorID: 1, Date: time.Date(2018, 3, 12, 0, 0, 0, 0, time.UTC), Time: "1:00-2:00 PM", Condition: "Mumps Stage 3"})
	s.CreateHealthMetric(model.HealthMetric{PatientID: 1, Timestamp: testNow.Add(-time.Hour), HeartRate: intPtr(72), SleepHours: intPtr(7)})

	calendar := service.Calendar{
		Location:  time.UTC,
		WeekStart: time.Sunday,
		Now:       func() time.Time { return testNow },
	}
	auditLogger := audit.NewLogger(20, logger)
	blobs := azure.NewMemoryBlobStorage(logger)

	validator, err := api.NewValidator()
	require.NoError(t, err)

	dashboardService := service.NewDashboardService(s, calendar, logger)
	apiHandler := &APIHandler{
		Directory:    NewDirectoryHandler(service.NewDirectoryService(s, 1, logger), logger),
		Appointment:  NewAppointmentHandler(service.NewAppointmentService(s, auditLogger, calendar, logger), validator, logger),
		Visit:        NewVisitHandler(service.NewVisitService(s, calendar, 4, logger), logger),
		HealthMetric: NewHealthMetricHandler(service.NewHealthMetricService(s, auditLogger, calendar, logger), validator, logger),
		Dashboard:    NewDashboardHandler(dashboardService, logger),
		Report: NewReportHandler(
			service.NewReportService(dashboardService, blobs, pdf.NewPDFGenerator(logger), auditLogger, "Medicare Clinic", logger),
			validator,
			logger,
		),
		Health: NewHealthHandler(s, "test"),
	}

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.AuditActorMiddleware(1))
	api.RegisterHandlersWithOptions(router, apiHandler, api.GinServerOptions{
		ErrorHandler: ParamErrorHandler(logger),
	})

	return &testServer{router: router, store: s, audit: auditLogger, blobs: blobs}
}

func (ts *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
