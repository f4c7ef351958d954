package service

import (
	"context"
	"time"

	"github.com/AbdelwaliNour/Hospital/internal/pdf"
	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2024, 5, 20, 10, 30, 0, 0, time.UTC)

func testCalendar() Calendar {
	return Calendar{
		Location:  time.UTC,
		WeekStart: time.Sunday,
		Now:       func() time.Time { return testNow },
	}
}

func ptrString(s string) *string { return &s }

func ptrInt(i int) *int { return &i }

// MockDirectoryRepository is a mock implementation of DirectoryRepositoryInterface
type MockDirectoryRepository struct {
	mock.Mock
}

func (m *MockDirectoryRepository) User(id int) (model.User, bool) {
	args := m.Called(id)
	return args.Get(0).(model.User), args.Bool(1)
}

func (m *MockDirectoryRepository) Doctors() []model.Doctor {
	args := m.Called()
	return args.Get(0).([]model.Doctor)
}

func (m *MockDirectoryRepository) Doctor(id int) (model.Doctor, bool) {
	args := m.Called(id)
	return args.Get(0).(model.Doctor), args.Bool(1)
}

func (m *MockDirectoryRepository) Patients() []model.Patient {
	args := m.Called()
	return args.Get(0).([]model.Patient)
}

func (m *MockDirectoryRepository) Patient(id int) (model.Patient, bool) {
	args := m.Called(id)
	return args.Get(0).(model.Patient), args.Bool(1)
}

func (m *MockDirectoryRepository) Departments() []model.Department {
	args := m.Called()
	return args.Get(0).([]model.Department)
}

func (m *MockDirectoryRepository) Department(id int) (model.Department, bool) {
	args := m.Called(id)
	return args.Get(0).(model.Department), args.Bool(1)
}

// MockHealthMetricRepository is a mock implementation of HealthMetricRepositoryInterface
type MockHealthMetricRepository struct {
	mock.Mock
}

func (m *MockHealthMetricRepository) Patient(id int) (model.Patient, bool) {
	args := m.Called(id)
	return args.Get(0).(model.Patient), args.Bool(1)
}

func (m *MockHealthMetricRepository) HealthMetrics(patientID int) []model.HealthMetric {
	args := m.Called(patientID)
	return args.Get(0).([]model.HealthMetric)
}

func (m *MockHealthMetricRepository) CreateHealthMetric(draft model.HealthMetric) model.HealthMetric {
	args := m.Called(draft)
	return args.Get(0).(model.HealthMetric)
}

// MockDashboardRepository is a mock implementation of DashboardRepositoryInterface
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Appointments() []model.Appointment {
	args := m.Called()
	return args.Get(0).([]model.Appointment)
}

func (m *MockDashboardRepository) Visits() []model.Visit {
	args := m.Called()
	return args.Get(0).([]model.Visit)
}

func (m *MockDashboardRepository) Departments() []model.Department {
	args := m.Called()
	return args.Get(0).([]model.Department)
}

func (m *MockDashboardRepository) Doctors() []model.Doctor {
	args := m.Called()
	return args.Get(0).([]model.Doctor)
}

// MockBlobStorage is a mock implementation of azure.BlobStorage
type MockBlobStorage struct {
	mock.Mock
}

func (m *MockBlobStorage) UploadPDF(ctx context.Context, filename string, data []byte) (string, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStorage) DownloadPDF(ctx context.Context, blobName string) ([]byte, error) {
	args := m.Called(ctx, blobName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockReportRenderer is a mock implementation of ReportRenderer
type MockReportRenderer struct {
	mock.Mock
}

func (m *MockReportRenderer) Generate(data *pdf.ReportData) ([]byte, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
