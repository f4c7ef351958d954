package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AbdelwaliNour/Hospital/internal/analytics"
	"github.com/AbdelwaliNour/Hospital/internal/audit"
	"github.com/AbdelwaliNour/Hospital/internal/azure"
	"github.com/AbdelwaliNour/Hospital/internal/pdf"
	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDashboardForReports() *DashboardService {
	repo := new(MockDashboardRepository)
	repo.On("Appointments").Return([]model.Appointment{})
	repo.On("Visits").Return([]model.Visit{})
	repo.On("Departments").Return(clinicDepartments())
	repo.On("Doctors").Return([]model.Doctor{})
	return NewDashboardService(repo, testCalendar(), zap.NewNop())
}

func TestReportService_GenerateReport(t *testing.T) {
	blob := new(MockBlobStorage)
	renderer := new(MockReportRenderer)
	auditLogger := audit.NewLogger(10, zap.NewNop())
	service := NewReportService(newDashboardForReports(), blob, renderer, auditLogger, "Clinic", zap.NewNop())
	ctx := context.Background()

	renderer.On("Generate", mock.MatchedBy(func(d *pdf.ReportData) bool {
		return d.ClinicName == "Clinic" && d.Report.TimeRange == analytics.TimeRangeThisYear
	})).Return([]byte("%PDF"), nil)
	blob.On("UploadPDF", ctx, mock.AnythingOfType("string"), []byte("%PDF")).
		Return("reports/generated.pdf", nil)

	generated, err := service.GenerateReport(ctx, "thisYear")

	require.NoError(t, err)
	_, parseErr := uuid.Parse(generated.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "reports/generated.pdf", generated.BlobName)
	blob.AssertCalled(t, "UploadPDF", ctx, generated.ID+".pdf", []byte("%PDF"))
	assert.Equal(t, generated.ID, auditLogger.Recent(1)[0].ResourceID)
}

func TestReportService_GenerateReport_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid time range", func(t *testing.T) {
		renderer := new(MockReportRenderer)
		service := NewReportService(newDashboardForReports(), new(MockBlobStorage), renderer, audit.NewLogger(10, zap.NewNop()), "Clinic", zap.NewNop())

		_, err := service.GenerateReport(ctx, "forever")

		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
		renderer.AssertNotCalled(t, "Generate", mock.Anything)
	})

	t.Run("render error", func(t *testing.T) {
		renderer := new(MockReportRenderer)
		blob := new(MockBlobStorage)
		service := NewReportService(newDashboardForReports(), blob, renderer, audit.NewLogger(10, zap.NewNop()), "Clinic", zap.NewNop())
		renderer.On("Generate", mock.Anything).Return(nil, errors.New("boom"))

		_, err := service.GenerateReport(ctx, "")

		assert.ErrorContains(t, err, "failed to generate PDF")
		blob.AssertNotCalled(t, "UploadPDF", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upload error", func(t *testing.T) {
		renderer := new(MockReportRenderer)
		blob := new(MockBlobStorage)
		auditLogger := audit.NewLogger(10, zap.NewNop())
		service := NewReportService(newDashboardForReports(), blob, renderer, auditLogger, "Clinic", zap.NewNop())
		renderer.On("Generate", mock.Anything).Return([]byte("%PDF"), nil)
		blob.On("UploadPDF", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("unavailable"))

		_, err := service.GenerateReport(ctx, "")

		assert.ErrorContains(t, err, "failed to upload report")
		assert.Empty(t, auditLogger.Recent(0))
	})
}

func TestReportService_GetReport(t *testing.T) {
	blob := new(MockBlobStorage)
	service := NewReportService(newDashboardForReports(), blob, new(MockReportRenderer), audit.NewLogger(10, zap.NewNop()), "Clinic", zap.NewNop())
	ctx := context.Background()
	id := uuid.New()

	blob.On("DownloadPDF", ctx, "reports/"+id.String()+".pdf").Return([]byte("%PDF"), nil)
	missing := uuid.New()
	blob.On("DownloadPDF", ctx, "reports/"+missing.String()+".pdf").Return(nil, azure.ErrBlobNotFound)

	data, err := service.GetReport(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)

	_, err = service.GetReport(ctx, missing.String())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.GetReport(ctx, "../../etc/passwd")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "reportId", verr.Errors[0].Field)
}

// Generated reports can be downloaded again by id
func TestProperty_ReportStorageAndRetrievalRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	timeRanges := []string{"", "thisWeek", "thisMonth", "thisQuarter", "thisYear"}

	properties.Property("stored report bytes are returned unchanged", prop.ForAll(
		func(idx int, content []byte) bool {
			renderer := new(MockReportRenderer)
			renderer.On("Generate", mock.Anything).Return(content, nil)
			storage := azure.NewMemoryBlobStorage(zap.NewNop())
			service := NewReportService(newDashboardForReports(), storage, renderer, audit.NewLogger(10, zap.NewNop()), "Clinic", zap.NewNop())
			ctx := context.Background()

			generated, err := service.GenerateReport(ctx, timeRanges[idx])
			if err != nil {
				t.Logf("GenerateReport failed: %v", err)
				return false
			}

			data, err := service.GetReport(ctx, generated.ID)
			if err != nil {
				t.Logf("GetReport failed: %v", err)
				return false
			}
			return assert.ObjectsAreEqual(content, data)
		},
		gen.IntRange(0, len(timeRanges)-1),
		gen.SliceOfN(64, gen.UInt8()),
	))

	properties.TestingRun(t)
}
