package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/AbdelwaliNour/Hospital/internal/analytics"
	"github.com/AbdelwaliNour/Hospital/internal/audit"
	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"go.uber.org/zap"
)

// heartRateWindow is the number of most recent samples in the heart-rate chart
const heartRateWindow = 12

var bloodPressurePattern = regexp.MustCompile(`^\d{2,3}/\d{2,3}$`)

// HealthMetricRepositoryInterface defines the data access health metrics need
type HealthMetricRepositoryInterface interface {
	Patient(id int) (model.Patient, bool)
	HealthMetrics(patientID int) []model.HealthMetric
	CreateHealthMetric(draft model.HealthMetric) model.HealthMetric
}

// Vitals holds the chart series derived from a patient's health metrics
type Vitals struct {
	HeartRate []analytics.SeriesPoint `json:"heartRate"`
	Sleep     []analytics.SeriesPoint `json:"sleep"`
}

// HealthMetricService manages patient health metrics
type HealthMetricService struct {
	repo     HealthMetricRepositoryInterface
	audit    *audit.Logger
	calendar Calendar
	logger   *zap.Logger
}

// NewHealthMetricService creates a new HealthMetricService
func NewHealthMetricService(repo HealthMetricRepositoryInterface, auditLogger *audit.Logger, calendar Calendar, logger *zap.Logger) *HealthMetricService {
	return &HealthMetricService{
		repo:     repo,
		audit:    auditLogger,
		calendar: calendar,
		logger:   logger,
	}
}

// List returns the metrics recorded for a patient
func (s *HealthMetricService) List(ctx context.Context, patientID int) ([]model.HealthMetric, error) {
	if _, ok := s.repo.Patient(patientID); !ok {
		return nil, fmt.Errorf("%w: patient %d", ErrNotFound, patientID)
	}
	return s.repo.HealthMetrics(patientID), nil
}

// Create records a metric for a patient. At least one measurement must be
// set and the timestamp defaults to now.
func (s *HealthMetricService) Create(ctx context.Context, patientID int, draft model.HealthMetric) (model.HealthMetric, error) {
	s.logger.Info("recording health metric", zap.Int("patient_id", patientID))

	if _, ok := s.repo.Patient(patientID); !ok {
		return model.HealthMetric{}, fmt.Errorf("%w: patient %d", ErrNotFound, patientID)
	}

	var v validation
	if draft.HeartRate == nil && draft.SleepHours == nil && draft.BloodPressure == nil &&
		draft.Temperature == nil && draft.Weight == nil {
		v.add("body", "at least one measurement must be set")
	}
	if draft.HeartRate != nil && (*draft.HeartRate < 20 || *draft.HeartRate > 250) {
		v.add("heartRate", "must be between 20 and 250")
	}
	if draft.SleepHours != nil && (*draft.SleepHours < 0 || *draft.SleepHours > 24) {
		v.add("sleepHours", "must be between 0 and 24")
	}
	if draft.BloodPressure != nil && !bloodPressurePattern.MatchString(*draft.BloodPressure) {
		v.add("bloodPressure", "must look like 120/80")
	}
	if err := v.err(); err != nil {
		s.logger.Warn("invalid health metric", zap.Int("patient_id", patientID), zap.Error(err))
		return model.HealthMetric{}, err
	}

	draft.ID = 0
	draft.PatientID = patientID
	if draft.Timestamp.IsZero() {
		draft.Timestamp = s.calendar.now()
	}

	created := s.repo.CreateHealthMetric(draft)
	s.audit.LogCreate(ctx, audit.ResourceHealthMetric, strconv.Itoa(created.ID))

	s.logger.Info("health metric recorded",
		zap.Int("patient_id", patientID),
		zap.Int("metric_id", created.ID),
	)
	return created, nil
}

// Vitals derives the heart-rate and sleep chart series for a patient. The
// heart-rate series keeps the most recent samples only.
func (s *HealthMetricService) Vitals(ctx context.Context, patientID int) (Vitals, error) {
	metrics, err := s.List(ctx, patientID)
	if err != nil {
		return Vitals{}, err
	}

	loc := s.calendar.location()
	heartRate := analytics.HeartRateSeries(metrics, loc)
	if len(heartRate) > heartRateWindow {
		heartRate = heartRate[len(heartRate)-heartRateWindow:]
	}
	return Vitals{
		HeartRate: heartRate,
		Sleep:     analytics.SleepSeries(metrics, loc),
	}, nil
}
