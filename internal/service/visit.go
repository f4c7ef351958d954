package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbdelwaliNour/Hospital/internal/analytics"
	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"go.uber.org/zap"
)

// VisitRepositoryInterface defines the data access visits need
type VisitRepositoryInterface interface {
	Visits() []model.Visit
	VisitsByDoctor(doctorID int) []model.Visit
	VisitsByPatient(patientID int) []model.Visit
	Patients() []model.Patient
	Doctors() []model.Doctor
}

// VisitService serves the visit listings and the visit history table
type VisitService struct {
	repo     VisitRepositoryInterface
	calendar Calendar
	pageSize int
	logger   *zap.Logger
}

// NewVisitService creates a new VisitService. pageSize is used when a
// history request does not name one.
func NewVisitService(repo VisitRepositoryInterface, calendar Calendar, pageSize int, logger *zap.Logger) *VisitService {
	if pageSize <= 0 {
		pageSize = analytics.DefaultPageSize
	}
	return &VisitService{
		repo:     repo,
		calendar: calendar,
		pageSize: pageSize,
		logger:   logger,
	}
}

// List returns visits, scoped to a doctor or else a patient when given
func (s *VisitService) List(ctx context.Context, doctorID, patientID *int) []model.Visit {
	switch {
	case doctorID != nil:
		return s.repo.VisitsByDoctor(*doctorID)
	case patientID != nil:
		return s.repo.VisitsByPatient(*patientID)
	default:
		return s.repo.Visits()
	}
}

// History returns one page of visits inside the named window, each with its
// patient and doctor attached. A zero page or pageSize uses the first page
// and the configured size.
func (s *VisitService) History(ctx context.Context, window string, page, pageSize int) (analytics.Page[analytics.EnrichedVisit], error) {
	w, err := analytics.ParseWindow(window)
	if err != nil {
		if errors.Is(err, analytics.ErrUnknownWindow) {
			return analytics.Page[analytics.EnrichedVisit]{}, invalid("window", err.Error())
		}
		return analytics.Page[analytics.EnrichedVisit]{}, err
	}
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = s.pageSize
	}

	var v validation
	if page < 0 {
		v.add("page", "must be at least 1")
	}
	if pageSize < 0 {
		v.add("pageSize", "must be at least 1")
	} else if pageSize > analytics.MaxPageSize {
		v.add("pageSize", fmt.Sprintf("must be at most %d", analytics.MaxPageSize))
	}
	if err := v.err(); err != nil {
		return analytics.Page[analytics.EnrichedVisit]{}, err
	}

	visits := analytics.FilterByWindow(s.repo.Visits(), w, s.calendar.now(), s.calendar.WeekStart,
		func(v model.Visit) time.Time { return v.Date })
	enriched := analytics.EnrichVisits(visits, s.repo.Patients(), s.repo.Doctors())

	result := analytics.Paginate(enriched, page, pageSize)
	s.logger.Debug("visit history page",
		zap.String("window", string(w)),
		zap.Int("page", page),
		zap.Int("page_size", pageSize),
		zap.Int("total", result.Total),
	)
	return result, nil
}
