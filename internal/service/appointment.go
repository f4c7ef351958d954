package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/AbdelwaliNour/Hospital/internal/analytics"
	"github.com/AbdelwaliNour/Hospital/internal/audit"
	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"go.uber.org/zap"
)

// AppointmentRepositoryInterface defines the data access appointments need
type AppointmentRepositoryInterface interface {
	Appointments() []model.Appointment
	Appointment(id int) (model.Appointment, bool)
	AppointmentsByDoctor(doctorID int) []model.Appointment
	AppointmentsByPatient(patientID int) []model.Appointment
	CreateAppointment(draft model.Appointment) model.Appointment
	UpdateAppointment(id int, update model.AppointmentUpdate) (model.Appointment, bool)
	DeleteAppointment(id int) bool
	Patients() []model.Patient
	Doctors() []model.Doctor
}

// AppointmentFilter narrows an appointment listing. DoctorID takes
// precedence over PatientID when both are set.
type AppointmentFilter struct {
	DoctorID  *int
	PatientID *int
	Status    *model.AppointmentStatus
}

// AppointmentService manages appointment booking
type AppointmentService struct {
	repo     AppointmentRepositoryInterface
	audit    *audit.Logger
	calendar Calendar
	logger   *zap.Logger

	// serialises check-then-write so two bookings cannot take the same slot
	writeMu sync.Mutex
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(repo AppointmentRepositoryInterface, auditLogger *audit.Logger, calendar Calendar, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{
		repo:     repo,
		audit:    auditLogger,
		calendar: calendar,
		logger:   logger,
	}
}

// List returns the appointments matching filter in insertion order
func (s *AppointmentService) List(ctx context.Context, filter AppointmentFilter) ([]model.Appointment, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, invalid("status", fmt.Sprintf("unknown status %q", *filter.Status))
	}

	var appointments []model.Appointment
	switch {
	case filter.DoctorID != nil:
		appointments = s.repo.AppointmentsByDoctor(*filter.DoctorID)
	case filter.PatientID != nil:
		appointments = s.repo.AppointmentsByPatient(*filter.PatientID)
	default:
		appointments = s.repo.Appointments()
	}

	if filter.Status == nil {
		return appointments, nil
	}
	out := make([]model.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status == *filter.Status {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListExpanded is List with each appointment's patient and doctor embedded
func (s *AppointmentService) ListExpanded(ctx context.Context, filter AppointmentFilter) ([]analytics.EnrichedAppointment, error) {
	appointments, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return analytics.EnrichAppointments(appointments, s.repo.Patients(), s.repo.Doctors()), nil
}

func (s *AppointmentService) Get(ctx context.Context, id int) (model.Appointment, error) {
	appointment, ok := s.repo.Appointment(id)
	if !ok {
		return model.Appointment{}, fmt.Errorf("%w: appointment %d", ErrNotFound, id)
	}
	return appointment, nil
}

// Create books a new appointment. The status defaults to scheduled and the
// date is normalised to midnight in the clinic time zone.
func (s *AppointmentService) Create(ctx context.Context, draft model.Appointment) (model.Appointment, error) {
	s.logger.Info("creating appointment",
		zap.Int("patient_id", draft.PatientID),
		zap.Int("doctor_id", draft.DoctorID),
		zap.String("time", draft.Time),
	)

	if draft.Status == "" {
		draft.Status = model.AppointmentStatusScheduled
	}
	draft.Time = strings.TrimSpace(draft.Time)

	var v validation
	if draft.PatientID <= 0 {
		v.add("patientId", "must be a positive id")
	}
	if draft.DoctorID <= 0 {
		v.add("doctorId", "must be a positive id")
	}
	if draft.Date.IsZero() {
		v.add("date", "is required")
	}
	if draft.Time == "" {
		v.add("time", "is required")
	}
	if !draft.Status.Valid() {
		v.add("status", fmt.Sprintf("unknown status %q", draft.Status))
	}
	if err := v.err(); err != nil {
		s.logger.Warn("invalid appointment", zap.Error(err))
		return model.Appointment{}, err
	}
	draft.ID = 0
	draft.Date = s.calendar.day(draft.Date)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if conflict, ok := s.findConflict(draft, 0); ok {
		s.logger.Warn("appointment slot already taken",
			zap.Int("doctor_id", draft.DoctorID),
			zap.Int("conflicting_appointment_id", conflict.ID),
		)
		return model.Appointment{}, fmt.Errorf("%w: doctor %d at %s %s", ErrSlotTaken, draft.DoctorID, draft.Date.Format("2006-01-02"), draft.Time)
	}

	created := s.repo.CreateAppointment(draft)
	s.audit.LogCreate(ctx, audit.ResourceAppointment, strconv.Itoa(created.ID))

	s.logger.Info("appointment created successfully",
		zap.Int("appointment_id", created.ID),
	)
	return created, nil
}

// Update merges the set fields of update into the appointment. Moving an
// active appointment onto a taken slot fails with ErrSlotTaken.
func (s *AppointmentService) Update(ctx context.Context, id int, update model.AppointmentUpdate) (model.Appointment, error) {
	s.logger.Info("updating appointment", zap.Int("appointment_id", id))

	if update.IsEmpty() {
		return model.Appointment{}, invalid("body", "at least one field must be set")
	}

	var v validation
	if update.PatientID != nil && *update.PatientID <= 0 {
		v.add("patientId", "must be a positive id")
	}
	if update.DoctorID != nil && *update.DoctorID <= 0 {
		v.add("doctorId", "must be a positive id")
	}
	if update.Date != nil && update.Date.IsZero() {
		v.add("date", "must be a valid date")
	}
	if update.Time != nil {
		trimmed := strings.TrimSpace(*update.Time)
		if trimmed == "" {
			v.add("time", "must not be empty")
		}
		update.Time = &trimmed
	}
	if update.Status != nil && !update.Status.Valid() {
		v.add("status", fmt.Sprintf("unknown status %q", *update.Status))
	}
	if err := v.err(); err != nil {
		s.logger.Warn("invalid appointment update", zap.Int("appointment_id", id), zap.Error(err))
		return model.Appointment{}, err
	}
	if update.Date != nil {
		day := s.calendar.day(*update.Date)
		update.Date = &day
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current, ok := s.repo.Appointment(id)
	if !ok {
		return model.Appointment{}, fmt.Errorf("%w: appointment %d", ErrNotFound, id)
	}

	merged := update.Apply(current)
	if s.movesIntoSlot(current, merged) {
		if conflict, taken := s.findConflict(merged, id); taken {
			s.logger.Warn("appointment slot already taken",
				zap.Int("appointment_id", id),
				zap.Int("conflicting_appointment_id", conflict.ID),
			)
			return model.Appointment{}, fmt.Errorf("%w: doctor %d at %s %s", ErrSlotTaken, merged.DoctorID, merged.Date.Format("2006-01-02"), merged.Time)
		}
	}

	updated, ok := s.repo.UpdateAppointment(id, update)
	if !ok {
		return model.Appointment{}, fmt.Errorf("%w: appointment %d", ErrNotFound, id)
	}
	s.audit.LogUpdate(ctx, audit.ResourceAppointment, strconv.Itoa(id))

	s.logger.Info("appointment updated successfully", zap.Int("appointment_id", id))
	return updated, nil
}

// Delete removes an appointment
func (s *AppointmentService) Delete(ctx context.Context, id int) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if !s.repo.DeleteAppointment(id) {
		return fmt.Errorf("%w: appointment %d", ErrNotFound, id)
	}
	s.audit.LogDelete(ctx, audit.ResourceAppointment, strconv.Itoa(id))

	s.logger.Info("appointment deleted", zap.Int("appointment_id", id))
	return nil
}

// movesIntoSlot reports whether an update makes an appointment occupy a
// slot it did not occupy before
func (s *AppointmentService) movesIntoSlot(before, after model.Appointment) bool {
	if !occupiesSlot(after) {
		return false
	}
	return !occupiesSlot(before) || !s.sameSlot(before, after)
}

// findConflict returns an active appointment other than excludeID that
// occupies the same slot as a
func (s *AppointmentService) findConflict(a model.Appointment, excludeID int) (model.Appointment, bool) {
	if !occupiesSlot(a) {
		return model.Appointment{}, false
	}
	for _, existing := range s.repo.AppointmentsByDoctor(a.DoctorID) {
		if existing.ID == excludeID || !occupiesSlot(existing) {
			continue
		}
		if s.sameSlot(existing, a) {
			return existing, true
		}
	}
	return model.Appointment{}, false
}

func (s *AppointmentService) sameSlot(a, b model.Appointment) bool {
	return a.DoctorID == b.DoctorID &&
		analytics.SameDay(a.Date, b.Date.In(s.calendar.location())) &&
		strings.EqualFold(strings.TrimSpace(a.Time), strings.TrimSpace(b.Time))
}

func occupiesSlot(a model.Appointment) bool {
	return a.Status != model.AppointmentStatusCancelled
}
