// Package store provides the in-memory record store backing the dashboard.
// Each entity kind lives in its own collection with an auto-incrementing
// integer id. Lookups that miss return false rather than an error.
package store

import (
	"sync"

	"github.com/AbdelwaliNour/Hospital/pkg/model"
)

// Stats reports the number of records held per entity kind
type Stats struct {
	Users         int `json:"users"`
	Doctors       int `json:"doctors"`
	Patients      int `json:"patients"`
	Departments   int `json:"departments"`
	Appointments  int `json:"appointments"`
	Visits        int `json:"visits"`
	HealthMetrics int `json:"healthMetrics"`
}

// Store is an in-memory record store. All operations are serialised by a
// single RWMutex; none of them block on anything but that lock.
type Store struct {
	mu sync.RWMutex

	users         *collection[model.User]
	doctors       *collection[model.Doctor]
	patients      *collection[model.Patient]
	departments   *collection[model.Department]
	appointments  *collection[model.Appointment]
	visits        *collection[model.Visit]
	healthMetrics *collection[model.HealthMetric]
}

// New creates an empty Store
func New() *Store {
	return &Store{
		users:         newCollection(model.User.Clone),
		doctors:       newCollection(model.Doctor.Clone),
		patients:      newCollection(model.Patient.Clone),
		departments:   newCollection[model.Department](nil),
		appointments:  newCollection(model.Appointment.Clone),
		visits:        newCollection(model.Visit.Clone),
		healthMetrics: newCollection(model.HealthMetric.Clone),
	}
}

// Reset drops every record. Id counters keep running so ids handed out
// before the reset are never reassigned.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users.clear()
	s.doctors.clear()
	s.patients.clear()
	s.departments.clear()
	s.appointments.clear()
	s.visits.clear()
	s.healthMetrics.clear()
}

// Stats returns the current record counts
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Users:         s.users.len(),
		Doctors:       s.doctors.len(),
		Patients:      s.patients.len(),
		Departments:   s.departments.len(),
		Appointments:  s.appointments.len(),
		Visits:        s.visits.len(),
		HealthMetrics: s.healthMetrics.len(),
	}
}

// Users

func (s *Store) CreateUser(draft model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.create(draft, func(u *model.User, id int) { u.ID = id })
}

func (s *Store) User(id int) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.get(id)
}

// UserByUsername looks a user up by its unique username
func (s *Store) UserByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.find(func(u model.User) bool { return u.Username == username })
}

func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.all()
}

func (s *Store) DeleteUser(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.delete(id)
}

// Doctors

func (s *Store) CreateDoctor(draft model.Doctor) model.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doctors.create(draft, func(d *model.Doctor, id int) { d.ID = id })
}

func (s *Store) Doctor(id int) (model.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doctors.get(id)
}

func (s *Store) Doctors() []model.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doctors.all()
}

func (s *Store) DeleteDoctor(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doctors.delete(id)
}

// Patients

func (s *Store) CreatePatient(draft model.Patient) model.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patients.create(draft, func(p *model.Patient, id int) { p.ID = id })
}

func (s *Store) Patient(id int) (model.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patients.get(id)
}

func (s *Store) Patients() []model.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patients.all()
}

// DeletePatient removes the patient only; appointments, visits and
// health metrics that reference it are kept.
func (s *Store) DeletePatient(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patients.delete(id)
}

// Departments

func (s *Store) CreateDepartment(draft model.Department) model.Department {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.departments.create(draft, func(d *model.Department, id int) { d.ID = id })
}

func (s *Store) Department(id int) (model.Department, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.departments.get(id)
}

func (s *Store) Departments() []model.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.departments.all()
}

func (s *Store) DeleteDepartment(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.departments.delete(id)
}

// Appointments

func (s *Store) CreateAppointment(draft model.Appointment) model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appointments.create(draft, func(a *model.Appointment, id int) { a.ID = id })
}

func (s *Store) Appointment(id int) (model.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointments.get(id)
}

func (s *Store) Appointments() []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointments.all()
}

func (s *Store) AppointmentsByDoctor(doctorID int) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointments.filter(func(a model.Appointment) bool { return a.DoctorID == doctorID })
}

func (s *Store) AppointmentsByPatient(patientID int) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointments.filter(func(a model.Appointment) bool { return a.PatientID == patientID })
}

// UpdateAppointment merges the set fields of update over the stored
// appointment. The id itself can never change.
func (s *Store) UpdateAppointment(id int, update model.AppointmentUpdate) (model.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appointments.replace(id, func(current model.Appointment) model.Appointment {
		merged := update.Apply(current)
		merged.ID = id
		return merged
	})
}

func (s *Store) DeleteAppointment(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appointments.delete(id)
}

// Visits

func (s *Store) CreateVisit(draft model.Visit) model.Visit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visits.create(draft, func(v *model.Visit, id int) { v.ID = id })
}

func (s *Store) Visit(id int) (model.Visit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visits.get(id)
}

func (s *Store) Visits() []model.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visits.all()
}

func (s *Store) VisitsByDoctor(doctorID int) []model.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visits.filter(func(v model.Visit) bool { return v.DoctorID == doctorID })
}

func (s *Store) VisitsByPatient(patientID int) []model.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visits.filter(func(v model.Visit) bool { return v.PatientID == patientID })
}

func (s *Store) DeleteVisit(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visits.delete(id)
}

// Health metrics

func (s *Store) CreateHealthMetric(draft model.HealthMetric) model.HealthMetric {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.healthMetrics.create(draft, func(m *model.HealthMetric, id int) { m.ID = id })
}

func (s *Store) HealthMetric(id int) (model.HealthMetric, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.healthMetrics.get(id)
}

// HealthMetrics returns the samples recorded for a patient
func (s *Store) HealthMetrics(patientID int) []model.HealthMetric {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.healthMetrics.filter(func(m model.HealthMetric) bool { return m.PatientID == patientID })
}

func (s *Store) DeleteHealthMetric(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.healthMetrics.delete(id)
}
