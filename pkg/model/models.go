package model

import (
	"slices"
	"time"
)

// User represents a dashboard user
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"password,omitempty"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Email    *string `json:"email,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// Public returns a copy of the user without its password
func (u User) Public() User {
	u.Password = ""
	return u
}

// TimeSlot lists the bookable time labels of a doctor on one day
type TimeSlot struct {
	Day   string   `json:"day"`
	Times []string `json:"times"`
}

// Doctor represents a member of the medical staff
type Doctor struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	Avatar             *string    `json:"avatar,omitempty"`
	Specialty          string     `json:"specialty"`
	Rating             *int       `json:"rating,omitempty"`
	Experience         *int       `json:"experience,omitempty"`
	Email              *string    `json:"email,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	AvailableTimeSlots []TimeSlot `json:"availableTimeSlots"`
}

// Clone returns a deep copy of the doctor
func (d Doctor) Clone() Doctor {
	d.Avatar = clonePtr(d.Avatar)
	d.Rating = clonePtr(d.Rating)
	d.Experience = clonePtr(d.Experience)
	d.Email = clonePtr(d.Email)
	d.Phone = clonePtr(d.Phone)
	if d.AvailableTimeSlots != nil {
		slots := make([]TimeSlot, len(d.AvailableTimeSlots))
		for i, s := range d.AvailableTimeSlots {
			slots[i] = TimeSlot{Day: s.Day, Times: slices.Clone(s.Times)}
		}
		d.AvailableTimeSlots = slots
	}
	return d
}

// HealthSummary is the latest vitals snapshot shown on a patient card
type HealthSummary struct {
	HeartRate  *int `json:"heartRate,omitempty"`
	SleepHours *int `json:"sleepHours,omitempty"`
}

// Patient represents a clinic patient
type Patient struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	Avatar            *string        `json:"avatar,omitempty"`
	Email             *string        `json:"email,omitempty"`
	Phone             *string        `json:"phone,omitempty"`
	DateOfBirth       *time.Time     `json:"dateOfBirth,omitempty"`
	Address           *string        `json:"address,omitempty"`
	MedicalConditions []string       `json:"medicalConditions"`
	HealthMetrics     *HealthSummary `json:"healthMetrics,omitempty"`
}

// Clone returns a deep copy of the patient
func (p Patient) Clone() Patient {
	p.Avatar = clonePtr(p.Avatar)
	p.Email = clonePtr(p.Email)
	p.Phone = clonePtr(p.Phone)
	p.DateOfBirth = clonePtr(p.DateOfBirth)
	p.Address = clonePtr(p.Address)
	p.MedicalConditions = slices.Clone(p.MedicalConditions)
	if p.HealthMetrics != nil {
		hm := HealthSummary{
			HeartRate:  clonePtr(p.HealthMetrics.HeartRate),
			SleepHours: clonePtr(p.HealthMetrics.SleepHours),
		}
		p.HealthMetrics = &hm
	}
	return p
}

// Department represents a clinic department.
// Name doubles as the join key against Doctor.Specialty.
type Department struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	StaffCount   int    `json:"staffCount"`
	PatientCount int    `json:"patientCount"`
}

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// Valid reports whether s is a known appointment status
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusRescheduled:
		return true
	}
	return false
}

// Appointment represents a booked appointment between a patient and a doctor
type Appointment struct {
	ID        int               `json:"id"`
	PatientID int               `json:"patientId"`
	DoctorID  int               `json:"doctorId"`
	Date      time.Time         `json:"date"`
	Time      string            `json:"time"`
	Status    AppointmentStatus `json:"status"`
	Condition *string           `json:"condition,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
}

// Clone returns a deep copy of the appointment
func (a Appointment) Clone() Appointment {
	a.Condition = clonePtr(a.Condition)
	a.Notes = clonePtr(a.Notes)
	return a
}

// AppointmentUpdate is a partial appointment; nil fields are left untouched
type AppointmentUpdate struct {
	PatientID *int
	DoctorID  *int
	Date      *time.Time
	Time      *string
	Status    *AppointmentStatus
	Condition *string
	Notes     *string
}

// IsEmpty reports whether the update sets no field
func (u AppointmentUpdate) IsEmpty() bool {
	return u.PatientID == nil && u.DoctorID == nil && u.Date == nil && u.Time == nil &&
		u.Status == nil && u.Condition == nil && u.Notes == nil
}

// Apply merges the set fields of u over a and returns the result
func (u AppointmentUpdate) Apply(a Appointment) Appointment {
	if u.PatientID != nil {
		a.PatientID = *u.PatientID
	}
	if u.DoctorID != nil {
		a.DoctorID = *u.DoctorID
	}
	if u.Date != nil {
		a.Date = *u.Date
	}
	if u.Time != nil {
		a.Time = *u.Time
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.Condition != nil {
		a.Condition = clonePtr(u.Condition)
	}
	if u.Notes != nil {
		a.Notes = clonePtr(u.Notes)
	}
	return a
}

// Visit represents a completed patient visit
type Visit struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patientId"`
	DoctorID  int       `json:"doctorId"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Condition string    `json:"condition"`
	Notes     *string   `json:"notes,omitempty"`
}

// Clone returns a deep copy of the visit
func (v Visit) Clone() Visit {
	v.Notes = clonePtr(v.Notes)
	return v
}

// HealthMetric is a single vitals sample. Samples are sparse: a record
// usually carries either heart-rate oriented fields or sleep hours.
type HealthMetric struct {
	ID            int       `json:"id"`
	PatientID     int       `json:"patientId"`
	Timestamp     time.Time `json:"timestamp"`
	HeartRate     *int      `json:"heartRate"`
	SleepHours    *int      `json:"sleepHours"`
	BloodPressure *string   `json:"bloodPressure"`
	Temperature   *int      `json:"temperature"`
	Weight        *int      `json:"weight"`
}

// Clone returns a deep copy of the health metric
func (m HealthMetric) Clone() HealthMetric {
	m.HeartRate = clonePtr(m.HeartRate)
	m.SleepHours = clonePtr(m.SleepHours)
	m.BloodPressure = clonePtr(m.BloodPressure)
	m.Temperature = clonePtr(m.Temperature)
	m.Weight = clonePtr(m.Weight)
	return m
}

// Clone returns a deep copy of the user
func (u User) Clone() User {
	u.Email = clonePtr(u.Email)
	u.Avatar = clonePtr(u.Avatar)
	return u
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
