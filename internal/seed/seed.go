// Package seed loads the demo clinic used by the dashboard.
package seed

import (
	"fmt"
	"time"

	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminPassword is the password of the seeded admin account
const AdminPassword = "admin123"

// Store is the write access the seed needs
type Store interface {
	CreateUser(draft model.User) model.User
	CreateDoctor(draft model.Doctor) model.Doctor
	CreatePatient(draft model.Patient) model.Patient
	CreateDepartment(draft model.Department) model.Department
	CreateVisit(draft model.Visit) model.Visit
	CreateHealthMetric(draft model.HealthMetric) model.HealthMetric
	CreateAppointment(draft model.Appointment) model.Appointment
}

// Summary counts the records created by Load
type Summary struct {
	Users         int
	Doctors       int
	Patients      int
	Departments   int
	Visits        int
	HealthMetrics int
	Appointments  int
}

// Load fills s with the demo clinic. Appointments are booked for the day of
// now and health metrics lead up to now, so the dashboard has data for today.
func Load(s Store, now time.Time, logger *zap.Logger) (Summary, error) {
	var summary Summary

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return summary, fmt.Errorf("failed to hash admin password: %w", err)
	}
	s.CreateUser(model.User{
		Username: "admin",
		Password: string(hash),
		Name:     "Dr. Zack Williams",
		Role:     "admin",
		Email:    str("zack@medicare.com"),
		Avatar:   str("https://randomuser.me/api/portraits/men/32.jpg"),
	})
	summary.Users++

	doctors := make([]model.Doctor, 0, len(demoDoctors))
	for _, d := range demoDoctors {
		doctors = append(doctors, s.CreateDoctor(d))
	}
	summary.Doctors = len(doctors)

	patients := make([]model.Patient, 0, len(demoPatients))
	for _, p := range demoPatients {
		patients = append(patients, s.CreatePatient(p))
	}
	summary.Patients = len(patients)

	for _, d := range demoDepartments {
		s.CreateDepartment(d)
		summary.Departments++
	}

	loc := now.Location()
	for i, v := range demoVisits {
		s.CreateVisit(model.Visit{
			PatientID: patients[i].ID,
			DoctorID:  doctors[i+1].ID,
			Date:      time.Date(v.year, v.month, v.day, 0, 0, 0, 0, loc),
			Time:      v.time,
			Condition: v.condition,
			Notes:     str(v.notes),
		})
		summary.Visits++
	}

	// hourly heart rate for the last twelve hours
	for i := 0; i < 12; i++ {
		s.CreateHealthMetric(model.HealthMetric{
			PatientID:     patients[0].ID,
			Timestamp:     now.Add(-time.Duration(i) * time.Hour),
			HeartRate:     num(70 + (i*7)%25),
			BloodPressure: str("120/80"),
			Temperature:   num(37),
			Weight:        num(77),
		})
		summary.HealthMetrics++
	}
	// monthly sleep for the last twelve months
	for i := 0; i < 12; i++ {
		s.CreateHealthMetric(model.HealthMetric{
			PatientID:  patients[0].ID,
			Timestamp:  now.AddDate(0, -i, 0),
			SleepHours: num(5 + i%4),
		})
		summary.HealthMetrics++
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	for i := 0; i < 8; i++ {
		status := model.AppointmentStatusScheduled
		if i < 5 {
			status = model.AppointmentStatusCompleted
		}
		patient := demoPatients[i%len(demoPatients)]
		s.CreateAppointment(model.Appointment{
			PatientID: patients[i%len(patients)].ID,
			DoctorID:  doctors[i%len(doctors)].ID,
			Date:      today,
			Time:      today.Add(time.Duration(9+i) * time.Hour).Format("03:04 PM"),
			Status:    status,
			Condition: str(patient.MedicalConditions[0]),
			Notes:     str("Regular checkup"),
		})
		summary.Appointments++
	}

	logger.Info("demo data loaded",
		zap.Int("doctors", summary.Doctors),
		zap.Int("patients", summary.Patients),
		zap.Int("departments", summary.Departments),
		zap.Int("visits", summary.Visits),
		zap.Int("health_metrics", summary.HealthMetrics),
		zap.Int("appointments", summary.Appointments),
	)
	return summary, nil
}

func str(s string) *string { return &s }

func num(i int) *int { return &i }

func birthday(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

var demoDoctors = []model.Doctor{
	{
		Name:       "Dr. Wade Warren",
		Avatar:     str("https://randomuser.me/api/portraits/women/87.jpg"),
		Specialty:  "Cardiologist",
		Rating:     num(49),
		Experience: num(24),
		Email:      str("wade.warren@medicare.com"),
		Phone:      str("+1 (555) 123-4567"),
		AvailableTimeSlots: []model.TimeSlot{
			{Day: "2024-05-20", Times: []string{"09:00 AM", "10:00 AM", "11:00 AM", "01:00 PM", "02:00 PM"}},
		},
	},
	{
		Name:               "Dr. Dianne Russell",
		Avatar:             str("https://randomuser.me/api/portraits/women/44.jpg"),
		Specialty:          "Pediatrician",
		Rating:             num(48),
		Experience:         num(15),
		Email:              str("dianne.russell@medicare.com"),
		Phone:              str("+1 (555) 234-5678"),
		AvailableTimeSlots: []model.TimeSlot{},
	},
	{
		Name:               "Dr. Bessie Cooper",
		Avatar:             str("https://randomuser.me/api/portraits/women/53.jpg"),
		Specialty:          "Neurologist",
		Rating:             num(47),
		Experience:         num(18),
		Email:              str("bessie.cooper@medicare.com"),
		Phone:              str("+1 (555) 345-6789"),
		AvailableTimeSlots: []model.TimeSlot{},
	},
	{
		Name:               "Dr. Kathryn Murphy",
		Avatar:             str("https://randomuser.me/api/portraits/women/72.jpg"),
		Specialty:          "Dermatologist",
		Rating:             num(46),
		Experience:         num(12),
		Email:              str("kathryn.murphy@medicare.com"),
		Phone:              str("+1 (555) 456-7890"),
		AvailableTimeSlots: []model.TimeSlot{},
	},
	{
		Name:               "Dr. Jerome Bell",
		Avatar:             str("https://randomuser.me/api/portraits/men/22.jpg"),
		Specialty:          "Orthopedist",
		Rating:             num(45),
		Experience:         num(20),
		Email:              str("jerome.bell@medicare.com"),
		Phone:              str("+1 (555) 567-8901"),
		AvailableTimeSlots: []model.TimeSlot{},
	},
}

var demoPatients = []model.Patient{
	{
		Name:              "Wade Warren",
		Avatar:            str("https://randomuser.me/api/portraits/men/32.jpg"),
		Email:             str("ww@info.com"),
		Phone:             str("+1 (555) 987-6543"),
		DateOfBirth:       birthday(1985, time.April, 12),
		Address:           str("123 Main St, Anytown, USA"),
		MedicalConditions: []string{"Mumps Stage 3"},
		HealthMetrics:     &model.HealthSummary{HeartRate: num(78), SleepHours: num(7)},
	},
	{
		Name:              "Cody Fisher",
		Avatar:            str("https://randomuser.me/api/portraits/men/55.jpg"),
		Email:             str("cody@info.com"),
		Phone:             str("+1 (555) 876-5432"),
		DateOfBirth:       birthday(1992, time.July, 23),
		Address:           str("456 Oak Ave, Somewhere, USA"),
		MedicalConditions: []string{"Depression"},
		HealthMetrics:     &model.HealthSummary{HeartRate: num(68), SleepHours: num(6)},
	},
	{
		Name:              "Savannah Nguyen",
		Avatar:            str("https://randomuser.me/api/portraits/women/76.jpg"),
		Email:             str("sav@info.com"),
		Phone:             str("+1 (555) 765-4321"),
		DateOfBirth:       birthday(1988, time.January, 15),
		Address:           str("789 Pine St, Elsewhere, USA"),
		MedicalConditions: []string{"Arthritis"},
		HealthMetrics:     &model.HealthSummary{HeartRate: num(72), SleepHours: num(8)},
	},
	{
		Name:              "Jerome Bell",
		Avatar:            str("https://randomuser.me/api/portraits/men/85.jpg"),
		Email:             str("jer@info.com"),
		Phone:             str("+1 (555) 654-3210"),
		DateOfBirth:       birthday(1976, time.September, 30),
		Address:           str("101 Cedar Rd, Nowhere, USA"),
		MedicalConditions: []string{"Fracture"},
		HealthMetrics:     &model.HealthSummary{HeartRate: num(65), SleepHours: num(7)},
	},
}

var demoDepartments = []model.Department{
	{Name: "Cardiology", Color: "#1366AE", StaffCount: 15, PatientCount: 120},
	{Name: "Neurology", Color: "#4A90E2", StaffCount: 12, PatientCount: 90},
	{Name: "Dermatology", Color: "#66B5F8", StaffCount: 8, PatientCount: 60},
	{Name: "Orthopedics", Color: "#2AB7CA", StaffCount: 10, PatientCount: 75},
	{Name: "Emergency", Color: "#E74C3C", StaffCount: 20, PatientCount: 200},
}

// visit i belongs to patient i and doctor i+1
var demoVisits = []struct {
	year      int
	month     time.Month
	day       int
	time      string
	condition string
	notes     string
}{
	{2018, time.April, 4, "9:00-10:00 PM", "Mumps Stage 3", "Patient showing improvement after medication."},
	{2017, time.July, 18, "10:00-11:00 PM", "Depression", "Prescribed new medication and therapy sessions."},
	{2018, time.April, 6, "11:00-12:00 PM", "Arthritis", "Pain management routine established."},
	{2016, time.September, 23, "1:00-2:00 PM", "Fracture", "Cast applied, follow-up in 4 weeks."},
}
