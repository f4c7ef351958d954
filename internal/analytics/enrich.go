// Package analytics holds the pure reporting functions behind the dashboard,
// staff and analytics views. None of them mutate their inputs; records that
// cannot contribute to a result are skipped rather than reported as errors.
package analytics

import "github.com/AbdelwaliNour/Hospital/pkg/model"

// EnrichedVisit is a visit with its patient and doctor resolved.
// Patient and Doctor are nil when the referenced record does not exist.
type EnrichedVisit struct {
	model.Visit
	Patient *model.Patient `json:"patient"`
	Doctor  *model.Doctor  `json:"doctor"`
}

// EnrichedAppointment is an appointment with its patient and doctor resolved
type EnrichedAppointment struct {
	model.Appointment
	Patient *model.Patient `json:"patient"`
	Doctor  *model.Doctor  `json:"doctor"`
}

// EnrichVisits joins each visit with its patient and doctor, preserving order
func EnrichVisits(visits []model.Visit, patients []model.Patient, doctors []model.Doctor) []EnrichedVisit {
	patientIndex := indexPatients(patients)
	doctorIndex := indexDoctors(doctors)

	out := make([]EnrichedVisit, 0, len(visits))
	for _, v := range visits {
		out = append(out, EnrichedVisit{
			Visit:   v.Clone(),
			Patient: patientIndex.lookup(v.PatientID),
			Doctor:  doctorIndex.lookup(v.DoctorID),
		})
	}
	return out
}

// EnrichAppointments joins each appointment with its patient and doctor, preserving order
func EnrichAppointments(appointments []model.Appointment, patients []model.Patient, doctors []model.Doctor) []EnrichedAppointment {
	patientIndex := indexPatients(patients)
	doctorIndex := indexDoctors(doctors)

	out := make([]EnrichedAppointment, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, EnrichedAppointment{
			Appointment: a.Clone(),
			Patient:     patientIndex.lookup(a.PatientID),
			Doctor:      doctorIndex.lookup(a.DoctorID),
		})
	}
	return out
}

type index[T any] struct {
	byID  map[int]T
	clone func(T) T
}

// lookup returns a fresh copy so enriched rows never share nested records
func (ix index[T]) lookup(id int) *T {
	v, ok := ix.byID[id]
	if !ok {
		return nil
	}
	c := ix.clone(v)
	return &c
}

func indexPatients(patients []model.Patient) index[model.Patient] {
	ix := index[model.Patient]{byID: make(map[int]model.Patient, len(patients)), clone: model.Patient.Clone}
	for _, p := range patients {
		if _, seen := ix.byID[p.ID]; !seen {
			ix.byID[p.ID] = p
		}
	}
	return ix
}

func indexDoctors(doctors []model.Doctor) index[model.Doctor] {
	ix := index[model.Doctor]{byID: make(map[int]model.Doctor, len(doctors)), clone: model.Doctor.Clone}
	for _, d := range doctors {
		if _, seen := ix.byID[d.ID]; !seen {
			ix.byID[d.ID] = d
		}
	}
	return ix
}
