package booking

import (
	"context"

	"docspot-booking-api/internal/model"
)

// AvailableAppointments is what a patient browses: every slot nobody has
// reserved yet, in posting order.
func (s *Service) AvailableAppointments(ctx context.Context) ([]model.Appointment, error) {
	apts, err := s.store.Appointments(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Appointment{}
	for _, a := range apts {
		if a.Status == model.StatusAvailable {
			out = append(out, a)
		}
	}
	return out, nil
}

// DoctorAppointments lists everything a doctor has posted, reserved or not.
func (s *Service) DoctorAppointments(ctx context.Context, doctorID string) ([]model.Appointment, error) {
	apts, err := s.store.Appointments(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Appointment{}
	for _, a := range apts {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

// PatientReservations lists the slots a patient has reserved.
func (s *Service) PatientReservations(ctx context.Context, patientID string) ([]model.Appointment, error) {
	apts, err := s.store.Appointments(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Appointment{}
	for _, a := range apts {
		if a.PatientID != nil && *a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

// DoctorStats are the dashboard numbers: slot counts and the earnings from
// reserved slots, net of the platform commission.
type DoctorStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
	Earnings  int `json:"earnings"`
}

func (s *Service) DoctorStats(ctx context.Context, doctorID string) (DoctorStats, error) {
	apts, err := s.store.Appointments(ctx)
	if err != nil {
		return DoctorStats{}, err
	}
	var stats DoctorStats
	for _, a := range apts {
		if a.DoctorID != doctorID {
			continue
		}
		stats.Total++
		switch a.Status {
		case model.StatusAvailable:
			stats.Available++
		case model.StatusReserved:
			stats.Reserved++
			stats.Earnings += a.Price - a.Commission
		}
	}
	return stats, nil
}
