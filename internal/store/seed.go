package store

import (
	"context"
	"fmt"
	"time"

	"docspot-booking-api/internal/auth"
	"docspot-booking-api/internal/model"
)

// Seed writes the demo fixtures on first run: two doctors, one patient and
// two available appointments. Each record set is written only when its key
// is absent, so restarting the server never clobbers accumulated state.
func (s *Store) Seed(ctx context.Context, now time.Time) error {
	seeded, err := s.seedUsers(ctx, now)
	if err != nil {
		return err
	}
	if seeded {
		if err := s.seedAppointments(ctx, now); err != nil {
			return err
		}
		return nil
	}

	// users existed already; appointments may still be missing
	n, err := s.rdb.Exists(ctx, appointmentsKey).Result()
	if err != nil {
		return fmt.Errorf("store: exists %s: %w", appointmentsKey, err)
	}
	if n == 0 {
		return s.seedAppointments(ctx, now)
	}
	return nil
}

func (s *Store) seedUsers(ctx context.Context, now time.Time) (bool, error) {
	n, err := s.rdb.Exists(ctx, usersKey).Result()
	if err != nil {
		return false, fmt.Errorf("store: exists %s: %w", usersKey, err)
	}
	if n > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword("123456")
	if err != nil {
		return false, fmt.Errorf("store: seed password: %w", err)
	}

	users := []model.User{
		{
			ID:           "doc_1",
			Username:     "doc_alva",
			PasswordHash: hash,
			Role:         model.RoleDoctor,
			Name:         "Dr. Carlos Alva",
			Clinic:       "Clínica Sonrisas Trujillanas",
			Email:        "doc.alva@email.com",
			Phone:        "+51 999 111 222",
			CreatedAt:    now,
		},
		{
			ID:           "doc_2",
			Username:     "doc_maria",
			PasswordHash: hash,
			Role:         model.RoleDoctor,
			Name:         "Dra. María García",
			Clinic:       "Centro Dental Premium",
			Email:        "maria.garcia@email.com",
			Phone:        "+51 999 333 444",
			CreatedAt:    now,
		},
		{
			ID:           "pac_1",
			Username:     "carlos_m",
			PasswordHash: hash,
			Role:         model.RolePatient,
			Name:         "Carlos Mendez",
			Email:        "carlos.mendez@email.com",
			Phone:        "+51 999 555 666",
			CreatedAt:    now,
		},
	}
	return true, s.SaveUsers(ctx, users)
}

func (s *Store) seedAppointments(ctx context.Context, now time.Time) error {
	today := model.DateLabel(now)
	apts := []model.Appointment{
		{
			ID:         "apt_1",
			DoctorID:   "doc_1",
			DoctorName: "Dr. Carlos Alva",
			Clinic:     "Clínica Sonrisas Trujillanas",
			Service:    "Limpieza Dental",
			Time:       "5:00 PM",
			Date:       today,
			Price:      50,
			Commission: model.Commission,
			Status:     model.StatusAvailable,
		},
		{
			ID:         "apt_2",
			DoctorID:   "doc_2",
			DoctorName: "Dra. María García",
			Clinic:     "Centro Dental Premium",
			Service:    "Blanqueamiento",
			Time:       "3:00 PM",
			Date:       today,
			Price:      150,
			Commission: model.Commission,
			Status:     model.StatusAvailable,
		},
	}
	return s.SaveAppointments(ctx, apts)
}
