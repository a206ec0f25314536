// Package booking holds the appointment lifecycle: registration and login,
// posting by doctors, reservation (with simulated payment) by patients.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"docspot-booking-api/internal/auth"
	"docspot-booking-api/internal/model"
	"docspot-booking-api/internal/payment"
	"docspot-booking-api/internal/store"
	"docspot-booking-api/pkg/logging"
)

// Service carries all dependencies explicitly; there is no package-level
// state. The store is the single source of truth: every operation reads the
// collection it needs, mutates it in memory and writes it back in full.
type Service struct {
	store    *store.Store
	payments *payment.Processor
	log      *logging.Logger
	now      func() time.Time
}

func New(st *store.Store, payments *payment.Processor, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Default()
	}
	return &Service{
		store:    st,
		payments: payments,
		log:      log.Component("booking"),
		now:      time.Now,
	}
}

// RegisterInput carries the registration form fields. Clinic is required
// for doctors and ignored for patients.
type RegisterInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Clinic   string `json:"clinic"`
}

// Register creates a user and immediately establishes a session for it.
// Usernames are unique across all users, matched case-sensitively.
func (s *Service) Register(ctx context.Context, in RegisterInput, role model.Role) (model.User, error) {
	if !role.Valid() {
		return model.User{}, ErrInvalidRole
	}
	if in.Name == "" || in.Username == "" || in.Password == "" || in.Email == "" || in.Phone == "" {
		return model.User{}, ErrMissingFields
	}
	if role == model.RoleDoctor && in.Clinic == "" {
		return model.User{}, ErrMissingFields
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.Username == in.Username {
			return model.User{}, ErrDuplicateUsername
		}
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("booking: hash password: %w", err)
	}

	u := model.User{
		ID:           idPrefix(role) + uuid.New().String(),
		Username:     in.Username,
		PasswordHash: hash,
		Role:         role,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		CreatedAt:    s.now(),
	}
	if role == model.RoleDoctor {
		u.Clinic = in.Clinic
	}

	users = append(users, u)
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return model.User{}, err
	}
	if err := s.store.SetSession(ctx, u); err != nil {
		return model.User{}, err
	}

	s.log.Info("user registered", "id", u.ID, "username", u.Username, "role", u.Role)
	return u, nil
}

// Login succeeds iff exactly one user matches username, password and role,
// and establishes the session for that user.
func (s *Service) Login(ctx context.Context, username, password string, role model.Role) (model.User, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.Username == username && u.Role == role && auth.CheckPassword(u.PasswordHash, password) {
			if err := s.store.SetSession(ctx, u); err != nil {
				return model.User{}, err
			}
			s.log.Info("user logged in", "id", u.ID, "role", u.Role)
			return u, nil
		}
	}
	return model.User{}, ErrInvalidCredentials
}

// Logout destroys the current session. Logging out twice is harmless.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.ClearSession(ctx)
}

// CurrentUser resolves the session pointer to its user record.
func (s *Service) CurrentUser(ctx context.Context) (model.User, error) {
	sess, err := s.store.Session(ctx)
	if err != nil {
		return model.User{}, err
	}
	if sess == nil {
		return model.User{}, ErrNoSession
	}
	return *sess, nil
}

// PostAppointment publishes a new available slot for today. The doctor's
// name and clinic are copied onto the record. Several slots at the same
// time for the same doctor are allowed.
func (s *Service) PostAppointment(ctx context.Context, doctor model.User, service, timeLabel string, price int) (model.Appointment, error) {
	if doctor.Role != model.RoleDoctor {
		return model.Appointment{}, ErrWrongRole
	}
	if service == "" || timeLabel == "" {
		return model.Appointment{}, ErrMissingFields
	}
	if price <= 0 {
		return model.Appointment{}, ErrInvalidPrice
	}

	apt := model.Appointment{
		ID:         "apt_" + uuid.New().String(),
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Clinic:     doctor.Clinic,
		Service:    service,
		Time:       timeLabel,
		Date:       model.DateLabel(s.now()),
		Price:      price,
		Commission: model.Commission,
		Status:     model.StatusAvailable,
	}

	apts, err := s.store.Appointments(ctx)
	if err != nil {
		return model.Appointment{}, err
	}
	apts = append(apts, apt)
	if err := s.store.SaveAppointments(ctx, apts); err != nil {
		return model.Appointment{}, err
	}

	s.log.Info("appointment posted", "id", apt.ID, "doctor", doctor.ID, "service", service, "time", timeLabel)
	return apt, nil
}

// CancelAppointment removes one of the doctor's own available slots.
// Reserved slots cannot be cancelled: the patient has already paid.
func (s *Service) CancelAppointment(ctx context.Context, doctor model.User, id string) error {
	if doctor.Role != model.RoleDoctor {
		return ErrWrongRole
	}

	apts, err := s.store.Appointments(ctx)
	if err != nil {
		return err
	}
	idx := findAppointment(apts, id)
	if idx < 0 {
		return ErrNotFound
	}
	if apts[idx].DoctorID != doctor.ID {
		return ErrNotOwner
	}
	if apts[idx].Status == model.StatusReserved {
		return ErrInvalidState
	}

	apts = append(apts[:idx], apts[idx+1:]...)
	if err := s.store.SaveAppointments(ctx, apts); err != nil {
		return err
	}

	s.log.Info("appointment cancelled", "id", id, "doctor", doctor.ID)
	return nil
}

// Reserve validates payment, waits out the simulated settlement and then
// transitions the slot to reserved for the patient.
//
// The transition does not re-check the current status. Between the re-read
// and the write-back there is no lock or version check, and a slot being
// paid for still reads as available to everyone else. Two patients paying
// for the same slot both "succeed": the second write silently replaces the
// first reservation. This last-write-wins behavior is inherited from the
// persistence contract and is covered by tests as a documented property.
func (s *Service) Reserve(ctx context.Context, patient model.User, id string, pay payment.Input) (model.Appointment, error) {
	if patient.Role != model.RolePatient {
		return model.Appointment{}, ErrWrongRole
	}
	if err := pay.Validate(); err != nil {
		return model.Appointment{}, err
	}
	if err := s.payments.Settle(ctx, pay.Method); err != nil {
		return model.Appointment{}, err
	}

	apts, err := s.store.Appointments(ctx)
	if err != nil {
		return model.Appointment{}, err
	}
	idx := findAppointment(apts, id)
	if idx < 0 {
		return model.Appointment{}, ErrNotFound
	}

	paidAt := s.now()
	apts[idx].Status = model.StatusReserved
	apts[idx].PatientID = &patient.ID
	apts[idx].PatientName = &patient.Name
	apts[idx].PaymentStatus = "paid"
	apts[idx].PaymentDate = &paidAt

	if err := s.store.SaveAppointments(ctx, apts); err != nil {
		return model.Appointment{}, err
	}

	s.log.Info("appointment reserved", "id", id, "patient", patient.ID, "method", pay.Method)
	return apts[idx], nil
}

// idPrefix returns the user-id prefix for a role: "doc_" for doctors,
// "pac_" for patients, matching the seed data convention.
func idPrefix(role model.Role) string {
	if role == model.RoleDoctor {
		return "doc_"
	}
	return "pac_"
}

func findAppointment(apts []model.Appointment, id string) int {
	for i := range apts {
		if apts[i].ID == id {
			return i
		}
	}
	return -1
}
