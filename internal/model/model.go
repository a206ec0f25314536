package model

import "time"

type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

func (r Role) Valid() bool {
	return r == RoleDoctor || r == RolePatient
}

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
)

// Commission is the fixed platform fee in soles, subtracted from doctor
// earnings per reserved appointment.
const Commission = 2

// User is immutable after registration. PasswordHash round-trips through
// the store but is never serialized to clients (see View).
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	Clinic       string    `json:"clinic,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserView is the client-facing shape of a User.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Clinic   string `json:"clinic,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (u User) View() UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Name:     u.Name,
		Clinic:   u.Clinic,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}

// Appointment is a bookable slot of a doctor's day. Doctor name and clinic
// are denormalized at creation and never re-synced; users cannot change
// after registration so the copies never go stale.
//
// Invariant: status available <=> patient fields nil and no payment metadata;
// status reserved <=> patient fields set, PaymentStatus "paid", PaymentDate set.
type Appointment struct {
	ID            string     `json:"id"`
	DoctorID      string     `json:"doctorId"`
	DoctorName    string     `json:"doctorName"`
	Clinic        string     `json:"clinic"`
	Service       string     `json:"service"`
	Time          string     `json:"time"`
	Date          string     `json:"date"`
	Price         int        `json:"price"`
	Commission    int        `json:"commission"`
	Status        Status     `json:"status"`
	PatientID     *string    `json:"patientId"`
	PatientName   *string    `json:"patientName"`
	PaymentStatus string     `json:"paymentStatus,omitempty"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
}
