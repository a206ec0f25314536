package store

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"docspot-booking-api/internal/auth"
	"docspot-booking-api/internal/model"
)

func setup(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestEmptyStoreReturnsEmptyCollections(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	users, err := st.Users(ctx)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}

	apts, err := st.Appointments(ctx)
	if err != nil {
		t.Fatalf("appointments: %v", err)
	}
	if len(apts) != 0 {
		t.Errorf("expected no appointments, got %d", len(apts))
	}

	sess, err := st.Session(ctx)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if sess != nil {
		t.Errorf("expected no session, got %+v", sess)
	}
}

func TestAppointmentsRoundTrip(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	pid := "pac_1"
	pname := "Carlos Mendez"
	paid := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	in := []model.Appointment{
		{
			ID: "apt_1", DoctorID: "doc_1", DoctorName: "Dr. Carlos Alva",
			Clinic: "Clínica Sonrisas Trujillanas", Service: "Limpieza Dental",
			Time: "5:00 PM", Date: "sábado, 29 de agosto", Price: 50,
			Commission: model.Commission, Status: model.StatusReserved,
			PatientID: &pid, PatientName: &pname,
			PaymentStatus: "paid", PaymentDate: &paid,
		},
	}
	if err := st.SaveAppointments(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := st.Appointments(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(out))
	}
	got := out[0]
	if got.Status != model.StatusReserved {
		t.Errorf("status = %s", got.Status)
	}
	if got.PatientID == nil || *got.PatientID != pid {
		t.Errorf("patientId = %v", got.PatientID)
	}
	if got.PaymentDate == nil || !got.PaymentDate.Equal(paid) {
		t.Errorf("paymentDate = %v", got.PaymentDate)
	}
}

func TestSessionLifecycle(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	u := model.User{ID: "pac_1", Username: "carlos_m", Role: model.RolePatient, Name: "Carlos Mendez"}
	if err := st.SetSession(ctx, u); err != nil {
		t.Fatalf("set session: %v", err)
	}

	sess, err := st.Session(ctx)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if sess == nil || sess.ID != "pac_1" {
		t.Fatalf("session = %+v", sess)
	}

	if err := st.ClearSession(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	sess, err = st.Session(ctx)
	if err != nil {
		t.Fatalf("session after clear: %v", err)
	}
	if sess != nil {
		t.Errorf("session survived clear: %+v", sess)
	}

	// clearing twice is harmless
	if err := st.ClearSession(ctx); err != nil {
		t.Errorf("second clear: %v", err)
	}
}

func TestSeedEmptyStore(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	now := time.Date(2026, time.August, 29, 9, 0, 0, 0, time.UTC)

	if err := st.Seed(ctx, now); err != nil {
		t.Fatalf("seed: %v", err)
	}

	users, err := st.Users(ctx)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 seed users, got %d", len(users))
	}
	byID := map[string]model.User{}
	for _, u := range users {
		byID[u.ID] = u
	}
	doc1 := byID["doc_1"]
	if doc1.Name != "Dr. Carlos Alva" || doc1.Role != model.RoleDoctor || doc1.Clinic != "Clínica Sonrisas Trujillanas" {
		t.Errorf("doc_1 = %+v", doc1)
	}
	if byID["doc_2"].Clinic != "Centro Dental Premium" {
		t.Errorf("doc_2 = %+v", byID["doc_2"])
	}
	pac1 := byID["pac_1"]
	if pac1.Role != model.RolePatient || pac1.Clinic != "" {
		t.Errorf("pac_1 = %+v", pac1)
	}
	for _, u := range users {
		if u.PasswordHash == "123456" {
			t.Errorf("%s seeded with plaintext password", u.ID)
		}
		if !auth.CheckPassword(u.PasswordHash, "123456") {
			t.Errorf("%s seed password does not verify", u.ID)
		}
	}

	apts, err := st.Appointments(ctx)
	if err != nil {
		t.Fatalf("appointments: %v", err)
	}
	if len(apts) != 2 {
		t.Fatalf("expected 2 seed appointments, got %d", len(apts))
	}
	for _, a := range apts {
		if a.Status != model.StatusAvailable {
			t.Errorf("%s status = %s", a.ID, a.Status)
		}
		if a.Commission != 2 {
			t.Errorf("%s commission = %d", a.ID, a.Commission)
		}
		if a.PatientID != nil || a.PatientName != nil {
			t.Errorf("%s has patient fields before reservation", a.ID)
		}
		if a.Date != "sábado, 29 de agosto" {
			t.Errorf("%s date = %q", a.ID, a.Date)
		}
	}
	if apts[0].Service != "Limpieza Dental" || apts[0].Price != 50 {
		t.Errorf("apt_1 = %+v", apts[0])
	}
	if apts[1].Service != "Blanqueamiento" || apts[1].Price != 150 {
		t.Errorf("apt_2 = %+v", apts[1])
	}
}

func TestSeedDoesNotOverwrite(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	now := time.Now()

	custom := []model.User{{ID: "doc_9", Username: "doc_nine", Role: model.RoleDoctor, Name: "Dr. Nine"}}
	if err := st.SaveUsers(ctx, custom); err != nil {
		t.Fatalf("save users: %v", err)
	}
	if err := st.SaveAppointments(ctx, []model.Appointment{}); err != nil {
		t.Fatalf("save appointments: %v", err)
	}

	if err := st.Seed(ctx, now); err != nil {
		t.Fatalf("seed: %v", err)
	}

	users, _ := st.Users(ctx)
	if len(users) != 1 || users[0].ID != "doc_9" {
		t.Errorf("seed overwrote existing users: %+v", users)
	}
	apts, _ := st.Appointments(ctx)
	if len(apts) != 0 {
		t.Errorf("seed overwrote existing appointments: %+v", apts)
	}
}
