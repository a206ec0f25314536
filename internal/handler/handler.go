package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"docspot-booking-api/internal/booking"
	"docspot-booking-api/internal/middleware"
	"docspot-booking-api/internal/model"
	"docspot-booking-api/internal/payment"
	"docspot-booking-api/internal/store"
	"docspot-booking-api/pkg/logging"
)

type Handler struct {
	svc *booking.Service
	log *logging.Logger
}

func New(svc *booking.Service, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.Default()
	}
	return &Handler{svc: svc, log: log.Component("http")}
}

// Routes wires the full surface. Login, register and health are open;
// everything else requires the session, and the role groups are gated on
// top of that.
func (h *Handler) Routes(st *store.Store, rl *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", h.Health)

	r.Group(func(open chi.Router) {
		open.Use(middleware.RateLimit(rl))
		open.Post("/auth/register", h.Register)
		open.Post("/auth/login", h.Login)
	})

	r.Group(func(priv chi.Router) {
		priv.Use(middleware.Session(st))

		priv.Post("/auth/logout", h.Logout)
		priv.Get("/auth/me", h.Me)

		priv.Get("/appointments", h.ListAvailable)
		priv.With(middleware.RequireRole(model.RolePatient)).
			Post("/appointments/{id}/reserve", h.Reserve)

		priv.Route("/doctor", func(d chi.Router) {
			d.Use(middleware.RequireRole(model.RoleDoctor))
			d.Get("/appointments", h.DoctorAppointments)
			d.Post("/appointments", h.PostAppointment)
			d.Delete("/appointments/{id}", h.CancelAppointment)
			d.Get("/stats", h.DoctorStats)
		})

		priv.Route("/patient", func(p chi.Router) {
			p.Use(middleware.RequireRole(model.RolePatient))
			p.Get("/reservations", h.Reservations)
		})
	})

	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respond(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, code int, msg string) {
	respond(w, code, map[string]string{"error": msg})
}

// respondServiceError maps the booking error taxonomy to HTTP statuses.
// Unknown errors become an opaque 500; the detail goes to the log, not the
// client.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	var verr *payment.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, booking.ErrMissingFields),
		errors.Is(err, booking.ErrInvalidRole),
		errors.Is(err, booking.ErrInvalidPrice):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrInvalidCredentials),
		errors.Is(err, booking.ErrNoSession):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, booking.ErrWrongRole),
		errors.Is(err, booking.ErrNotOwner):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, booking.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrDuplicateUsername),
		errors.Is(err, booking.ErrInvalidState):
		respondError(w, http.StatusConflict, err.Error())
	default:
		h.log.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
