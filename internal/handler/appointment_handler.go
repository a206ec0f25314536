package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"docspot-booking-api/internal/middleware"
	"docspot-booking-api/internal/payment"
)

func (h *Handler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	apts, err := h.svc.AvailableAppointments(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, apts)
}

type postAppointmentRequest struct {
	Service string `json:"service"`
	Time    string `json:"time"`
	Price   int    `json:"price"`
}

func (h *Handler) PostAppointment(w http.ResponseWriter, r *http.Request) {
	var req postAppointmentRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doctor := middleware.UserFrom(r.Context())
	apt, err := h.svc.PostAppointment(r.Context(), doctor, req.Service, req.Time, req.Price)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respond(w, http.StatusCreated, apt)
}

func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	doctor := middleware.UserFrom(r.Context())
	if err := h.svc.CancelAppointment(r.Context(), doctor, chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err)
		return
	}
	respond(w, http.StatusNoContent, nil)
}

func (h *Handler) DoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctor := middleware.UserFrom(r.Context())
	apts, err := h.svc.DoctorAppointments(r.Context(), doctor.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, apts)
}

func (h *Handler) DoctorStats(w http.ResponseWriter, r *http.Request) {
	doctor := middleware.UserFrom(r.Context())
	stats, err := h.svc.DoctorStats(r.Context(), doctor.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, stats)
}

func (h *Handler) Reservations(w http.ResponseWriter, r *http.Request) {
	patient := middleware.UserFrom(r.Context())
	apts, err := h.svc.PatientReservations(r.Context(), patient.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, apts)
}

func (h *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	var pay payment.Input
	if err := decode(r, &pay); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patient := middleware.UserFrom(r.Context())
	apt, err := h.svc.Reserve(r.Context(), patient, chi.URLParam(r, "id"), pay)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, apt)
}
