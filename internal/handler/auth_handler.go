package handler

import (
	"net/http"

	"docspot-booking-api/internal/booking"
	"docspot-booking-api/internal/middleware"
	"docspot-booking-api/internal/model"
)

type registerRequest struct {
	Role model.Role `json:"role"`
	booking.RegisterInput
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.Register(r.Context(), req.RegisterInput, req.Role)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respond(w, http.StatusCreated, u.View())
}

type loginRequest struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.Login(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, u.View())
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		h.respondServiceError(w, err)
		return
	}
	respond(w, http.StatusNoContent, nil)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, middleware.UserFrom(r.Context()).View())
}
