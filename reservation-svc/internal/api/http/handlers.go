package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"ravintola-sinet/preorder"
	"ravintola-sinet/reservation-svc/internal/domain"
	"ravintola-sinet/reservation-svc/internal/service"
)

type Handler struct {
	Reservations service.ReservationServiceInterface
}

func NewHandler(reservations service.ReservationServiceInterface) *Handler {
	return &Handler{Reservations: reservations}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/availability", h.getAvailability).Methods("GET")
	r.HandleFunc("/api/reservations/{token:[0-9a-fA-F-]{36}}", h.getOwnReservation).Methods("GET")

	r.HandleFunc("/api/admin/reservations", h.listReservations).Methods("GET")
	r.HandleFunc("/api/admin/reservations/{id:[0-9]+}", h.getReservation).Methods("GET")
	r.HandleFunc("/api/admin/reservations/{id:[0-9]+}/status", h.updateStatus).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "reservation-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req domain.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	res, err := h.Reservations.TryReserve(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":          true,
		"reservation": res,
		"message":     "Reservation received! Your reservation number is #" + strconv.Itoa(res.ID) + ".",
		"status_url":  "/api/reservations/" + res.PublicToken,
	})
}

func (h *Handler) getAvailability(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	slots, err := h.Reservations.Availability(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"date":  date,
		"slots": slots,
	})
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	res, err := h.Reservations.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "reservation": res})
}

func (h *Handler) getOwnReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.GetByToken(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "reservation": res})
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	reservations, err := h.Reservations.List(r.Context(), domain.ReservationFilter{
		Status: strings.TrimSpace(query.Get("status")),
		Query:  strings.TrimSpace(query.Get("q")),
		Limit:  limit,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "reservations": reservations})
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	res, err := h.Reservations.UpdateStatus(r.Context(), id, payload.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "reservation": res})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidSlot):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"ok": false, "error": err.Error(), "field": "start_datetime"})
	case errors.Is(err, service.ErrInvalidReservation),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, preorder.ErrItemUnavailable):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCapacity):
		writeJSON(w, http.StatusConflict, map[string]interface{}{"ok": false, "error": err.Error(), "field": "party_size"})
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, domain.ErrStatusConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Reservation not found")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"ok": false, "error": message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
