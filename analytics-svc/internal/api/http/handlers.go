package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ravintola-sinet/analytics-svc/internal/domain"
	"ravintola-sinet/analytics-svc/internal/service"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/admin/dashboard", h.getDashboard).Methods("GET")
	r.HandleFunc("/api/admin/dashboard/daily", h.getDaily).Methods("GET")
	r.HandleFunc("/api/admin/dashboard/top-items", h.getTopItems).Methods("GET")
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getDaily(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.Daily(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	data, err := h.Analytics.TopItems(r.Context(), q.Get("date"), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidDate) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"ok": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"ok": false, "error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
