package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"ravintola-sinet/menu-svc/internal/domain"
	"ravintola-sinet/menu-svc/internal/service"
)

const DefaultUploadDir = "./uploads"

type Handler struct {
	Categories service.CategoryServiceInterface
	Menu       service.MenuServiceInterface
	Contact    service.ContactServiceInterface
	UploadDir  string
}

func NewHandler(categories service.CategoryServiceInterface, menu service.MenuServiceInterface, contact service.ContactServiceInterface) *Handler {
	return &Handler{
		Categories: categories,
		Menu:       menu,
		Contact:    contact,
		UploadDir:  DefaultUploadDir,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/popular", h.getPopular).Methods("GET")
	r.HandleFunc("/api/menu/items/{id:[0-9]+}", h.getItem).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/contact", h.submitContact).Methods("POST")
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.UploadDir)))).Methods("GET")

	h.registerAdminRoutes(r)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	menu, err := h.Menu.Menu(r.Context(), q.Get("category"), q.Get("q"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) getPopular(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.Popular(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	item, err := h.Menu.Item(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List(r.Context(), true)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if err := h.Contact.Submit(r.Context(), &msg); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":      true,
		"message": "Thank you! We will get back to you soon.",
	})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidItem),
		errors.Is(err, service.ErrInvalidContact):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrCategoryInUse):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
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
