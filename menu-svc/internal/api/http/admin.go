package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ravintola-sinet/menu-svc/internal/domain"
)

func (h *Handler) registerAdminRoutes(r *mux.Router) {
	r.HandleFunc("/api/admin/categories", h.adminListCategories).Methods("GET")
	r.HandleFunc("/api/admin/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/admin/categories/{id:[0-9]+}", h.getCategory).Methods("GET")
	r.HandleFunc("/api/admin/categories/{id:[0-9]+}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/admin/categories/{id:[0-9]+}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/admin/menu-items", h.adminListItems).Methods("GET")
	r.HandleFunc("/api/admin/menu-items", h.createItem).Methods("POST")
	r.HandleFunc("/api/admin/menu-items/{id:[0-9]+}", h.adminGetItem).Methods("GET")
	r.HandleFunc("/api/admin/menu-items/{id:[0-9]+}", h.updateItem).Methods("PUT")
	r.HandleFunc("/api/admin/menu-items/{id:[0-9]+}", h.deleteItem).Methods("DELETE")
	r.HandleFunc("/api/admin/menu-items/{id:[0-9]+}/image", h.uploadItemImage).Methods("POST")

	r.HandleFunc("/api/admin/contact-messages", h.listContactMessages).Methods("GET")
}

func (h *Handler) adminListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List(r.Context(), false)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Categories.Create(r.Context(), &category); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	category, err := h.Categories.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	category.ID = id
	if err := h.Categories.Update(r.Context(), &category); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Categories.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.Menu.AdminList(r.Context(), domain.MenuFilter{
		CategorySlug: q.Get("category"),
		Query:        q.Get("q"),
		Status:       q.Get("status"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Menu.Create(r.Context(), &item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) adminGetItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	item, err := h.Menu.AdminGet(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	item.ID = id
	if err := h.Menu.Update(r.Context(), &item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Menu.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listContactMessages(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	messages, err := h.Contact.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
