package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"ravintola-sinet/delivery-svc/internal/domain"
)

func (h *Handler) registerAdminRoutes(r *mux.Router) {
	r.HandleFunc("/api/admin/delivery-orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/admin/delivery-orders/{id:[0-9]+}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/admin/delivery-orders/{id:[0-9]+}/status", h.updateOrderStatus).Methods("POST")

	r.HandleFunc("/api/admin/coupons", h.listCoupons).Methods("GET")
	r.HandleFunc("/api/admin/coupons", h.createCoupon).Methods("POST")
	r.HandleFunc("/api/admin/coupons/{id:[0-9]+}", h.getCoupon).Methods("GET")
	r.HandleFunc("/api/admin/coupons/{id:[0-9]+}", h.updateCoupon).Methods("PUT")
	r.HandleFunc("/api/admin/coupons/{id:[0-9]+}", h.deleteCoupon).Methods("DELETE")

	r.HandleFunc("/api/admin/promotions", h.listPromotions).Methods("GET")
	r.HandleFunc("/api/admin/promotions", h.createPromotion).Methods("POST")
	r.HandleFunc("/api/admin/promotions/{id:[0-9]+}", h.updatePromotion).Methods("PUT")
	r.HandleFunc("/api/admin/promotions/{id:[0-9]+}", h.deletePromotion).Methods("DELETE")
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	orders, err := h.Orders.List(r.Context(), domain.OrderFilter{
		Status: strings.TrimSpace(query.Get("status")),
		Query:  strings.TrimSpace(query.Get("q")),
		Limit:  limit,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "orders": orders})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	order, err := h.Orders.UpdateStatus(r.Context(), id, payload.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "order": order})
}

func (h *Handler) listCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.Coupons.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "coupons": coupons})
}

func (h *Handler) createCoupon(w http.ResponseWriter, r *http.Request) {
	var coupon domain.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if err := h.Coupons.Create(r.Context(), &coupon); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "coupon": coupon})
}

func (h *Handler) getCoupon(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	coupon, err := h.Coupons.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "coupon": coupon})
}

func (h *Handler) updateCoupon(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var coupon domain.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	coupon.ID = id
	if err := h.Coupons.Update(r.Context(), &coupon); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "coupon": coupon})
}

func (h *Handler) deleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Coupons.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "message": "Coupon deleted"})
}

func (h *Handler) listPromotions(w http.ResponseWriter, r *http.Request) {
	promos, err := h.Promotions.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "promotions": promos})
}

func (h *Handler) createPromotion(w http.ResponseWriter, r *http.Request) {
	var promo domain.Promotion
	if err := json.NewDecoder(r.Body).Decode(&promo); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if err := h.Promotions.Create(r.Context(), &promo); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "promotion": promo})
}

func (h *Handler) updatePromotion(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var promo domain.Promotion
	if err := json.NewDecoder(r.Body).Decode(&promo); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	promo.ID = id
	if err := h.Promotions.Update(r.Context(), &promo); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "promotion": promo})
}

func (h *Handler) deletePromotion(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Promotions.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "message": "Promotion deleted"})
}
