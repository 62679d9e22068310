package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"ravintola-sinet/delivery-svc/internal/domain"
	"ravintola-sinet/delivery-svc/internal/service"
	"ravintola-sinet/preorder"
)

type Handler struct {
	Carts      service.CartServiceInterface
	Orders     service.OrderServiceInterface
	Coupons    service.CouponServiceInterface
	Promotions service.PromotionServiceInterface
	// Geocoder backs the address search; nil disables it.
	Geocoder service.Geocoder
}

func NewHandler(carts service.CartServiceInterface, orders service.OrderServiceInterface, coupons service.CouponServiceInterface, promotions service.PromotionServiceInterface) *Handler {
	return &Handler{
		Carts:      carts,
		Orders:     orders,
		Coupons:    coupons,
		Promotions: promotions,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	session := func(f http.HandlerFunc) http.Handler { return SessionMiddleware(f) }

	r.Handle("/api/cart", session(h.getCart)).Methods("GET")
	r.Handle("/api/cart", session(h.clearCart)).Methods("DELETE")
	r.Handle("/api/cart/items", session(h.addItem)).Methods("POST")
	r.Handle("/api/cart/items/{id:[0-9]+}", session(h.updateItem)).Methods("PUT", "PATCH")
	r.Handle("/api/cart/items/{id:[0-9]+}", session(h.removeItem)).Methods("DELETE")
	r.Handle("/api/cart/coupon", session(h.applyCoupon)).Methods("POST")
	r.Handle("/api/cart/coupon", session(h.removeCoupon)).Methods("DELETE")

	r.Handle("/api/delivery/quote", session(h.quote)).Methods("GET")
	r.Handle("/api/delivery/location", session(h.setLocation)).Methods("POST")
	r.Handle("/api/delivery/customer", session(h.setCustomer)).Methods("POST")
	r.Handle("/api/delivery/checkout", session(h.checkout)).Methods("POST")
	r.HandleFunc("/api/delivery/geocode/search", h.geocodeSearch).Methods("GET")
	r.HandleFunc("/api/delivery/geocode/reverse", h.geocodeReverse).Methods("GET")
	r.HandleFunc("/api/delivery/orders/{token:[0-9a-fA-F-]{36}}", h.getOwnOrder).Methods("GET")
	r.HandleFunc("/api/delivery/orders/{token:[0-9a-fA-F-]{36}}/qr", h.getOrderQR).Methods("GET")

	h.registerAdminRoutes(r)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "delivery-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.Summary(r.Context(), SessionID(r.Context()))
	writeCart(w, cart, err)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ItemID int `json:"item_id"`
		Qty    int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	cart, err := h.Carts.AddItem(r.Context(), SessionID(r.Context()), payload.ItemID, payload.Qty)
	writeCart(w, cart, err)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Qty int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	cart, err := h.Carts.UpdateItem(r.Context(), SessionID(r.Context()), id, payload.Qty)
	writeCart(w, cart, err)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	cart, err := h.Carts.UpdateItem(r.Context(), SessionID(r.Context()), id, 0)
	writeCart(w, cart, err)
}

func (h *Handler) applyCoupon(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	cart, err := h.Carts.ApplyCoupon(r.Context(), SessionID(r.Context()), payload.Code)
	writeCart(w, cart, err)
}

func (h *Handler) removeCoupon(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.RemoveCoupon(r.Context(), SessionID(r.Context()))
	writeCart(w, cart, err)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.Clear(r.Context(), SessionID(r.Context()))
	writeCart(w, cart, err)
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		writeError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}
	quote, err := h.Carts.Quote(r.Context(), SessionID(r.Context()), lat, lng)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "quote": quote})
}

func (h *Handler) setLocation(w http.ResponseWriter, r *http.Request) {
	var location domain.Location
	if err := json.NewDecoder(r.Body).Decode(&location); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	cart, err := h.Carts.SetLocation(r.Context(), SessionID(r.Context()), location)
	writeCart(w, cart, err)
}

func (h *Handler) setCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	cart, err := h.Carts.SetCustomer(r.Context(), SessionID(r.Context()), customer)
	writeCart(w, cart, err)
}

// geocodeSearch never fails the request: an upstream error answers ok=false
// with no results.
func (h *Handler) geocodeSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if h.Geocoder == nil || len([]rune(query)) < service.MinSearchLength {
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "results": []domain.Place{}})
		return
	}
	results, err := h.Geocoder.Search(r.Context(), query)
	if err != nil {
		log.Printf("[delivery-svc] address search failed: %v", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": false, "results": []domain.Place{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "results": results})
}

func (h *Handler) geocodeReverse(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	lngParam := query.Get("lng")
	if lngParam == "" {
		lngParam = query.Get("lon")
	}
	lat, latErr := strconv.ParseFloat(query.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(lngParam, 64)
	if latErr != nil || lngErr != nil || h.Geocoder == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": false, "label": ""})
		return
	}
	label, err := h.Geocoder.Reverse(r.Context(), lat, lng)
	if err != nil {
		log.Printf("[delivery-svc] reverse geocode failed: %v", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": false, "label": ""})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "label": label})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.PlaceOrder(r.Context(), SessionID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":      true,
		"order":   order,
		"link":    h.Orders.QRLink(order.PublicToken),
		"message": "Order received! Your order number is #" + strconv.Itoa(order.ID) + ".",
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "order": order})
}

func (h *Handler) getOwnOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetByToken(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "order": order})
}

func (h *Handler) getOrderQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.GetQRCode(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeCart(w http.ResponseWriter, cart *domain.CartSnapshot, err error) {
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "cart": cart})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCoupon):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"ok": false, "error": err.Error(), "field": "coupon"})
	case errors.Is(err, service.ErrOutOfRange):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"ok": false, "error": err.Error(), "field": "location"})
	case errors.Is(err, service.ErrInvalidCoordinates),
		errors.Is(err, service.ErrLocationRequired),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrQuantity),
		errors.Is(err, service.ErrCustomerDetails),
		errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidCoupon),
		errors.Is(err, service.ErrInvalidPromotion),
		errors.Is(err, preorder.ErrItemUnavailable):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCouponExists),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, domain.ErrStatusConflict):
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
