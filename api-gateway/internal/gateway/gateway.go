package gateway

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const AdminKeyHeader = "X-Admin-Key"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MenuSvcURL        string
	ReservationSvcURL string
	DeliverySvcURL    string
	AnalyticsSvcURL   string
	// AdminKey guards /api/admin/ when non-empty.
	AdminKey string
}

type route struct {
	prefix string
	target func(Config) string
}

func menuSvc(c Config) string        { return c.MenuSvcURL }
func reservationSvc(c Config) string { return c.ReservationSvcURL }
func deliverySvc(c Config) string    { return c.DeliverySvcURL }
func analyticsSvc(c Config) string   { return c.AnalyticsSvcURL }

// routes are matched on whole path segments, first match wins.
var routes = []route{
	{"/api/menu", menuSvc},
	{"/api/categories", menuSvc},
	{"/api/contact", menuSvc},
	{"/uploads", menuSvc},
	{"/api/admin/categories", menuSvc},
	{"/api/admin/menu-items", menuSvc},
	{"/api/admin/contact-messages", menuSvc},

	{"/api/reservations", reservationSvc},
	{"/api/admin/reservations", reservationSvc},

	{"/api/cart", deliverySvc},
	{"/api/delivery", deliverySvc},
	{"/api/admin/delivery-orders", deliverySvc},
	{"/api/admin/coupons", deliverySvc},
	{"/api/admin/promotions", deliverySvc},

	{"/api/admin/dashboard", analyticsSvc},
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	req.Header.Del(AdminKeyHeader)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		writeError(w, http.StatusBadGateway, "upstream service unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	if matchesPrefix(path, "/api/admin") && !g.authorizedAdmin(r) {
		writeError(w, http.StatusUnauthorized, "admin key required")
		return
	}

	for _, rt := range routes {
		if matchesPrefix(path, rt.prefix) {
			g.ProxyRequest(w, r, rt.target(g.config))
			return
		}
	}

	log.Printf("[GATEWAY] Unmatched route: %s", path)
	writeError(w, http.StatusNotFound, "API route not found")
}

func (g *Gateway) authorizedAdmin(r *http.Request) bool {
	if g.config.AdminKey == "" {
		return true
	}
	given := r.Header.Get(AdminKeyHeader)
	return subtle.ConstantTimeCompare([]byte(given), []byte(g.config.AdminKey)) == 1
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

func matchesPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": message})
}
