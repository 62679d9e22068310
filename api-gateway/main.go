package main

import (
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"ravintola-sinet/api-gateway/internal/gateway"
	"ravintola-sinet/config"
)

func main() {
	config.Load()

	cfg := gateway.Config{
		MenuSvcURL:        config.GetEnv("MENU_SVC_URL", "http://localhost:8081"),
		ReservationSvcURL: config.GetEnv("RESERVATION_SVC_URL", "http://localhost:8082"),
		DeliverySvcURL:    config.GetEnv("DELIVERY_SVC_URL", "http://localhost:8083"),
		AnalyticsSvcURL:   config.GetEnv("ANALYTICS_SVC_URL", "http://localhost:8084"),
		AdminKey:          config.GetEnv("ADMIN_API_KEY", ""),
	}
	if cfg.AdminKey == "" {
		log.Println("ADMIN_API_KEY not set, admin routes are open")
	}

	gw := gateway.NewGateway(cfg, &http.Client{Timeout: 30 * time.Second})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{config.GetEnv("CORS_ORIGIN", "http://localhost:3000")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Session-ID", gateway.AdminKeyHeader},
		ExposedHeaders:   []string{"X-Session-ID"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	addr := ":" + config.GetEnv("PORT", "8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
