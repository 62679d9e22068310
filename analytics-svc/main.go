package main

import (
	httpapi "ravintola-sinet/analytics-svc/internal/api/http"
	"ravintola-sinet/analytics-svc/internal/service"
	"ravintola-sinet/config"
)

func main() {
	config.Load()
	restaurant := config.MustLoadRestaurant()

	db := config.MustInitPostgres()
	defer db.Close()
	rdb := config.MustInitRedis()
	defer rdb.Close()

	analytics := service.NewAnalyticsService(db, rdb, restaurant.Location, nil)
	handler := httpapi.NewRouter(httpapi.NewHandler(analytics))
	httpapi.StartServer(":"+config.GetEnv("PORT", "8084"), handler)
}
