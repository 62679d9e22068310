package main

import (
	"log"

	"ravintola-sinet/config"
	httpapi "ravintola-sinet/delivery-svc/internal/api/http"
	"ravintola-sinet/delivery-svc/internal/service"
	"ravintola-sinet/delivery-svc/internal/storage"
	"ravintola-sinet/preorder"
)

func main() {
	config.Load()
	restaurant := config.MustLoadRestaurant()
	delivery := config.LoadDelivery()

	db := config.MustInitPostgres()
	defer db.Close()
	rdb := config.MustInitRedis()
	defer rdb.Close()
	writer := config.NewKafkaWriter(config.TopicDeliveryOrders)
	defer writer.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	carts := storage.NewRedisCartStore(rdb, storage.CartTTL)

	estimator := service.Estimator{
		OriginLat:   restaurant.Lat,
		OriginLng:   restaurant.Lng,
		Schedule:    service.NewFeeSchedule(delivery.BaseFee, delivery.BaseKm, delivery.PerKm, delivery.MaxFee),
		MaxRadiusKm: delivery.MaxRadiusKm,
	}

	cartService := service.NewCartService(carts, preorder.NewPostgresCatalog(db), repository, repository, estimator, nil)
	orderService := service.NewOrderService(
		repository,
		carts,
		cartService,
		storage.NewKafkaPublisher(writer),
		service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")},
	)

	handler := httpapi.NewHandler(
		cartService,
		orderService,
		service.NewCouponService(repository, nil),
		service.NewPromotionService(repository, nil),
	)
	handler.Geocoder = service.NewNominatimClient(
		config.GetEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		config.GetEnv("NOMINATIM_USER_AGENT", "RavintolaSinetDelivery/1.0 (dev-local)"),
		config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		nil,
	)
	httpapi.StartServer(":"+config.GetEnv("PORT", "8083"), httpapi.NewRouter(handler))
}
