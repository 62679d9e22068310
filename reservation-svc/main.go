package main

import (
	"log"
	"time"

	"ravintola-sinet/config"
	"ravintola-sinet/preorder"
	httpapi "ravintola-sinet/reservation-svc/internal/api/http"
	"ravintola-sinet/reservation-svc/internal/service"
	"ravintola-sinet/reservation-svc/internal/storage"
)

func main() {
	config.Load()
	restaurant := config.MustLoadRestaurant()

	db := config.MustInitSQLX()
	defer db.Close()
	rdb := config.MustInitRedis()
	defer rdb.Close()
	writer := config.NewKafkaWriter(config.TopicReservations)
	defer writer.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	reservations := service.NewReservationService(
		repository,
		storage.NewRedisCache(rdb, time.Minute),
		storage.NewKafkaPublisher(writer),
		preorder.NewPostgresCatalog(db.DB),
		service.NewSlotPolicy(restaurant.Location),
	)

	handler := httpapi.NewRouter(httpapi.NewHandler(reservations))
	httpapi.StartServer(":"+config.GetEnv("PORT", "8082"), handler)
}
