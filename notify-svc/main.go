package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"ravintola-sinet/config"
	"ravintola-sinet/notify-svc/internal/service"
	"ravintola-sinet/notify-svc/internal/storage"
)

func newNotifier() service.Notifier {
	tg := config.LoadTelegram()
	if tg.Token == "" || tg.ChatID == 0 {
		log.Println("[notify-svc] TELEGRAM_BOT_TOKEN or TELEGRAM_GROUP_CHAT_ID not set, logging notifications")
		return storage.LogNotifier{}
	}
	notifier, err := storage.NewTelegramNotifier(tg.Token, tg.ChatID)
	if err != nil {
		log.Printf("[notify-svc] telegram unavailable, logging notifications: %v", err)
		return storage.LogNotifier{}
	}
	return notifier
}

func main() {
	config.Load()
	restaurant := config.MustLoadRestaurant()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaGroupReader(
		config.GetEnv("KAFKA_GROUP_ID", "notify-svc"),
		config.TopicReservations,
		config.TopicDeliveryOrders,
	)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb, restaurant.Location), newNotifier(), restaurant.Location)
	consumer.Start(ctx)
}
