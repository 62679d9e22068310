package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"ravintola-sinet/reservation-svc/internal/domain"
	"ravintola-sinet/reservation-svc/internal/service"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishReservation(ctx context.Context, event domain.ReservationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.ReservationID)),
		Value: payload,
	})
}

var _ service.ReservationPublisher = (*KafkaPublisher)(nil)
