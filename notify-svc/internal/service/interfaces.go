package service

import (
	"context"

	"github.com/segmentio/kafka-go"

	"ravintola-sinet/notify-svc/internal/domain"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StoreInterface interface {
	RecordReservation(ctx context.Context, event domain.Event) error
	RecordOrder(ctx context.Context, event domain.Event) error
}

type Notifier interface {
	Send(ctx context.Context, text string) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.Event) error
}

var (
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
