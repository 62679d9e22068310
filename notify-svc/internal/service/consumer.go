package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	"ravintola-sinet/notify-svc/internal/domain"
)

type Consumer struct {
	Reader   MessageReader
	Store    StoreInterface
	Notifier Notifier
	Location *time.Location
}

func NewConsumer(reader MessageReader, store StoreInterface, notifier Notifier, loc *time.Location) *Consumer {
	return &Consumer{
		Reader:   reader,
		Store:    store,
		Notifier: notifier,
		Location: loc,
	}
}

// Start reads until ctx is cancelled or the reader is closed.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[notify-svc] consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				log.Println("[notify-svc] consumer stopped")
				return
			}
			log.Printf("[notify-svc] error reading message: %v", err)
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[notify-svc] skipping malformed message at offset %d: %v", message.Offset, err)
			continue
		}
		if err := c.ProcessEvent(ctx, event); err != nil {
			log.Printf("[notify-svc] %s: %v", event.Type, err)
		}
	}
}

// ProcessEvent records counters for new bookings and orders and tells the
// staff chat about them. Unknown event types are ignored.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.Event) error {
	var storeErr error
	var text string

	switch event.Type {
	case domain.EventReservationCreated:
		storeErr = c.Store.RecordReservation(ctx, event)
		text = FormatReservation(event, c.Location)
	case domain.EventOrderPlaced:
		storeErr = c.Store.RecordOrder(ctx, event)
		text = FormatOrder(event)
	case domain.EventReservationStatusChanged, domain.EventOrderStatusChanged:
		if event.Status != domain.StatusCancelled {
			return nil
		}
		text = FormatCancellation(event)
	default:
		return nil
	}

	if storeErr != nil {
		log.Printf("[notify-svc] failed to record %s: %v", event.Type, storeErr)
	}
	if err := c.Notifier.Send(ctx, Truncate(text, MaxMessageLength)); err != nil {
		return errors.Join(storeErr, err)
	}
	return storeErr
}
