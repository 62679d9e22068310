package service

import (
	"context"
	"time"

	"ravintola-sinet/reservation-svc/internal/domain"
)

type ReservationServiceInterface interface {
	TryReserve(ctx context.Context, req domain.ReservationRequest) (*domain.Reservation, error)
	Get(ctx context.Context, id int) (*domain.Reservation, error)
	GetByToken(ctx context.Context, token string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Reservation, error)
	Availability(ctx context.Context, date string) ([]domain.SlotAvailability, error)
}

// SlotCheck decides whether a reservation fits the usage already committed
// to its slot. It runs inside the repository's slot transaction.
type SlotCheck func(used domain.SlotUsage) error

type ReservationRepository interface {
	CreateInSlot(ctx context.Context, res *domain.Reservation, check SlotCheck) error
	GetReservation(ctx context.Context, id int) (*domain.Reservation, error)
	GetReservationByToken(ctx context.Context, token string) (*domain.Reservation, error)
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int, from, to string) error
	SlotUsageBetween(ctx context.Context, from, to time.Time) (map[int64]domain.SlotUsage, error)
}

type AvailabilityCache interface {
	AvailabilityKey(date string) string
	GetAvailability(ctx context.Context, key string) ([]domain.SlotAvailability, bool, error)
	SetAvailability(ctx context.Context, key string, slots []domain.SlotAvailability) error
	Invalidate(ctx context.Context, key string) error
}

type ReservationPublisher interface {
	PublishReservation(ctx context.Context, event domain.ReservationEvent) error
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
