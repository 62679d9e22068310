package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ravintola-sinet/preorder"
	"ravintola-sinet/reservation-svc/internal/domain"
)

var (
	ErrInvalidReservation = errors.New("invalid reservation")
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrInvalidTransition  = errors.New("reservation status change not allowed")
)

const defaultListLimit = 300

var statusTransitions = map[string][]string{
	domain.StatusPending:   {domain.StatusConfirmed, domain.StatusCancelled},
	domain.StatusConfirmed: {domain.StatusCompleted, domain.StatusCancelled},
}

func ValidStatus(status string) bool {
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		return true
	}
	return false
}

func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type ReservationService struct {
	repository ReservationRepository
	cache      AvailabilityCache
	publisher  ReservationPublisher
	catalog    preorder.Catalog
	policy     SlotPolicy
	capacity   Capacity
}

func NewReservationService(repository ReservationRepository, cache AvailabilityCache, publisher ReservationPublisher, catalog preorder.Catalog, policy SlotPolicy) *ReservationService {
	return &ReservationService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		catalog:    catalog,
		policy:     policy,
		capacity:   DefaultCapacity,
	}
}

func (s *ReservationService) TryReserve(ctx context.Context, req domain.ReservationRequest) (*domain.Reservation, error) {
	start, err := s.policy.Parse(strings.TrimSpace(req.Date), strings.TrimSpace(req.Time))
	if err != nil {
		return nil, err
	}
	if err := s.policy.Validate(start); err != nil {
		return nil, err
	}
	if err := validateGuest(req); err != nil {
		return nil, err
	}

	snapshot, err := preorder.Attach(ctx, s.catalog, req.PreorderRequests())
	if err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		PublicToken:    uuid.NewString(),
		StartAt:        start,
		Name:           strings.TrimSpace(req.Name),
		Phone:          strings.TrimSpace(req.Phone),
		Email:          strings.TrimSpace(req.Email),
		PartySize:      req.PartySize,
		BabySeats:      req.BabySeats,
		PreferredTable: req.PreferredTable,
		TablesNeeded:   TablesNeeded(req.PartySize),
		Notes:          strings.TrimSpace(req.Notes),
		Status:         domain.StatusPending,
		Items:          []domain.ReservationItem{},
		PreorderTotal:  snapshot.Total,
	}
	for _, line := range snapshot.Lines {
		res.Items = append(res.Items, domain.ReservationItem{
			MenuItemID: line.ItemID,
			Name:       line.Name,
			Qty:        line.Qty,
			UnitPrice:  line.UnitPrice,
			LineTotal:  line.LineTotal,
		})
	}

	err = s.repository.CreateInSlot(ctx, res, func(used domain.SlotUsage) error {
		return s.capacity.Check(used, res.PartySize, res.BabySeats)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, res.StartAt)
	s.publish(ctx, "reservation_created", res)
	return res, nil
}

func validateGuest(req domain.ReservationRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: name and phone are required", ErrInvalidReservation)
	}
	if req.PartySize < 1 {
		return fmt.Errorf("%w: party size must be at least 1", ErrInvalidReservation)
	}
	if req.BabySeats < 0 {
		return fmt.Errorf("%w: baby seats cannot be negative", ErrInvalidReservation)
	}
	if req.PreferredTable != nil && (*req.PreferredTable < 1 || *req.PreferredTable > TablesTotal) {
		return fmt.Errorf("%w: preferred table must be between 1 and %d", ErrInvalidReservation, TablesTotal)
	}
	return nil
}

func (s *ReservationService) Get(ctx context.Context, id int) (*domain.Reservation, error) {
	res, err := s.repository.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	fillTotals(res)
	return res, nil
}

// GetByToken is the guest's lookup: only the token issued on creation
// opens a reservation outside the admin routes.
func (s *ReservationService) GetByToken(ctx context.Context, token string) (*domain.Reservation, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, domain.ErrNotFound
	}
	res, err := s.repository.GetReservationByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	fillTotals(res)
	return res, nil
}

func fillTotals(res *domain.Reservation) {
	res.PreorderTotal = decimal.Zero
	for i := range res.Items {
		item := &res.Items[i]
		item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Qty)))
		res.PreorderTotal = res.PreorderTotal.Add(item.LineTotal)
	}
}

func (s *ReservationService) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	if filter.Limit <= 0 || filter.Limit > defaultListLimit {
		filter.Limit = defaultListLimit
	}
	return s.repository.ListReservations(ctx, filter)
}

func (s *ReservationService) UpdateStatus(ctx context.Context, id int, status string) (*domain.Reservation, error) {
	status = strings.TrimSpace(status)
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	res, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status == status {
		return res, nil
	}
	if !CanTransition(res.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, status)
	}

	if err := s.repository.UpdateStatus(ctx, id, res.Status, status); err != nil {
		return nil, err
	}
	res.Status = status

	s.invalidate(ctx, res.StartAt)
	s.publish(ctx, "reservation_status_changed", res)
	return res, nil
}

func (s *ReservationService) Availability(ctx context.Context, date string) ([]domain.SlotAvailability, error) {
	slots, err := s.policy.DaySlots(date)
	if err != nil {
		return nil, err
	}

	var key string
	if s.cache != nil {
		key = s.cache.AvailabilityKey(date)
		if cached, ok, _ := s.cache.GetAvailability(ctx, key); ok {
			return cached, nil
		}
	}

	usage, err := s.repository.SlotUsageBetween(ctx, slots[0], slots[len(slots)-1].Add(SlotMinutes*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to load slot usage: %w", err)
	}

	result := make([]domain.SlotAvailability, 0, len(slots))
	for _, start := range slots {
		left := s.capacity.Remaining(usage[start.Unix()])
		result = append(result, domain.SlotAvailability{
			StartAt:       start,
			Time:          start.Format("15:04"),
			TablesLeft:    left.Tables,
			ChairsLeft:    left.Chairs,
			BabySeatsLeft: left.BabySeats,
			Full:          left.Tables == 0 || left.Chairs == 0,
		})
	}

	if s.cache != nil {
		_ = s.cache.SetAvailability(ctx, key, result)
	}
	return result, nil
}

func (s *ReservationService) invalidate(ctx context.Context, start time.Time) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, s.cache.AvailabilityKey(s.policy.LocalDate(start))); err != nil {
		log.Printf("[reservation-svc] failed to invalidate availability: %v", err)
	}
}

func (s *ReservationService) publish(ctx context.Context, eventType string, res *domain.Reservation) {
	if s.publisher == nil {
		return
	}
	count := 0
	items := make([]domain.EventItem, 0, len(res.Items))
	for _, item := range res.Items {
		count += item.Qty
		items = append(items, domain.EventItem{Name: item.Name, Qty: item.Qty})
	}
	event := domain.ReservationEvent{
		Type:          eventType,
		ReservationID: res.ID,
		StartAt:       res.StartAt,
		Name:          res.Name,
		Phone:         res.Phone,
		PartySize:     res.PartySize,
		BabySeats:     res.BabySeats,
		PreorderTotal: res.PreorderTotal.Round(2).InexactFloat64(),
		ItemCount:     count,
		Items:         items,
		Status:        res.Status,
		Timestamp:     time.Now(),
	}
	if err := s.publisher.PublishReservation(ctx, event); err != nil {
		log.Printf("[reservation-svc] failed to publish %s for reservation %d: %v", eventType, res.ID, err)
	}
}
