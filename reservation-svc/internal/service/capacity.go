package service

import (
	"errors"
	"fmt"

	"ravintola-sinet/reservation-svc/internal/domain"
)

const (
	TablesTotal    = 14
	ChairsTotal    = 55
	BabySeatsTotal = 2
	SeatsPerTable  = 4
)

var ErrCapacity = errors.New("not enough capacity for this time")

type Capacity struct {
	Tables    int
	Chairs    int
	BabySeats int
}

var DefaultCapacity = Capacity{Tables: TablesTotal, Chairs: ChairsTotal, BabySeats: BabySeatsTotal}

// TablesNeeded returns how many tables a party occupies, never less than one.
func TablesNeeded(partySize int) int {
	if partySize <= 0 {
		return 1
	}
	return (partySize + SeatsPerTable - 1) / SeatsPerTable
}

// Check reports whether a party fits on top of the slot's current usage.
// Chairs are checked first, then baby seats, then tables.
func (c Capacity) Check(used domain.SlotUsage, partySize, babySeats int) error {
	if used.Chairs+partySize > c.Chairs {
		return fmt.Errorf("%w: not enough seats left (%d seats remaining)", ErrCapacity, max(0, c.Chairs-used.Chairs))
	}
	if used.BabySeats+babySeats > c.BabySeats {
		return fmt.Errorf("%w: not enough baby seats left (%d remaining)", ErrCapacity, max(0, c.BabySeats-used.BabySeats))
	}
	if used.Tables+TablesNeeded(partySize) > c.Tables {
		return fmt.Errorf("%w: not enough tables left (%d tables remaining)", ErrCapacity, max(0, c.Tables-used.Tables))
	}
	return nil
}

func (c Capacity) Remaining(used domain.SlotUsage) domain.SlotUsage {
	return domain.SlotUsage{
		Tables:    max(0, c.Tables-used.Tables),
		Chairs:    max(0, c.Chairs-used.Chairs),
		BabySeats: max(0, c.BabySeats-used.BabySeats),
	}
}
