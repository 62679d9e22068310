package service

import (
	"errors"
	"fmt"
	"time"
)

const (
	SlotMinutes    = 30
	FirstSlotStart = 10 * 60
	LastSlotStart  = 21*60 + 30
)

var ErrInvalidSlot = errors.New("invalid reservation time")

// SlotPolicy places reservation times on the restaurant's 30-minute grid in
// its local time zone.
type SlotPolicy struct {
	Location *time.Location
	Now      func() time.Time
}

func NewSlotPolicy(loc *time.Location) SlotPolicy {
	if loc == nil {
		loc = time.Local
	}
	return SlotPolicy{Location: loc, Now: time.Now}
}

func (p SlotPolicy) Parse(date, clock string) (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, p.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected date YYYY-MM-DD and time HH:MM", ErrInvalidSlot)
	}
	return start, nil
}

func (p SlotPolicy) Validate(start time.Time) error {
	local := start.In(p.Location)
	if local.Minute()%SlotMinutes != 0 || local.Second() != 0 || local.Nanosecond() != 0 {
		return fmt.Errorf("%w: bookings are available only in 30-minute intervals", ErrInvalidSlot)
	}
	minuteOfDay := local.Hour()*60 + local.Minute()
	if minuteOfDay < FirstSlotStart || minuteOfDay > LastSlotStart {
		return fmt.Errorf("%w: bookings start between 10:00 and 21:30", ErrInvalidSlot)
	}
	if !start.After(p.Now()) {
		return fmt.Errorf("%w: please choose a future time", ErrInvalidSlot)
	}
	return nil
}

// DaySlots lists every bookable start time of the given local date.
func (p SlotPolicy) DaySlots(date string) ([]time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, p.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: expected date YYYY-MM-DD", ErrInvalidSlot)
	}
	slots := make([]time.Time, 0, (LastSlotStart-FirstSlotStart)/SlotMinutes+1)
	for minute := FirstSlotStart; minute <= LastSlotStart; minute += SlotMinutes {
		slots = append(slots, time.Date(day.Year(), day.Month(), day.Day(), minute/60, minute%60, 0, 0, p.Location))
	}
	return slots, nil
}

func (p SlotPolicy) LocalDate(t time.Time) string {
	return t.In(p.Location).Format("2006-01-02")
}
