package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ravintola-sinet/notify-svc/internal/domain"
)

// MaxMessageLength is the Telegram limit for a single text message.
const MaxMessageLength = 4096

func FormatReservation(e domain.Event, loc *time.Location) string {
	start := e.StartAt
	if loc != nil {
		start = start.In(loc)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New reservation #%d\n", e.ReservationID)
	fmt.Fprintf(&b, "%s at %s\n", start.Format("Mon 02.01.2006"), start.Format("15:04"))
	fmt.Fprintf(&b, "%s, %s\n", e.Name, e.Phone)
	fmt.Fprintf(&b, "Guests: %d", e.PartySize)
	if e.BabySeats > 0 {
		fmt.Fprintf(&b, ", baby seats: %d", e.BabySeats)
	}
	if e.ItemCount > 0 {
		fmt.Fprintf(&b, "\nPre-order (%d items, %s €):", e.ItemCount, euros(e.PreorderTotal))
		writeItems(&b, e.Items)
	}
	return b.String()
}

func FormatOrder(e domain.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New delivery order #%d\n", e.OrderID)
	fmt.Fprintf(&b, "%s, %s\n", e.Name, e.Phone)
	if e.AddressLabel != "" {
		fmt.Fprintf(&b, "Address: %s\n", e.AddressLabel)
	}
	fmt.Fprintf(&b, "Payment: %s\n", e.PaymentMethod)
	fmt.Fprintf(&b, "Items (%d):", e.ItemCount)
	writeItems(&b, e.Items)
	fmt.Fprintf(&b, "\nTotal: %s €", euros(e.Total))
	return b.String()
}

func FormatCancellation(e domain.Event) string {
	if e.Type == domain.EventOrderStatusChanged {
		return fmt.Sprintf("Delivery order #%d was cancelled (%s, %s)", e.OrderID, e.Name, e.Phone)
	}
	return fmt.Sprintf("Reservation #%d was cancelled (%s, %s)", e.ReservationID, e.Name, e.Phone)
}

// Truncate cuts text to at most limit runes, marking the cut with an ellipsis.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

func writeItems(b *strings.Builder, items []domain.EventItem) {
	for _, item := range items {
		fmt.Fprintf(b, "\n- %d × %s", item.Qty, item.Name)
	}
}

func euros(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
