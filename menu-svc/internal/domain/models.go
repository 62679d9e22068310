package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ravintola-sinet/preorder"
)

const (
	StatusActive  = preorder.StatusActive
	StatusHidden  = preorder.StatusHidden
	StatusSoldOut = preorder.StatusSoldOut

	PopularTag = "popular"
)

var ErrNotFound = errors.New("not found")

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID              int             `json:"id"`
	CategoryID      int             `json:"category_id"`
	CategoryName    string          `json:"category_name,omitempty"`
	CategorySlug    string          `json:"category_slug,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	ImageURL        string          `json:"image_url"`
	Tags            []string        `json:"tags"`
	Allergens       []string        `json:"allergens"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (m MenuItem) PricingItem() preorder.Item {
	return preorder.Item{
		ID:              m.ID,
		Name:            m.Name,
		Price:           m.Price,
		DiscountPercent: m.DiscountPercent,
		Status:          m.Status,
	}
}

func (m MenuItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

type MenuFilter struct {
	CategorySlug  string
	Query         string
	Status        string
	Tag           string
	IncludeHidden bool
	Limit         int
}

// Menu is the public menu page: active categories plus the visible items.
type Menu struct {
	Categories     []Category `json:"categories"`
	Items          []MenuItem `json:"items"`
	ActiveCategory *Category  `json:"active_category"`
	Query          string     `json:"query"`
}

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SplitList parses a comma separated column into a trimmed list without duplicates.
func SplitList(raw string) []string {
	return NormalizeList(strings.Split(raw, ","))
}

func NormalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

func JoinList(values []string) string {
	return strings.Join(NormalizeList(values), ",")
}
