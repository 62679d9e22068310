package preorder

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	StatusActive  = "active"
	StatusHidden  = "hidden"
	StatusSoldOut = "sold_out"
)

var ErrItemUnavailable = errors.New("menu item is not available")

var hundred = decimal.NewFromInt(100)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Item is the catalog view of a menu item needed for pricing.
type Item struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Status          string          `json:"status"`
}

func (i Item) Available() bool {
	return i.Status == StatusActive
}

func (i Item) Discounted() bool {
	return i.DiscountPercent.IsPositive()
}

func (i Item) UnitPrice() decimal.Decimal {
	if !i.Discounted() {
		return i.Price.Round(2)
	}
	return i.Price.Mul(hundred.Sub(i.DiscountPercent)).Div(hundred).Round(2)
}

type Request struct {
	ItemID int `json:"item_id"`
	Qty    int `json:"qty"`
}

type Line struct {
	ItemID         int             `json:"id"`
	Name           string          `json:"name"`
	Qty            int             `json:"qty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	LineTotal      decimal.Decimal `json:"line_total"`
	ItemDiscounted bool            `json:"item_discounted"`
}

type Snapshot struct {
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type Catalog interface {
	ItemsByIDs(ctx context.Context, ids []int) (map[int]Item, error)
}

// Normalize drops non-positive quantities and collapses duplicate item ids.
// The last quantity given for an item wins; the item keeps the position of
// its first appearance.
func Normalize(reqs []Request) []Request {
	index := make(map[int]int, len(reqs))
	out := make([]Request, 0, len(reqs))
	for _, req := range reqs {
		if req.Qty <= 0 {
			continue
		}
		if pos, ok := index[req.ItemID]; ok {
			out[pos].Qty = req.Qty
			continue
		}
		index[req.ItemID] = len(out)
		out = append(out, req)
	}
	return out
}

// Build prices normalized requests against a resolved item set. With strict
// set, a missing or unavailable item fails the whole build; otherwise it is
// left out of the snapshot.
func Build(items map[int]Item, reqs []Request, strict bool) (*Snapshot, error) {
	snapshot := &Snapshot{Lines: []Line{}, Total: decimal.Zero}
	for _, req := range Normalize(reqs) {
		item, ok := items[req.ItemID]
		if !ok || !item.Available() {
			if strict {
				return nil, fmt.Errorf("%w: item %d", ErrItemUnavailable, req.ItemID)
			}
			continue
		}
		unit := item.UnitPrice()
		line := Line{
			ItemID:         item.ID,
			Name:           item.Name,
			Qty:            req.Qty,
			UnitPrice:      unit,
			LineTotal:      unit.Mul(decimal.NewFromInt(int64(req.Qty))),
			ItemDiscounted: item.Discounted(),
		}
		snapshot.Lines = append(snapshot.Lines, line)
		snapshot.Total = snapshot.Total.Add(line.LineTotal)
		snapshot.Count += line.Qty
	}
	return snapshot, nil
}

// Attach resolves and prices a pre-order. Any unknown or unavailable item
// rejects the request.
func Attach(ctx context.Context, catalog Catalog, reqs []Request) (*Snapshot, error) {
	return resolve(ctx, catalog, reqs, true)
}

// Reprice prices a stored cart, leaving out items that are gone or hidden.
func Reprice(ctx context.Context, catalog Catalog, reqs []Request) (*Snapshot, error) {
	return resolve(ctx, catalog, reqs, false)
}

func resolve(ctx context.Context, catalog Catalog, reqs []Request, strict bool) (*Snapshot, error) {
	normalized := Normalize(reqs)
	if len(normalized) == 0 {
		return Build(nil, nil, strict)
	}
	ids := make([]int, 0, len(normalized))
	for _, req := range normalized {
		ids = append(ids, req.ItemID)
	}
	items, err := catalog.ItemsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}
	return Build(items, normalized, strict)
}

// Pairs zips parallel id and quantity lists as submitted by the reservation
// and cart forms. Extra entries on either side are ignored.
func Pairs(ids, qtys []int) []Request {
	n := len(ids)
	if len(qtys) < n {
		n = len(qtys)
	}
	reqs := make([]Request, 0, n)
	for i := 0; i < n; i++ {
		reqs = append(reqs, Request{ItemID: ids[i], Qty: qtys[i]})
	}
	return reqs
}
