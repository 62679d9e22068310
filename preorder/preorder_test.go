package preorder_test

import (
	"context"
	"encoding/json"
	"testing"

	"ravintola-sinet/preorder"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() preorder.MapCatalog {
	return preorder.MapCatalog{
		1: {ID: 1, Name: "Salmon soup", Price: decimal.RequireFromString("10.00"), Status: preorder.StatusActive},
		2: {ID: 2, Name: "Reindeer stew", Price: decimal.RequireFromString("24.50"), Status: preorder.StatusActive},
		3: {ID: 3, Name: "Karelian pie", Price: decimal.RequireFromString("4.00"), DiscountPercent: decimal.NewFromInt(25), Status: preorder.StatusActive},
		4: {ID: 4, Name: "Secret menu", Price: decimal.RequireFromString("9.00"), Status: preorder.StatusHidden},
		5: {ID: 5, Name: "Cloudberry cake", Price: decimal.RequireFromString("7.00"), Status: preorder.StatusSoldOut},
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []preorder.Request
		want []preorder.Request
	}{
		{
			name: "drops non positive quantities",
			in:   []preorder.Request{{ItemID: 1, Qty: 0}, {ItemID: 2, Qty: -3}, {ItemID: 3, Qty: 1}},
			want: []preorder.Request{{ItemID: 3, Qty: 1}},
		},
		{
			name: "last quantity wins and first position is kept",
			in:   []preorder.Request{{ItemID: 2, Qty: 1}, {ItemID: 1, Qty: 2}, {ItemID: 2, Qty: 5}},
			want: []preorder.Request{{ItemID: 2, Qty: 5}, {ItemID: 1, Qty: 2}},
		},
		{
			name: "empty input",
			in:   nil,
			want: []preorder.Request{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, preorder.Normalize(testCase.in))
		})
	}
}

func TestAttach(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		reqs      []preorder.Request
		wantTotal string
		wantCount int
		wantLines int
		wantErr   error
	}{
		{
			name:      "two lines",
			reqs:      []preorder.Request{{ItemID: 1, Qty: 2}, {ItemID: 2, Qty: 1}},
			wantTotal: "44.50",
			wantCount: 3,
			wantLines: 2,
		},
		{
			name:      "item discount applied to unit price",
			reqs:      []preorder.Request{{ItemID: 3, Qty: 3}},
			wantTotal: "9.00",
			wantCount: 3,
			wantLines: 1,
		},
		{
			name:      "zero quantity dropped silently",
			reqs:      []preorder.Request{{ItemID: 1, Qty: 0}},
			wantTotal: "0.00",
			wantLines: 0,
		},
		{
			name:    "hidden item rejected",
			reqs:    []preorder.Request{{ItemID: 1, Qty: 1}, {ItemID: 4, Qty: 1}},
			wantErr: preorder.ErrItemUnavailable,
		},
		{
			name:    "sold out item rejected",
			reqs:    []preorder.Request{{ItemID: 5, Qty: 1}},
			wantErr: preorder.ErrItemUnavailable,
		},
		{
			name:    "unknown item rejected",
			reqs:    []preorder.Request{{ItemID: 99, Qty: 1}},
			wantErr: preorder.ErrItemUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			snapshot, err := preorder.Attach(ctx, testCatalog(), testCase.reqs)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, snapshot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantTotal, snapshot.Total.StringFixed(2))
			assert.Equal(t, testCase.wantCount, snapshot.Count)
			assert.Len(t, snapshot.Lines, testCase.wantLines)
		})
	}
}

func TestAttach_Idempotent(t *testing.T) {
	ctx := context.Background()
	reqs := []preorder.Request{{ItemID: 2, Qty: 1}, {ItemID: 3, Qty: 2}, {ItemID: 2, Qty: 2}}

	first, err := preorder.Attach(ctx, testCatalog(), reqs)
	require.NoError(t, err)
	second, err := preorder.Attach(ctx, testCatalog(), reqs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.Lines[0].ItemID)
	assert.Equal(t, 2, first.Lines[0].Qty)
	assert.True(t, first.Lines[1].ItemDiscounted)
}

func TestReprice_SkipsUnavailable(t *testing.T) {
	snapshot, err := preorder.Reprice(context.Background(), testCatalog(), []preorder.Request{
		{ItemID: 1, Qty: 1},
		{ItemID: 4, Qty: 2},
		{ItemID: 99, Qty: 1},
	})

	require.NoError(t, err)
	assert.Len(t, snapshot.Lines, 1)
	assert.Equal(t, "10.00", snapshot.Total.StringFixed(2))
}

func TestSnapshotJSONUsesNumbers(t *testing.T) {
	snapshot, err := preorder.Attach(context.Background(), testCatalog(), []preorder.Request{{ItemID: 1, Qty: 1}})
	require.NoError(t, err)

	payload, err := json.Marshal(snapshot)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"line_total":10`)
}

func TestPairs(t *testing.T) {
	reqs := preorder.Pairs([]int{1, 2, 3}, []int{2, 0})
	assert.Equal(t, []preorder.Request{{ItemID: 1, Qty: 2}, {ItemID: 2, Qty: 0}}, reqs)
}

func TestPostgresCatalog_ItemsByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "price", "discount_percent", "status"}).
		AddRow(1, "Salmon soup", "10.00", "0", "active").
		AddRow(3, "Karelian pie", "4.00", "25", "active")
	mock.ExpectQuery("SELECT id, name, price").WithArgs(sqlmock.AnyArg()).WillReturnRows(rows)

	catalog := preorder.NewPostgresCatalog(db)
	items, err := catalog.ItemsByIDs(context.Background(), []int{1, 3})

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "3.00", items[3].UnitPrice().StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
