package tests

import (
	"context"
	"math"
	"testing"
	"time"

	"ravintola-sinet/delivery-svc/internal/domain"
	"ravintola-sinet/delivery-svc/internal/mocks"
	"ravintola-sinet/delivery-svc/internal/service"
	"ravintola-sinet/delivery-svc/internal/storage"
	"ravintola-sinet/preorder"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionID = "5f2b9c8e-0c1d-4a55-9d3e-7b1a2c3d4e5f"

func deliveryMenu() preorder.MapCatalog {
	return preorder.MapCatalog{
		1: {ID: 1, Name: "Salmon soup", Price: money("25.00"), Status: preorder.StatusActive},
		2: {ID: 2, Name: "Blueberry pie", Price: money("6.50"), DiscountPercent: money("20"), Status: preorder.StatusActive},
		3: {ID: 3, Name: "Staff meal", Price: money("9.00"), Status: preorder.StatusHidden},
		4: {ID: 4, Name: "Reindeer stew", Price: money("28.00"), Status: preorder.StatusSoldOut},
	}
}

type cartFixture struct {
	service    *service.CartService
	store      *storage.RedisCartStore
	coupons    *mocks.CouponRepository
	promotions *mocks.PromotionRepository
}

func newCartFixture(t *testing.T) *cartFixture {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := storage.NewRedisCartStore(client, storage.CartTTL)
	coupons := new(mocks.CouponRepository)
	promotions := new(mocks.PromotionRepository)
	promotions.On("CurrentPromotion", mock.Anything, mock.Anything).Return(nil, nil)

	return &cartFixture{
		service:    service.NewCartService(store, deliveryMenu(), coupons, promotions, defaultEstimator(), func() time.Time { return pricingNow }),
		store:      store,
		coupons:    coupons,
		promotions: promotions,
	}
}

func (f *cartFixture) stored(t *testing.T) *domain.Cart {
	cart, err := f.store.Load(context.Background(), sessionID)
	require.NoError(t, err)
	return cart
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		adds        [][2]int
		expectedErr error
		subtotal    string
		count       int
		lines       int
	}{
		{name: "single_item", adds: [][2]int{{1, 2}}, subtotal: "50.00", count: 2, lines: 1},
		{name: "zero_qty_defaults_to_one", adds: [][2]int{{1, 0}}, subtotal: "25.00", count: 1, lines: 1},
		{name: "repeat_add_increments", adds: [][2]int{{1, 1}, {1, 2}}, subtotal: "75.00", count: 3, lines: 1},
		{name: "item_discount_in_unit_price", adds: [][2]int{{2, 1}}, subtotal: "5.20", count: 1, lines: 1},
		{name: "two_items", adds: [][2]int{{1, 1}, {2, 2}}, subtotal: "35.40", count: 3, lines: 2},
		{name: "hidden_item_rejected", adds: [][2]int{{3, 1}}, expectedErr: preorder.ErrItemUnavailable},
		{name: "sold_out_item_rejected", adds: [][2]int{{4, 1}}, expectedErr: preorder.ErrItemUnavailable},
		{name: "unknown_item_rejected", adds: [][2]int{{99, 1}}, expectedErr: preorder.ErrItemUnavailable},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newCartFixture(t)

			var (
				snapshot *domain.CartSnapshot
				err      error
			)
			for _, add := range testCase.adds {
				snapshot, err = f.service.AddItem(ctx, sessionID, add[0], add[1])
			}

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				assert.Empty(t, f.stored(t).Items)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.subtotal, snapshot.Subtotal.StringFixed(2))
			assert.Equal(t, testCase.subtotal, snapshot.Total.StringFixed(2))
			assert.Equal(t, testCase.count, snapshot.Count)
			assert.Len(t, snapshot.Lines, testCase.lines)
			assert.Len(t, f.stored(t).Items, testCase.lines)
		})
	}
}

func TestCartService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	_, err := f.service.AddItem(ctx, sessionID, 1, 1)
	require.NoError(t, err)
	_, err = f.service.AddItem(ctx, sessionID, 2, 1)
	require.NoError(t, err)

	snapshot, err := f.service.UpdateItem(ctx, sessionID, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, "105.20", snapshot.Subtotal.StringFixed(2))
	assert.Equal(t, 4, snapshot.Lines[0].Qty)

	snapshot, err = f.service.UpdateItem(ctx, sessionID, 1, 0)
	require.NoError(t, err)
	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, 2, snapshot.Lines[0].ItemID)

	snapshot, err = f.service.UpdateItem(ctx, sessionID, 2, -3)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Lines)
	assert.Equal(t, "0.00", snapshot.Total.StringFixed(2))

	_, err = f.service.UpdateItem(ctx, sessionID, 3, 2)
	assert.ErrorIs(t, err, preorder.ErrItemUnavailable)
}

func TestCartService_QuantityLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("single_add_over_limit", func(t *testing.T) {
		f := newCartFixture(t)
		_, err := f.service.AddItem(ctx, sessionID, 1, service.MaxLineQty+1)
		assert.ErrorIs(t, err, service.ErrQuantity)
		assert.Empty(t, f.stored(t).Items)
	})

	t.Run("increments_stop_at_limit", func(t *testing.T) {
		f := newCartFixture(t)
		_, err := f.service.AddItem(ctx, sessionID, 1, 60)
		require.NoError(t, err)
		_, err = f.service.AddItem(ctx, sessionID, 1, 40)
		assert.ErrorIs(t, err, service.ErrQuantity)

		snapshot, err := f.service.AddItem(ctx, sessionID, 1, 39)
		require.NoError(t, err)
		assert.Equal(t, service.MaxLineQty, snapshot.Count)
		assert.Equal(t, service.MaxLineQty, f.stored(t).Qty(1))
	})

	t.Run("huge_add_cannot_wrap", func(t *testing.T) {
		f := newCartFixture(t)
		_, err := f.service.AddItem(ctx, sessionID, 1, 1)
		require.NoError(t, err)
		_, err = f.service.AddItem(ctx, sessionID, 1, math.MaxInt)
		assert.ErrorIs(t, err, service.ErrQuantity)
		assert.Equal(t, 1, f.stored(t).Qty(1))
	})

	t.Run("update_over_limit", func(t *testing.T) {
		f := newCartFixture(t)
		_, err := f.service.AddItem(ctx, sessionID, 1, 2)
		require.NoError(t, err)
		_, err = f.service.UpdateItem(ctx, sessionID, 1, service.MaxLineQty+1)
		assert.ErrorIs(t, err, service.ErrQuantity)
		assert.Equal(t, 2, f.stored(t).Qty(1))

		snapshot, err := f.service.UpdateItem(ctx, sessionID, 1, service.MaxLineQty)
		require.NoError(t, err)
		assert.Equal(t, service.MaxLineQty, snapshot.Count)
	})
}

func TestCartService_SummaryDropsItemsHiddenLater(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	require.NoError(t, f.store.Save(ctx, &domain.Cart{
		SessionID: sessionID,
		Items:     []domain.CartItem{{ItemID: 1, Qty: 1}, {ItemID: 3, Qty: 2}},
	}))

	snapshot, err := f.service.Summary(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, "25.00", snapshot.Total.StringFixed(2))
	assert.Nil(t, snapshot.Coupon)
	assert.Nil(t, snapshot.Location)
}

func TestCartService_CouponRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)
	f.coupons.On("FindCouponByCode", mock.Anything, "SAVE10").
		Return(coupon("SAVE10", domain.DiscountPercent, "10", "0"), nil)

	_, err := f.service.AddItem(ctx, sessionID, 1, 2)
	require.NoError(t, err)

	applied, err := f.service.ApplyCoupon(ctx, sessionID, " save 10 ")
	require.NoError(t, err)
	require.NotNil(t, applied.Coupon)
	assert.True(t, applied.Coupon.Active)
	assert.Equal(t, "SAVE10", applied.Coupon.Code)
	assert.Equal(t, "5.00", applied.CouponDiscount.StringFixed(2))
	assert.Equal(t, "45.00", applied.Total.StringFixed(2))
	assert.Equal(t, "SAVE10", f.stored(t).CouponCode)

	removed, err := f.service.RemoveCoupon(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, removed.Coupon)
	assert.Equal(t, "0.00", removed.CouponDiscount.StringFixed(2))
	assert.Equal(t, "50.00", removed.Total.StringFixed(2))
	assert.Empty(t, f.stored(t).CouponCode)
}

func TestCartService_PercentCouponOnDiscountedItemsInactive(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)
	f.coupons.On("FindCouponByCode", mock.Anything, "SAVE10").
		Return(coupon("SAVE10", domain.DiscountPercent, "10", "0"), nil)

	_, err := f.service.AddItem(ctx, sessionID, 2, 2)
	require.NoError(t, err)

	snapshot, err := f.service.ApplyCoupon(ctx, sessionID, "SAVE10")
	require.NoError(t, err)
	require.NotNil(t, snapshot.Coupon)
	assert.False(t, snapshot.Coupon.Active)
	assert.True(t, snapshot.CouponDiscount.IsZero())
	assert.Equal(t, "10.40", snapshot.Total.StringFixed(2))
}

func TestCartService_ApplyCouponRejected(t *testing.T) {
	ctx := context.Background()
	past := pricingNow.Add(-time.Hour)

	tests := []struct {
		name         string
		code         string
		prepareMocks func(*mocks.CouponRepository)
	}{
		{
			name:         "empty_code",
			code:         "   ",
			prepareMocks: func(m *mocks.CouponRepository) {},
		},
		{
			name: "unknown_code",
			code: "NOPE",
			prepareMocks: func(m *mocks.CouponRepository) {
				m.On("FindCouponByCode", mock.Anything, "NOPE").Return(nil, domain.ErrNotFound)
			},
		},
		{
			name: "expired_code",
			code: "OLD",
			prepareMocks: func(m *mocks.CouponRepository) {
				c := coupon("OLD", domain.DiscountPercent, "10", "0")
				c.EndAt = &past
				m.On("FindCouponByCode", mock.Anything, "OLD").Return(c, nil)
			},
		},
		{
			name: "min_subtotal_not_met",
			code: "BIG",
			prepareMocks: func(m *mocks.CouponRepository) {
				m.On("FindCouponByCode", mock.Anything, "BIG").Return(coupon("BIG", domain.DiscountFixed, "10", "100"), nil)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newCartFixture(t)
			testCase.prepareMocks(f.coupons)
			_, err := f.service.AddItem(ctx, sessionID, 1, 1)
			require.NoError(t, err)

			snapshot, err := f.service.ApplyCoupon(ctx, sessionID, testCase.code)

			assert.ErrorIs(t, err, service.ErrCoupon)
			assert.Nil(t, snapshot)
			assert.Empty(t, f.stored(t).CouponCode)
		})
	}
}

func TestCartService_StaleCouponDropsOut(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)
	f.coupons.On("FindCouponByCode", mock.Anything, "GONE").Return(nil, domain.ErrNotFound)

	require.NoError(t, f.store.Save(ctx, &domain.Cart{
		SessionID:  sessionID,
		Items:      []domain.CartItem{{ItemID: 1, Qty: 1}},
		CouponCode: "GONE",
	}))

	snapshot, err := f.service.Summary(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, snapshot.Coupon)
	assert.Equal(t, "25.00", snapshot.Total.StringFixed(2))
}

func TestCartService_QuoteDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	_, err := f.service.AddItem(ctx, sessionID, 1, 1)
	require.NoError(t, err)

	quote, err := f.service.Quote(ctx, sessionID, restaurantLat+kmNorth(5), restaurantLng)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, quote.DistanceKm, 0.01)
	assert.Equal(t, "6.00", quote.DeliveryFee.StringFixed(2))
	assert.Equal(t, "6.00", quote.BaseDeliveryFee.StringFixed(2))
	assert.Equal(t, "25.00", quote.Subtotal.StringFixed(2))
	assert.Equal(t, "31.00", quote.EstimatedTotal.StringFixed(2))
	assert.True(t, quote.InRange)
	assert.Equal(t, 10.0, quote.MaxRadiusKm)

	assert.Nil(t, f.stored(t).Location)

	far, err := f.service.Quote(ctx, sessionID, restaurantLat+kmNorth(15), restaurantLng)
	require.NoError(t, err)
	assert.False(t, far.InRange)
	assert.Equal(t, "10.00", far.DeliveryFee.StringFixed(2))

	_, err = f.service.Quote(ctx, sessionID, 120, 0)
	assert.ErrorIs(t, err, service.ErrInvalidCoordinates)
}

func TestCartService_SetLocation(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	_, err := f.service.SetLocation(ctx, sessionID, domain.Location{Lat: -100, Lng: 0})
	assert.ErrorIs(t, err, service.ErrInvalidCoordinates)

	_, err = f.service.AddItem(ctx, sessionID, 1, 1)
	require.NoError(t, err)

	snapshot, err := f.service.SetLocation(ctx, sessionID, domain.Location{Lat: restaurantLat + kmNorth(5), Lng: restaurantLng})
	require.NoError(t, err)
	require.NotNil(t, snapshot.Location)
	assert.Equal(t, "Pinned location", snapshot.Location.Label)
	assert.True(t, snapshot.Location.InRange)
	assert.Equal(t, "6.00", snapshot.DeliveryFee.StringFixed(2))
	assert.Equal(t, "31.00", snapshot.Total.StringFixed(2))

	stored := f.stored(t)
	require.NotNil(t, stored.Location)
	assert.Equal(t, "Pinned location", stored.Location.Label)
}

func TestCartService_ClearKeepsLocation(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)
	f.coupons.On("FindCouponByCode", mock.Anything, "SAVE10").
		Return(coupon("SAVE10", domain.DiscountPercent, "10", "0"), nil)

	_, err := f.service.AddItem(ctx, sessionID, 1, 2)
	require.NoError(t, err)
	_, err = f.service.ApplyCoupon(ctx, sessionID, "SAVE10")
	require.NoError(t, err)
	_, err = f.service.SetLocation(ctx, sessionID, domain.Location{Lat: restaurantLat, Lng: restaurantLng, Label: "Torikatu 1"})
	require.NoError(t, err)

	cleared, err := f.service.Clear(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, cleared.Lines)
	assert.Nil(t, cleared.Coupon)
	assert.Equal(t, "0.00", cleared.Total.StringFixed(2))
	require.NotNil(t, cleared.Location)
	assert.Equal(t, "Torikatu 1", cleared.Location.Label)

	stored := f.stored(t)
	assert.Empty(t, stored.Items)
	assert.Empty(t, stored.CouponCode)
	require.NotNil(t, stored.Location)
}

func TestCartService_PromotionWaivesFee(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)
	f.promotions.ExpectedCalls = nil
	f.promotions.On("CurrentPromotion", mock.Anything, mock.Anything).Return(&domain.Promotion{
		Title:        "Summer on the lake",
		IsActive:     true,
		FreeDelivery: true,
		MinSubtotal:  money("40"),
	}, nil)

	_, err := f.service.SetLocation(ctx, sessionID, domain.Location{Lat: restaurantLat + kmNorth(5), Lng: restaurantLng, Label: "Torikatu 1"})
	require.NoError(t, err)

	small, err := f.service.AddItem(ctx, sessionID, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, small.Promo)
	assert.False(t, small.Promo.Active)
	assert.Equal(t, "6.00", small.DeliveryFee.StringFixed(2))

	big, err := f.service.AddItem(ctx, sessionID, 1, 1)
	require.NoError(t, err)
	assert.True(t, big.Promo.Active)
	assert.Equal(t, "0.00", big.DeliveryFee.StringFixed(2))
	assert.Equal(t, "6.00", big.BaseDeliveryFee.StringFixed(2))
	assert.Equal(t, "50.00", big.Total.StringFixed(2))
}

func TestCartService_SetCustomer(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		customer    domain.Customer
		expectedErr error
		payment     string
	}{
		{name: "defaults_to_cash", customer: domain.Customer{Name: " Aino ", Phone: "040 123"}, payment: domain.PaymentCash},
		{name: "card", customer: domain.Customer{Name: "Aino", Phone: "040", PaymentMethod: domain.PaymentCard}, payment: domain.PaymentCard},
		{name: "missing_phone", customer: domain.Customer{Name: "Aino"}, expectedErr: service.ErrCustomerDetails},
		{name: "blank_name", customer: domain.Customer{Name: "  ", Phone: "040"}, expectedErr: service.ErrCustomerDetails},
		{name: "unknown_payment", customer: domain.Customer{Name: "Aino", Phone: "040", PaymentMethod: "crypto"}, expectedErr: service.ErrInvalidPayment},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newCartFixture(t)

			snapshot, err := f.service.SetCustomer(ctx, sessionID, testCase.customer)

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				assert.Nil(t, f.stored(t).Customer)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, snapshot.Customer)
			assert.Equal(t, testCase.payment, snapshot.Customer.PaymentMethod)
			assert.Equal(t, "Aino", snapshot.Customer.Name)
		})
	}
}
