package tests

import (
	"context"
	"fmt"
	"testing"

	"ravintola-sinet/delivery-svc/internal/domain"
	"ravintola-sinet/delivery-svc/internal/mocks"
	"ravintola-sinet/delivery-svc/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	*cartFixture
	orders    *service.OrderService
	repo      *mocks.OrderRepository
	publisher *mocks.OrderPublisher
}

func newOrderFixture(t *testing.T) *orderFixture {
	carts := newCartFixture(t)
	repo := mocks.NewOrderRepository(t)
	publisher := mocks.NewOrderPublisher(t)
	return &orderFixture{
		cartFixture: carts,
		orders: service.NewOrderService(repo, carts.store, carts.service, publisher,
			service.DefaultQRGenerator{BaseURL: "https://sinet.example/"}),
		repo:      repo,
		publisher: publisher,
	}
}

func (f *orderFixture) seed(t *testing.T, cart domain.Cart) {
	cart.SessionID = sessionID
	require.NoError(t, f.store.Save(context.Background(), &cart))
}

func nearby() *domain.Location {
	return &domain.Location{Lat: restaurantLat + kmNorth(5), Lng: restaurantLng, Label: "Torikatu 1"}
}

func TestOrderService_PlaceOrderGuards(t *testing.T) {
	ctx := context.Background()
	customer := &domain.Customer{Name: "Aino", Phone: "040", PaymentMethod: domain.PaymentCash}
	items := []domain.CartItem{{ItemID: 1, Qty: 1}}

	tests := []struct {
		name        string
		cart        domain.Cart
		expectedErr error
	}{
		{
			name:        "no_location",
			cart:        domain.Cart{Items: items, Customer: customer},
			expectedErr: service.ErrLocationRequired,
		},
		{
			name:        "empty_cart",
			cart:        domain.Cart{Location: nearby(), Customer: customer},
			expectedErr: service.ErrEmptyCart,
		},
		{
			name:        "only_unavailable_items",
			cart:        domain.Cart{Items: []domain.CartItem{{ItemID: 3, Qty: 1}}, Location: nearby(), Customer: customer},
			expectedErr: service.ErrEmptyCart,
		},
		{
			name:        "no_customer",
			cart:        domain.Cart{Items: items, Location: nearby()},
			expectedErr: service.ErrCustomerDetails,
		},
		{
			name: "out_of_range",
			cart: domain.Cart{
				Items:    items,
				Location: &domain.Location{Lat: restaurantLat + 1, Lng: restaurantLng},
				Customer: customer,
			},
			expectedErr: service.ErrOutOfRange,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newOrderFixture(t)
			f.seed(t, testCase.cart)

			order, err := f.orders.PlaceOrder(ctx, sessionID)

			assert.ErrorIs(t, err, testCase.expectedErr)
			assert.Nil(t, order)
			assert.Len(t, f.stored(t).Items, len(testCase.cart.Items))
		})
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.coupons.On("FindCouponByCode", mock.Anything, "SAVE10").
		Return(coupon("SAVE10", domain.DiscountPercent, "10", "0"), nil)

	f.seed(t, domain.Cart{
		Items:      []domain.CartItem{{ItemID: 1, Qty: 2}, {ItemID: 2, Qty: 1}},
		CouponCode: "SAVE10",
		Location:   nearby(),
		Customer:   &domain.Customer{Name: "Aino", Phone: "040", PaymentMethod: domain.PaymentCard},
	})

	f.repo.On("CreateOrder", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.OrderPending && len(o.Items) == 2 && o.CouponID != nil && *o.CouponID == 1
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = 501
	}).Return(nil).Once()
	f.repo.On("SaveQRCode", ctx, 501, mock.AnythingOfType("[]uint8")).Return(nil).Once()
	f.publisher.On("PublishOrder", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == "delivery_order_placed" && e.OrderID == 501 && e.ItemCount == 3 && e.Total == 56.2
	})).Return(nil).Once()

	order, err := f.orders.PlaceOrder(ctx, sessionID)

	require.NoError(t, err)
	assert.Equal(t, 501, order.ID)
	assert.Equal(t, "55.20", order.Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", order.CouponDiscount.StringFixed(2))
	assert.Equal(t, "6.00", order.DeliveryFee.StringFixed(2))
	assert.Equal(t, "56.20", order.Total.StringFixed(2))
	assert.Equal(t, "SAVE10", order.CouponCode)
	assert.Equal(t, domain.PaymentCard, order.PaymentMethod)
	assert.Equal(t, "Torikatu 1", order.AddressLabel)
	_, err = uuid.Parse(order.PublicToken)
	require.NoError(t, err)
	assert.Equal(t, "/api/delivery/orders/"+order.PublicToken+"/qr", order.QRCode)

	cart := f.stored(t)
	assert.Empty(t, cart.Items)
	assert.Empty(t, cart.CouponCode)
	require.NotNil(t, cart.Location)
	assert.Equal(t, "Torikatu 1", cart.Location.Label)
}

func TestOrderService_PlaceOrderCouponRanOut(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.coupons.On("FindCouponByCode", mock.Anything, "ONCE").
		Return(coupon("ONCE", domain.DiscountFixed, "5", "0"), nil)
	f.seed(t, domain.Cart{
		Items:      []domain.CartItem{{ItemID: 1, Qty: 1}},
		CouponCode: "ONCE",
		Location:   nearby(),
		Customer:   &domain.Customer{Name: "Aino", Phone: "040"},
	})

	f.repo.On("CreateOrder", ctx, mock.Anything).
		Return(fmt.Errorf("%w: ONCE has no uses left", service.ErrCoupon)).Once()

	order, err := f.orders.PlaceOrder(ctx, sessionID)

	assert.ErrorIs(t, err, service.ErrCoupon)
	assert.Nil(t, order)
	cart := f.stored(t)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "ONCE", cart.CouponCode)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		current      string
		next         string
		prepareMocks func(*mocks.OrderRepository, *mocks.OrderPublisher)
		expectedErr  error
	}{
		{
			name:    "accept_pending",
			current: domain.OrderPending,
			next:    domain.OrderAccepted,
			prepareMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("UpdateOrderStatus", ctx, 7, domain.OrderPending, domain.OrderAccepted).Return(nil).Once()
				pub.On("PublishOrder", ctx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:    "cancel_out_for_delivery",
			current: domain.OrderOutForDelivery,
			next:    domain.OrderCancelled,
			prepareMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("UpdateOrderStatus", ctx, 7, domain.OrderOutForDelivery, domain.OrderCancelled).Return(nil).Once()
				pub.On("PublishOrder", ctx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:         "same_status_noop",
			current:      domain.OrderPreparing,
			next:         domain.OrderPreparing,
			prepareMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
		},
		{
			name:         "skip_ahead",
			current:      domain.OrderPending,
			next:         domain.OrderDelivered,
			prepareMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			expectedErr:  service.ErrInvalidTransition,
		},
		{
			name:         "delivered_is_final",
			current:      domain.OrderDelivered,
			next:         domain.OrderCancelled,
			prepareMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			expectedErr:  service.ErrInvalidTransition,
		},
		{
			name:    "concurrent_change",
			current: domain.OrderAccepted,
			next:    domain.OrderPreparing,
			prepareMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("UpdateOrderStatus", ctx, 7, domain.OrderAccepted, domain.OrderPreparing).Return(domain.ErrStatusConflict).Once()
			},
			expectedErr: domain.ErrStatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			pub := mocks.NewOrderPublisher(t)
			repo.On("GetOrder", ctx, 7).Return(&domain.Order{ID: 7, Status: testCase.current}, nil).Once()
			testCase.prepareMocks(repo, pub)

			orders := service.NewOrderService(repo, nil, nil, pub, nil)
			order, err := orders.UpdateStatus(ctx, 7, testCase.next)

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.next, order.Status)
		})
	}
}

func TestOrderService_UpdateStatusRejectsUnknown(t *testing.T) {
	orders := service.NewOrderService(mocks.NewOrderRepository(t), nil, nil, nil, nil)
	_, err := orders.UpdateStatus(context.Background(), 7, "lost")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewOrderRepository(t)
	repo.On("ListOrders", ctx, domain.OrderFilter{Status: domain.OrderPending, Limit: 300}).
		Return([]domain.Order{{ID: 1}, {ID: 2}}, nil).Once()

	orders := service.NewOrderService(repo, nil, nil, nil, nil)

	list, err := orders.List(ctx, domain.OrderFilter{Status: " pending ", Limit: 5000})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = orders.List(ctx, domain.OrderFilter{Status: "lost"})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

const orderToken = "9b2e4f60-1c3d-4e5f-8a7b-6c5d4e3f2a10"

func TestOrderService_GetByToken(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewOrderRepository(t)
	repo.On("GetOrderByToken", ctx, orderToken).Return(&domain.Order{ID: 501, PublicToken: orderToken}, nil).Once()
	orders := service.NewOrderService(repo, nil, nil, nil, nil)

	order, err := orders.GetByToken(ctx, orderToken)
	require.NoError(t, err)
	assert.Equal(t, 501, order.ID)
	assert.Equal(t, "/api/delivery/orders/"+orderToken+"/qr", order.QRCode)

	for _, token := range []string{"", "501", "not-a-token"} {
		_, err := orders.GetByToken(ctx, token)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
}

func TestOrderService_GetQRCode(t *testing.T) {
	ctx := context.Background()
	qr := service.DefaultQRGenerator{BaseURL: "https://sinet.example"}

	t.Run("stored", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("GetOrderByToken", ctx, orderToken).Return(&domain.Order{ID: 5, PublicToken: orderToken}, nil).Once()
		repo.On("GetQRCode", ctx, 5).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

		png, err := service.NewOrderService(repo, nil, nil, nil, qr).GetQRCode(ctx, orderToken)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("regenerated_when_missing", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("GetOrderByToken", ctx, orderToken).Return(&domain.Order{ID: 5, PublicToken: orderToken}, nil).Once()
		repo.On("GetQRCode", ctx, 5).Return(nil, nil).Once()

		png, err := service.NewOrderService(repo, nil, nil, nil, qr).GetQRCode(ctx, orderToken)
		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG"), png[:4])
	})

	t.Run("unknown_order", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("GetOrderByToken", ctx, orderToken).Return(nil, domain.ErrNotFound).Once()

		_, err := service.NewOrderService(repo, nil, nil, nil, qr).GetQRCode(ctx, orderToken)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDefaultQRGenerator_Link(t *testing.T) {
	qr := service.DefaultQRGenerator{BaseURL: "https://sinet.example/"}
	assert.Equal(t, "https://sinet.example/delivery/orders/"+orderToken, qr.Link(orderToken))
}
