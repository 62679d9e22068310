package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "ravintola-sinet/delivery-svc/internal/api/http"
	"ravintola-sinet/delivery-svc/internal/domain"
	"ravintola-sinet/delivery-svc/internal/mocks"
	"ravintola-sinet/delivery-svc/internal/service"
	"ravintola-sinet/preorder"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(handler *httpapi.Handler, req *http.Request) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("issues_cookie_when_missing", func(t *testing.T) {
		carts := mocks.NewCartServiceInterface(t)
		carts.On("Summary", mock.Anything, mock.AnythingOfType("string")).Return(&domain.CartSnapshot{}, nil).Once()

		w := serve(httpapi.NewHandler(carts, nil, nil, nil), httptest.NewRequest("GET", "/api/cart", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, httpapi.SessionCookie, cookies[0].Name)
		assert.Equal(t, cookies[0].Value, w.Header().Get(httpapi.SessionHeader))
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("reuses_header_session", func(t *testing.T) {
		carts := mocks.NewCartServiceInterface(t)
		carts.On("Summary", mock.Anything, sessionID).Return(&domain.CartSnapshot{}, nil).Once()

		req := httptest.NewRequest("GET", "/api/cart", nil)
		req.Header.Set(httpapi.SessionHeader, sessionID)
		w := serve(httpapi.NewHandler(carts, nil, nil, nil), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("reuses_cookie_session", func(t *testing.T) {
		carts := mocks.NewCartServiceInterface(t)
		carts.On("Summary", mock.Anything, sessionID).Return(&domain.CartSnapshot{}, nil).Once()

		req := httptest.NewRequest("GET", "/api/cart", nil)
		req.AddCookie(&http.Cookie{Name: httpapi.SessionCookie, Value: sessionID})
		w := serve(httpapi.NewHandler(carts, nil, nil, nil), req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("replaces_malformed_session", func(t *testing.T) {
		carts := mocks.NewCartServiceInterface(t)
		carts.On("Summary", mock.Anything, mock.MatchedBy(func(sid string) bool { return sid != "../../etc" })).
			Return(&domain.CartSnapshot{}, nil).Once()

		req := httptest.NewRequest("GET", "/api/cart", nil)
		req.Header.Set(httpapi.SessionHeader, "../../etc")
		w := serve(httpapi.NewHandler(carts, nil, nil, nil), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, w.Result().Cookies(), 1)
	})
}

func TestCartHandlers(t *testing.T) {
	snapshot := &domain.CartSnapshot{Count: 2, Subtotal: money("50.00"), Total: money("45.00")}

	tests := []struct {
		name      string
		method    string
		path      string
		body      string
		setupMock func(*mocks.CartServiceInterface)
		wantCode  int
		wantField string
	}{
		{
			name:   "add_item",
			method: "POST",
			path:   "/api/cart/items",
			body:   `{"item_id":1,"qty":2}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("AddItem", mock.Anything, sessionID, 1, 2).Return(snapshot, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "add_unavailable_item",
			method: "POST",
			path:   "/api/cart/items",
			body:   `{"item_id":3}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("AddItem", mock.Anything, sessionID, 3, 0).Return(nil, preorder.ErrItemUnavailable).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "add_over_quantity_limit",
			method: "POST",
			path:   "/api/cart/items",
			body:   `{"item_id":1,"qty":500}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("AddItem", mock.Anything, sessionID, 1, 500).Return(nil, service.ErrQuantity).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "add_invalid_json",
			method:    "POST",
			path:      "/api/cart/items",
			body:      `{`,
			setupMock: func(m *mocks.CartServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "update_item",
			method: "PATCH",
			path:   "/api/cart/items/1",
			body:   `{"qty":5}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("UpdateItem", mock.Anything, sessionID, 1, 5).Return(snapshot, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "remove_item",
			method: "DELETE",
			path:   "/api/cart/items/1",
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("UpdateItem", mock.Anything, sessionID, 1, 0).Return(snapshot, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "apply_coupon",
			method: "POST",
			path:   "/api/cart/coupon",
			body:   `{"code":"save10"}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("ApplyCoupon", mock.Anything, sessionID, "save10").Return(snapshot, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "apply_bad_coupon",
			method: "POST",
			path:   "/api/cart/coupon",
			body:   `{"code":"nope"}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("ApplyCoupon", mock.Anything, sessionID, "nope").Return(nil, service.ErrCoupon).Once()
			},
			wantCode:  http.StatusBadRequest,
			wantField: "coupon",
		},
		{
			name:   "remove_coupon",
			method: "DELETE",
			path:   "/api/cart/coupon",
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("RemoveCoupon", mock.Anything, sessionID).Return(snapshot, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "clear_cart",
			method: "DELETE",
			path:   "/api/cart",
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("Clear", mock.Anything, sessionID).Return(snapshot, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "set_location",
			method: "POST",
			path:   "/api/delivery/location",
			body:   `{"lat":62.6,"lng":29.7,"address_label":"Torikatu 1"}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("SetLocation", mock.Anything, sessionID, domain.Location{Lat: 62.6, Lng: 29.7, Label: "Torikatu 1"}).
					Return(snapshot, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "set_customer_missing_phone",
			method: "POST",
			path:   "/api/delivery/customer",
			body:   `{"name":"Aino"}`,
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("SetCustomer", mock.Anything, sessionID, domain.Customer{Name: "Aino"}).
					Return(nil, service.ErrCustomerDetails).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "quote_missing_coordinates",
			method:    "GET",
			path:      "/api/delivery/quote?lat=62.6",
			setupMock: func(m *mocks.CartServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "quote",
			method: "GET",
			path:   "/api/delivery/quote?lat=62.6&lng=29.7",
			setupMock: func(m *mocks.CartServiceInterface) {
				m.On("Quote", mock.Anything, sessionID, 62.6, 29.7).
					Return(&domain.DeliveryQuote{DistanceKm: 0.1, DeliveryFee: money("3.00"), InRange: true}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			carts := mocks.NewCartServiceInterface(t)
			testCase.setupMock(carts)

			var body *bytes.Buffer
			if testCase.body != "" {
				body = bytes.NewBufferString(testCase.body)
			} else {
				body = &bytes.Buffer{}
			}
			req := httptest.NewRequest(testCase.method, testCase.path, body)
			req.Header.Set(httpapi.SessionHeader, sessionID)

			w := serve(httpapi.NewHandler(carts, nil, nil, nil), req)

			assert.Equal(t, testCase.wantCode, w.Code)
			resp := decodeBody(t, w)
			assert.Equal(t, testCase.wantCode == http.StatusOK, resp["ok"])
			if testCase.wantField != "" {
				assert.Equal(t, testCase.wantField, resp["field"])
			}
		})
	}
}

func TestCartHandler_SnapshotShape(t *testing.T) {
	carts := mocks.NewCartServiceInterface(t)
	carts.On("Summary", mock.Anything, sessionID).Return(&domain.CartSnapshot{
		Lines: []preorder.Line{{ItemID: 1, Name: "Salmon soup", Qty: 2, UnitPrice: money("25.00"), LineTotal: money("50.00")}},
		Count: 2, Subtotal: money("50.00"), Total: money("45.00"), CouponDiscount: money("5.00"),
		Coupon: &domain.CouponView{Active: true, Code: "SAVE10", DiscountType: domain.DiscountPercent, DiscountValue: money("10")},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set(httpapi.SessionHeader, sessionID)
	w := serve(httpapi.NewHandler(carts, nil, nil, nil), req)

	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeBody(t, w)["cart"].(map[string]interface{})
	assert.Equal(t, 45.0, cart["total"])
	assert.Equal(t, 5.0, cart["coupon_discount"])
	assert.Nil(t, cart["promo"])
	assert.Nil(t, cart["location"])
	line := cart["lines"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, 1.0, line["id"])
	assert.Equal(t, 50.0, line["line_total"])
	assert.Equal(t, "percent", cart["coupon"].(map[string]interface{})["discount_type"])
}

func TestCheckoutHandler(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantField string
	}{
		{name: "placed", wantCode: http.StatusCreated},
		{name: "no_location", err: service.ErrLocationRequired, wantCode: http.StatusBadRequest},
		{name: "empty_cart", err: service.ErrEmptyCart, wantCode: http.StatusBadRequest},
		{name: "missing_customer", err: service.ErrCustomerDetails, wantCode: http.StatusBadRequest},
		{name: "out_of_range", err: fmt.Errorf("%w: 12.00 km", service.ErrOutOfRange), wantCode: http.StatusBadRequest, wantField: "location"},
		{name: "coupon_ran_out", err: service.ErrCoupon, wantCode: http.StatusBadRequest, wantField: "coupon"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			if testCase.err != nil {
				orders.On("PlaceOrder", mock.Anything, sessionID).Return(nil, testCase.err).Once()
			} else {
				orders.On("PlaceOrder", mock.Anything, sessionID).
					Return(&domain.Order{ID: 501, PublicToken: orderToken, Status: domain.OrderPending}, nil).Once()
				orders.On("QRLink", orderToken).Return("https://sinet.example/delivery/orders/" + orderToken).Once()
			}

			req := httptest.NewRequest("POST", "/api/delivery/checkout", nil)
			req.Header.Set(httpapi.SessionHeader, sessionID)
			w := serve(httpapi.NewHandler(nil, orders, nil, nil), req)

			assert.Equal(t, testCase.wantCode, w.Code)
			resp := decodeBody(t, w)
			if testCase.wantField != "" {
				assert.Equal(t, testCase.wantField, resp["field"])
			}
			if testCase.err == nil {
				assert.Equal(t, "https://sinet.example/delivery/orders/"+orderToken, resp["link"])
			}
		})
	}
}

func TestOrderQRHandler(t *testing.T) {
	unknown := "00000000-0000-4000-8000-000000000000"
	orders := mocks.NewOrderServiceInterface(t)
	orders.On("GetQRCode", mock.Anything, orderToken).Return([]byte("\x89PNG"), nil).Once()
	orders.On("GetQRCode", mock.Anything, unknown).Return(nil, domain.ErrNotFound).Once()
	handler := httpapi.NewHandler(nil, orders, nil, nil)

	w := serve(handler, httptest.NewRequest("GET", "/api/delivery/orders/"+orderToken+"/qr", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = serve(handler, httptest.NewRequest("GET", "/api/delivery/orders/"+unknown+"/qr", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(handler, httptest.NewRequest("GET", "/api/delivery/orders/501/qr", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderHandlers(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(*mocks.OrderServiceInterface)
		wantCode  int
		wantPhone bool
	}{
		{
			name: "customer_token",
			path: "/api/delivery/orders/" + orderToken,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("GetByToken", mock.Anything, orderToken).
					Return(&domain.Order{ID: 501, PublicToken: orderToken, Phone: "+358401234567"}, nil).Once()
			},
			wantCode:  http.StatusOK,
			wantPhone: true,
		},
		{
			name:      "sequential_id_is_not_public",
			path:      "/api/delivery/orders/501",
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusNotFound,
		},
		{
			name: "admin_by_id",
			path: "/api/admin/delivery-orders/501",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Get", mock.Anything, 501).Return(&domain.Order{ID: 501, Phone: "+358401234567"}, nil).Once()
			},
			wantCode:  http.StatusOK,
			wantPhone: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			testCase.setupMock(orders)

			w := serve(httpapi.NewHandler(nil, orders, nil, nil), httptest.NewRequest("GET", testCase.path, nil))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantPhone {
				assert.Contains(t, w.Body.String(), "+358401234567")
			} else {
				assert.NotContains(t, w.Body.String(), "+358401234567")
			}
		})
	}
}

func TestAdminOrderStatusHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.OrderServiceInterface)
		wantCode  int
	}{
		{
			name: "accepted",
			body: `{"status":"accepted"}`,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("UpdateStatus", mock.Anything, 7, "accepted").Return(&domain.Order{ID: 7, Status: "accepted"}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not_allowed",
			body: `{"status":"pending"}`,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("UpdateStatus", mock.Anything, 7, "pending").Return(nil, service.ErrInvalidTransition).Once()
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "bad_payload",
			body:      `nope`,
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			testCase.setupMock(orders)

			req := httptest.NewRequest("POST", "/api/admin/delivery-orders/7/status", bytes.NewBufferString(testCase.body))
			w := serve(httpapi.NewHandler(nil, orders, nil, nil), req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestAdminCouponHandlers(t *testing.T) {
	coupons := mocks.NewCouponServiceInterface(t)
	coupons.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Coupon) bool {
		return c.Code == "SAVE10" && c.DiscountType == domain.DiscountPercent && c.DiscountValue.Equal(money("10"))
	})).Return(nil).Once()
	coupons.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Coupon) bool { return c.Code == "DUP" })).
		Return(service.ErrCouponExists).Once()
	coupons.On("Delete", mock.Anything, 9).Return(domain.ErrNotFound).Once()
	handler := httpapi.NewHandler(nil, nil, coupons, nil)

	w := serve(handler, httptest.NewRequest("POST", "/api/admin/coupons",
		bytes.NewBufferString(`{"code":"SAVE10","discount_type":"percent","discount_value":10,"is_active":true}`)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(handler, httptest.NewRequest("POST", "/api/admin/coupons",
		bytes.NewBufferString(`{"code":"DUP","discount_type":"fixed","discount_value":"5.00"}`)))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(handler, httptest.NewRequest("DELETE", "/api/admin/coupons/9", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
