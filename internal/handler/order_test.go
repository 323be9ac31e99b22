package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pizza-platform/internal/entities"
	"pizza-platform/internal/handler"
	mocks "pizza-platform/internal/handler/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockOrderService) {
	t.Helper()

	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewOrderHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r, svc
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"userId": "u1",
		"items": [{"pizzaId": "p1", "quantity": 2}, {"pizzaId": "p2", "quantity": 1}],
		"deliveryAddress": {"street": "1 Main St", "city": "Naples", "zipCode": "80100"},
		"paymentMethod": "Cash"
	}`

	createdOrder := entities.Order{
		ID:     "o1",
		UserID: "u1",
		Items: []entities.OrderItem{
			{PizzaID: "p1", PizzaName: "Margherita", Quantity: 2, Price: 45},
			{PizzaID: "p2", PizzaName: "Pepperoni", Quantity: 1, Price: 55},
		},
		TotalAmount:   145,
		Status:        entities.StatusPending,
		PaymentMethod: entities.PaymentCash,
		PaymentStatus: entities.PaymentStatusPending,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(createdOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"totalAmount":145`,
		},
		{
			name:         "malformed body",
			body:         "{not json",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "missing items",
			body:         `{"userId": "u1", "deliveryAddress": {"street": "s", "city": "c", "zipCode": "z"}, "paymentMethod": "Cash"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "unknown payment method",
			body:         strings.Replace(validBody, "Cash", "Bitcoin", 1),
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `PaymentMethod oneof`,
		},
		{
			name: "pizza not found",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrPizzaNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"pizza not found"`,
		},
		{
			name: "pizza unavailable",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrPizzaUnavailable).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"success":false`,
		},
		{
			name: "menu service down",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrMenuUnavailable).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"menu service unavailable"`,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/orders/", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{ID: "123", UserID: "u1", Status: entities.StatusPending}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"123"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, true, resp["success"])
			}
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	orders := []entities.Order{
		{ID: "o1", Status: entities.StatusPending},
		{ID: "o2", Status: entities.StatusDelivered},
	}

	r, svc := newTestRouter(t)
	svc.EXPECT().ListOrders(mock.Anything).Return(orders, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"count":2`)
	assert.Contains(t, string(body), `"id":"o1"`)
	assert.Contains(t, string(body), `"id":"o2"`)
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "123",
			body:    `{"status": "Out for Delivery"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, "123", entities.StatusOutForDelivery).
					Return(entities.Order{ID: "123", Status: entities.StatusOutForDelivery}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Out for Delivery"`,
		},
		{
			name:         "unknown status",
			orderID:      "123",
			body:         `{"status": "Lost"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `Status oneof`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			body:    `{"status": "Confirmed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, "not-exist", entities.StatusConfirmed).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPut, "/api/orders/"+tc.orderID+"/status", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CancelOrder(mock.Anything, "123").
					Return(entities.Order{ID: "123", Status: entities.StatusCancelled}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Cancelled"`,
		},
		{
			name:    "already preparing finished",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CancelOrder(mock.Anything, "123").
					Return(entities.Order{}, entities.ErrOrderNotCancellable).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"cannot cancel order`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/orders/"+tc.orderID+"/cancel", nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	r, svc := newTestRouter(t)
	svc.EXPECT().DeleteOrder(mock.Anything, "123").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/123", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"order deleted successfully"`)
}
