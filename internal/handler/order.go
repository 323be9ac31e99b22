package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"pizza-platform/internal/entities"
	"pizza-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	CancelOrder(ctx context.Context, id string) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/user/{userId}", h.ListUserOrders)
		r.Get("/{id}", h.GetOrderByID)
		r.Put("/{id}/status", h.UpdateOrderStatus)
		r.Patch("/{id}/status", h.UpdateOrderStatus)
		r.Post("/{id}/cancel", h.CancelOrder)
		r.Delete("/{id}", h.DeleteOrder)
	})
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		ordersRejected.WithLabelValues("bad_body").Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		ordersRejected.WithLabelValues("validation").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateOrderRequestToInput(req))
	if err != nil {
		ordersRejected.WithLabelValues(rejectReason(err)).Inc()
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	ordersCreated.Inc()
	orderCreateDuration.Observe(time.Since(start).Seconds())
	utils.WriteData(w, OrderEntityToJSON(order), http.StatusCreated)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrPizzaNotFound):
		return "pizza_not_found"
	case errors.Is(err, entities.ErrPizzaUnavailable):
		return "pizza_unavailable"
	case errors.Is(err, entities.ErrMenuUnavailable):
		return "menu_unavailable"
	default:
		return "internal"
	}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteList(w, OrdersEntityToJSON(orders), len(orders))
}

func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "userId")

	orders, err := h.svc.ListOrdersByUser(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list user orders", slog.Any("error", err), slog.String("user_id", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteList(w, OrdersEntityToJSON(orders), len(orders))
}

func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	order, err := h.svc.GetOrderByID(ctx, id)
	if err != nil {
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", id))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteData(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req UpdateOrderStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateOrderStatus(ctx, id, entities.OrderStatus(req.Status))
	if err != nil {
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to update order status", slog.Any("error", err), slog.String("order_id", id))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteData(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	order, err := h.svc.CancelOrder(ctx, id)
	if err != nil {
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to cancel order", slog.Any("error", err), slog.String("order_id", id))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteData(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.svc.DeleteOrder(ctx, id); err != nil {
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to delete order", slog.Any("error", err), slog.String("order_id", id))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteMessage(w, "order deleted successfully", http.StatusOK)
}
