package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pizza-platform/internal/entities"
	"pizza-platform/internal/events"
	"pizza-platform/pkg/trm"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type MenuClient interface {
	GetPizzaByID(ctx context.Context, id string) (entities.Pizza, error)
}

type OrderRepo interface {
	CreateOrder(ctx context.Context, order entities.Order) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	OrderStatus(ctx context.Context, id string) (entities.OrderStatus, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) error
	DeleteOrder(ctx context.Context, id string) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event events.OrderEvent) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	menu      MenuClient
	publisher EventPublisher
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	menu MenuClient,
	publisher EventPublisher,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		menu:      menu,
		publisher: publisher,
		cache:     cache,
	}
}

// CreateOrder validates and prices every requested line item against the
// menu service, then commits the order in a single transaction. The commit
// is the only state-mutating step and runs only after every lookup has
// passed, so an abort at any point leaves no trace in the store.
func (s *orderService) CreateOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error) {
	// Lookups run concurrently, one goroutine per line item. The first
	// failure cancels the rest via the group context. Snapshots are written
	// to their input index so the committed order keeps the caller's item
	// ordering, not completion order.
	snapshots := make([]entities.OrderItem, len(in.Items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range in.Items {
		i, item := i, item
		g.Go(func() error {
			pizza, err := s.menu.GetPizzaByID(gctx, item.PizzaID)
			if err != nil {
				return err
			}
			if !pizza.Available {
				return fmt.Errorf("%w: %s", entities.ErrPizzaUnavailable, pizza.Name)
			}
			snapshots[i] = entities.OrderItem{
				PizzaID:   pizza.ID,
				PizzaName: pizza.Name,
				Quantity:  item.Quantity,
				Price:     pizza.Price,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return entities.Order{}, err
	}

	var total float64
	for _, snapshot := range snapshots {
		total += snapshot.Price * float64(snapshot.Quantity)
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		Items:           snapshots,
		TotalAmount:     total,
		Status:          entities.StatusPending,
		DeliveryAddress: in.DeliveryAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   entities.PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.CreateOrder(ctx, order)
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.String("user_id", order.UserID),
		slog.Float64("total", order.TotalAmount),
	)
	s.publish(ctx, events.OrderEvent{
		Type:        events.TypeOrderCreated,
		OrderID:     order.ID,
		UserID:      order.UserID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		OccurredAt:  now,
	})

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_id", id), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(id, data)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *orderService) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}

// UpdateOrderStatus is the administrative override: it accepts any of the
// six statuses regardless of the current one.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	if err := s.repo.UpdateOrderStatus(ctx, id, status); err != nil {
		return entities.Order{}, err
	}
	s.cache.Delete(id)

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	s.publish(ctx, events.OrderEvent{
		Type:       events.TypeOrderStatusChanged,
		OrderID:    id,
		UserID:     order.UserID,
		Status:     string(status),
		OccurredAt: time.Now().UTC(),
	})
	return order, nil
}

// CancelOrder succeeds only while the order is still Pending or Preparing.
// The status check and the write share one transaction so a concurrent
// transition cannot slip between them.
func (s *orderService) CancelOrder(ctx context.Context, id string) (entities.Order, error) {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		status, err := s.repo.OrderStatus(ctx, id)
		if err != nil {
			return err
		}
		if status != entities.StatusPending && status != entities.StatusPreparing {
			return fmt.Errorf("%w: status is %s", entities.ErrOrderNotCancellable, status)
		}
		return s.repo.UpdateOrderStatus(ctx, id, entities.StatusCancelled)
	})
	if err != nil {
		return entities.Order{}, err
	}
	s.cache.Delete(id)

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	s.publish(ctx, events.OrderEvent{
		Type:       events.TypeOrderStatusChanged,
		OrderID:    id,
		UserID:     order.UserID,
		Status:     string(entities.StatusCancelled),
		OccurredAt: time.Now().UTC(),
	})
	return order, nil
}

// DeleteOrder permanently removes the record regardless of status.
func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(id)

	s.publish(ctx, events.OrderEvent{
		Type:       events.TypeOrderDeleted,
		OrderID:    id,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

func (s *orderService) publish(ctx context.Context, event events.OrderEvent) {
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
