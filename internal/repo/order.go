package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pizza-platform/internal/entities"
	"pizza-platform/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "user_id", "total_amount", "status",
	"street", "city", "zip_code",
	"payment_method", "payment_status",
	"created_at", "updated_at",
}

type orderRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateOrder inserts the order row and its item snapshots. Callers are
// expected to run it inside trm.Manager.Do so both land atomically.
func (r *orderRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.UserID, o.TotalAmount, string(o.Status),
			o.DeliveryAddress.Street, o.DeliveryAddress.City, o.DeliveryAddress.ZipCode,
			string(o.PaymentMethod), string(o.PaymentStatus),
			o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "pizza_id", "pizza_name", "quantity", "price")

	// position preserves the caller-supplied item ordering on read back
	for i, it := range o.Items {
		q = q.Values(o.ID, i, it.PizzaID, it.PizzaName, it.Quantity, it.Price)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsForOrders(ctx, []string{id})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[id]), nil
}

func (r *orderRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return r.listOrders(ctx, nil)
}

func (r *orderRepo) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"user_id": userID})
}

func (r *orderRepo) listOrders(ctx context.Context, where any) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")
	if where != nil {
		q = q.Where(where)
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	itemsMap, err := r.itemsForOrders(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.ID]))
	}
	return result, nil
}

func (r *orderRepo) itemsForOrders(ctx context.Context, orderIDs []string) (map[string][]OrderItem, error) {
	query, args := r.qb.Select("order_id", "position", "pizza_id", "pizza_name", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("position ASC").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[string][]OrderItem, len(orderIDs))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}
	return itemsMap, nil
}

// OrderStatus reads the current status, locking the row when called inside
// a transaction. The cancel flow relies on this to serialize the check
// against the write.
func (r *orderRepo) OrderStatus(ctx context.Context, id string) (entities.OrderStatus, error) {
	q := r.qb.Select("status").
		From("orders").
		Where(sq.Eq{"id": id})
	if trm.ExtractTx(ctx) != nil {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var status string
	err := r.getContext(ctx, &status, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.ErrOrderNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get order status: %w", err)
	}
	return entities.OrderStatus(status), nil
}

// UpdateOrderStatus overwrites the status and refreshes updated_at in the
// same statement, so no write can skip the timestamp.
func (r *orderRepo) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepo) DeleteOrder(ctx context.Context, id string) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *orderRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *orderRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
