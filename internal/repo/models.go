package repo

import (
	"database/sql"
	"time"

	"pizza-platform/internal/entities"

	"github.com/lib/pq"
)

type Order struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	TotalAmount   float64   `db:"total_amount"`
	Status        string    `db:"status"`
	Street        string    `db:"street"`
	City          string    `db:"city"`
	ZipCode       string    `db:"zip_code"`
	PaymentMethod string    `db:"payment_method"`
	PaymentStatus string    `db:"payment_status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type OrderItem struct {
	OrderID   string  `db:"order_id"`
	Position  int     `db:"position"`
	PizzaID   string  `db:"pizza_id"`
	PizzaName string  `db:"pizza_name"`
	Quantity  int     `db:"quantity"`
	Price     float64 `db:"price"`
}

type Pizza struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Price       float64        `db:"price"`
	Image       sql.NullString `db:"image"`
	Category    string         `db:"category"`
	Ingredients pq.StringArray `db:"ingredients"`
	Available   bool           `db:"available"`
	CreatedAt   time.Time      `db:"created_at"`
}

type User struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	Phone        sql.NullString `db:"phone"`
	Address      sql.NullString `db:"address"`
	CreatedAt    time.Time      `db:"created_at"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:          o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		Status:      entities.OrderStatus(o.Status),
		DeliveryAddress: entities.DeliveryAddress{
			Street:  o.Street,
			City:    o.City,
			ZipCode: o.ZipCode,
		},
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		PaymentStatus: entities.PaymentStatus(o.PaymentStatus),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		PizzaID:   i.PizzaID,
		PizzaName: i.PizzaName,
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func PizzaToEntity(p Pizza) entities.Pizza {
	return entities.Pizza{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       nullStringToString(p.Image),
		Category:    entities.PizzaCategory(p.Category),
		Ingredients: p.Ingredients,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         entities.UserRole(u.Role),
		Phone:        nullStringToString(u.Phone),
		Address:      nullStringToString(u.Address),
		CreatedAt:    u.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
