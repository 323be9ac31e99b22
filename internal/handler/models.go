package handler

import (
	"time"

	"pizza-platform/internal/entities"
)

// Order is the wire representation of an order.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     float64         `json:"totalAmount"`
	Status          string          `json:"status"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type OrderItem struct {
	PizzaID   string  `json:"pizzaId"`
	PizzaName string  `json:"pizzaName"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type DeliveryAddress struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
}

type CreateOrderRequest struct {
	UserID          string                   `json:"userId" validate:"required"`
	Items           []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress DeliveryAddress          `json:"deliveryAddress" validate:"required"`
	PaymentMethod   string                   `json:"paymentMethod" validate:"required,oneof=Cash 'Credit Card' 'Debit Card' Online"`
}

type CreateOrderItemRequest struct {
	PizzaID  string `json:"pizzaId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Preparing 'Out for Delivery' Delivered Cancelled"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			PizzaID:   it.PizzaID,
			PizzaName: it.PizzaName,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return Order{
		ID:          o.ID,
		UserID:      o.UserID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		DeliveryAddress: DeliveryAddress{
			Street:  o.DeliveryAddress.Street,
			City:    o.DeliveryAddress.City,
			ZipCode: o.DeliveryAddress.ZipCode,
		},
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

func CreateOrderRequestToInput(req CreateOrderRequest) entities.CreateOrderInput {
	items := make([]entities.CreateOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.CreateOrderItem{
			PizzaID:  it.PizzaID,
			Quantity: it.Quantity,
		})
	}

	return entities.CreateOrderInput{
		UserID: req.UserID,
		Items:  items,
		DeliveryAddress: entities.DeliveryAddress{
			Street:  req.DeliveryAddress.Street,
			City:    req.DeliveryAddress.City,
			ZipCode: req.DeliveryAddress.ZipCode,
		},
		PaymentMethod: entities.PaymentMethod(req.PaymentMethod),
	}
}

// Pizza is the wire representation of a menu item.
type Pizza struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	Category    string    `json:"category"`
	Ingredients []string  `json:"ingredients"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreatePizzaRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Image       string   `json:"image"`
	Category    string   `json:"category" validate:"required,oneof=Classic Premium Vegetarian Vegan Spicy"`
	Ingredients []string `json:"ingredients" validate:"required,min=1"`
	Available   *bool    `json:"available"`
}

type UpdatePizzaRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Image       string   `json:"image"`
	Category    string   `json:"category" validate:"required,oneof=Classic Premium Vegetarian Vegan Spicy"`
	Ingredients []string `json:"ingredients" validate:"required,min=1"`
	Available   bool     `json:"available"`
}

func PizzaEntityToJSON(p entities.Pizza) Pizza {
	return Pizza{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    string(p.Category),
		Ingredients: p.Ingredients,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
	}
}

func PizzasEntityToJSON(pizzas []entities.Pizza) []Pizza {
	out := make([]Pizza, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, PizzaEntityToJSON(p))
	}
	return out
}

// User is the wire representation of an account; the password hash never
// leaves the auth service.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}
