package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusConfirmed      OrderStatus = "Confirmed"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "Cash"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentDebitCard  PaymentMethod = "Debit Card"
	PaymentOnline     PaymentMethod = "Online"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// OrderItem is a snapshot of a pizza taken at order-creation time.
// Name and price are frozen so the receipt never changes when the menu does.
type OrderItem struct {
	PizzaID   string
	PizzaName string
	Quantity  int
	Price     float64
}

type DeliveryAddress struct {
	Street  string
	City    string
	ZipCode string
}

type Order struct {
	ID              string
	UserID          string
	Items           []OrderItem
	TotalAmount     float64
	Status          OrderStatus
	DeliveryAddress DeliveryAddress
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateOrderInput is what a client submits; item names and prices are
// resolved by the order service against the menu service, not trusted
// from the caller.
type CreateOrderInput struct {
	UserID          string
	Items           []CreateOrderItem
	DeliveryAddress DeliveryAddress
	PaymentMethod   PaymentMethod
}

type CreateOrderItem struct {
	PizzaID  string
	Quantity int
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	dec := gob.NewDecoder(bytes.NewBuffer(data))
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(DeliveryAddress{})
}
