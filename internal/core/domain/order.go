package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// validTransitions defines the allowed state machine transitions. Checkout
// only ever produces pending; the admin console drives the rest.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderShipped},
	OrderShipped: {OrderDelivered},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a point-in-time snapshot of a purchased product, decoupled from
// the live catalog so later price edits never alter order history.
type OrderItem struct {
	ProductID       string `json:"product_id" bson:"product_id"`
	Name            string `json:"name" bson:"name"`
	PriceAtPurchase int64  `json:"price_at_purchase" bson:"price_at_purchase"`
	Quantity        int    `json:"quantity" bson:"quantity"`
}

// Order belongs to one user.
type Order struct {
	ID              string      `json:"id" bson:"_id"`
	UserID          string      `json:"user_id" bson:"user_id"`
	UserName        string      `json:"user_name" bson:"user_name"`
	Items           []OrderItem `json:"items" bson:"items"`
	TotalPrice      int64       `json:"total_price" bson:"total_price"`
	ShippingAddress string      `json:"shipping_address" bson:"shipping_address"`
	PaymentMethod   string      `json:"payment_method" bson:"payment_method"`
	Status          OrderStatus `json:"status" bson:"status"`
	IdempotencyKey  string      `json:"-" bson:"idempotency_key,omitempty"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
}
