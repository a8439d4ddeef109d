package ports

import (
	"context"

	"github.com/matchfit/matchfit-api/internal/core/domain"
)

// SaveProductInput carries the fields for creating or updating a catalog item.
type SaveProductInput struct {
	Name        string
	Price       int64
	Description string
	Category    domain.ProductCategory
	Image       string
	Stock       int
}

// CheckoutInput carries everything needed to place an order from the caller's cart.
type CheckoutInput struct {
	UserID          string
	UserName        string
	ShippingAddress string
	PaymentMethod   string
	IdempotencyKey  string
}

// CheckoutResult is returned by Checkout. AlreadyExisted is true when the
// idempotency key matched a previously placed order.
type CheckoutResult struct {
	Order          domain.Order
	AlreadyExisted bool
}

// ShopService defines use-case operations for the catalog, carts, orders and
// the admin console.
type ShopService interface {
	ListProducts(ctx context.Context, category domain.ProductCategory) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, input SaveProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input SaveProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	Cart(ctx context.Context, userID string) ([]domain.CartItem, error)
	// AddToCart merges a repeated product into one line with an incremented quantity.
	AddToCart(ctx context.Context, userID, productID string) ([]domain.CartItem, error)
	// AdjustQuantity changes a line's quantity by delta, clamped at 1.
	AdjustQuantity(ctx context.Context, userID, productID string, delta int) ([]domain.CartItem, error)
	RemoveFromCart(ctx context.Context, userID, productID string) ([]domain.CartItem, error)
	ClearCart(ctx context.Context, userID string) error

	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
	ListOrders(ctx context.Context, userID string) ([]*domain.Order, error)

	ListAllOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}
