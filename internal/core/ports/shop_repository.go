package ports

import (
	"context"

	"github.com/matchfit/matchfit-api/internal/core/domain"
)

// ProductRepository defines persistence for catalog items.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns the catalog, optionally filtered by category (empty = all).
	List(ctx context.Context, category domain.ProductCategory) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	// ApplySale decrements stock by qty (floored at zero) and increments the
	// sold count by the full qty, in a single update.
	ApplySale(ctx context.Context, productID string, qty int) error
}

// OrderRepository defines persistence for orders.
type OrderRepository interface {
	Insert(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByIdempotencyKey(ctx context.Context, userID, key string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

// CartStore holds one cart per user, keyed by product id within the cart.
type CartStore interface {
	Get(ctx context.Context, userID string) ([]domain.CartItem, error)
	Put(ctx context.Context, userID string, item domain.CartItem) error
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}
