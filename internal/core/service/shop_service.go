package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/matchfit/matchfit-api/internal/api/metrics"
	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

type shopService struct {
	products ports.ProductRepository
	orders   ports.OrderRepository
	carts    ports.CartStore
	users    ports.AuthRepository
	log      zerolog.Logger
}

// NewShopService returns a ShopService implementation.
func NewShopService(
	products ports.ProductRepository,
	orders ports.OrderRepository,
	carts ports.CartStore,
	users ports.AuthRepository,
	log zerolog.Logger,
) ports.ShopService {
	return &shopService{
		products: products,
		orders:   orders,
		carts:    carts,
		users:    users,
		log:      log,
	}
}

// --- Catalog ---

func (s *shopService) ListProducts(ctx context.Context, category domain.ProductCategory) ([]*domain.Product, error) {
	return s.products.List(ctx, category)
}

func (s *shopService) CreateProduct(ctx context.Context, input ports.SaveProductInput) (*domain.Product, error) {
	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Category:    input.Category,
		Image:       input.Image,
		Stock:       input.Stock,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.products.Insert(ctx, p); err != nil {
		s.log.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.log.Info().Str("product_id", p.ID).Str("category", string(p.Category)).Msg("product created")
	return p, nil
}

func (s *shopService) UpdateProduct(ctx context.Context, id string, input ports.SaveProductInput) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = input.Name
	p.Price = input.Price
	p.Description = input.Description
	p.Category = input.Category
	p.Stock = input.Stock
	if input.Image != "" {
		p.Image = input.Image
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *shopService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

// --- Cart ---

func (s *shopService) Cart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.carts.Get(ctx, userID)
}

// AddToCart snapshots the product into the user's cart, merging a repeated
// product into one line with an incremented quantity.
func (s *shopService) AddToCart(ctx context.Context, userID, productID string) ([]domain.CartItem, error) {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.Stock <= 0 {
		return nil, domain.ErrOutOfStock
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	line := domain.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	}
	for _, item := range cart {
		if item.ProductID == productID {
			line = item
			line.Quantity++
			break
		}
	}

	if err := s.carts.Put(ctx, userID, line); err != nil {
		return nil, err
	}
	return s.carts.Get(ctx, userID)
}

// AdjustQuantity changes a cart line by delta. The quantity never drops below
// one; removal is an explicit operation.
func (s *shopService) AdjustQuantity(ctx context.Context, userID, productID string, delta int) ([]domain.CartItem, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, item := range cart {
		if item.ProductID != productID {
			continue
		}
		item.Quantity += delta
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		if err := s.carts.Put(ctx, userID, item); err != nil {
			return nil, err
		}
		return s.carts.Get(ctx, userID)
	}

	return nil, domain.ErrProductNotFound
}

func (s *shopService) RemoveFromCart(ctx context.Context, userID, productID string) ([]domain.CartItem, error) {
	if err := s.carts.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.carts.Get(ctx, userID)
}

func (s *shopService) ClearCart(ctx context.Context, userID string) error {
	return s.carts.Clear(ctx, userID)
}

// --- Checkout & orders ---

// Checkout places an order from the caller's cart. If an idempotency key is
// provided and already seen, the previously placed order is returned without
// side effects. Each line decrements the product's stock (floored at zero) and
// increments its sold count by the full quantity.
func (s *shopService) Checkout(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutResult, error) {
	if input.IdempotencyKey != "" {
		existing, err := s.orders.FindByIdempotencyKey(ctx, input.UserID, input.IdempotencyKey)
		switch {
		case err == nil:
			s.log.Info().
				Str("idempotency_key", input.IdempotencyKey).
				Str("order_id", existing.ID).
				Msg("idempotent replay")
			return &ports.CheckoutResult{Order: *existing, AlreadyExisted: true}, nil
		case !errors.Is(err, domain.ErrOrderNotFound):
			// A failed lookup must not silently place a duplicate order.
			return nil, fmt.Errorf("idempotency lookup: %w", err)
		}
	}

	cart, err := s.carts.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, domain.ErrCartEmpty
	}

	var total int64
	items := make([]domain.OrderItem, 0, len(cart))
	for _, line := range cart {
		items = append(items, domain.OrderItem{
			ProductID:       line.ProductID,
			Name:            line.Name,
			PriceAtPurchase: line.Price,
			Quantity:        line.Quantity,
		})
		total += line.Price * int64(line.Quantity)
	}

	order := &domain.Order{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		UserName:        input.UserName,
		Items:           items,
		TotalPrice:      total,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		Status:          domain.OrderPending,
		IdempotencyKey:  input.IdempotencyKey,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		s.log.Error().Err(err).Msg("failed to place order")
		return nil, err
	}

	for _, item := range items {
		if err := s.products.ApplySale(ctx, item.ProductID, item.Quantity); err != nil {
			// The order stands; a product deleted between add-to-cart and
			// checkout simply has no stock to adjust.
			s.log.Warn().Err(err).
				Str("order_id", order.ID).
				Str("product_id", item.ProductID).
				Msg("failed to apply sale to product")
		}
	}

	if err := s.carts.Clear(ctx, input.UserID); err != nil {
		s.log.Warn().Err(err).Str("user_id", input.UserID).Msg("failed to clear cart after checkout")
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("user_id", input.UserID).
		Int64("total_price", total).
		Msg("order placed")
	metrics.OrdersPlacedTotal.WithLabelValues(order.PaymentMethod).Inc()
	metrics.OrderValue.Observe(float64(total))

	return &ports.CheckoutResult{Order: *order}, nil
}

func (s *shopService) ListOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// --- Admin console ---

func (s *shopService) ListAllOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

// UpdateOrderStatus applies an admin-driven status transition, guarded by the
// order state machine.
func (s *shopService) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, status)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.log.Info().Str("order_id", orderID).Str("status", string(status)).Msg("order status updated")
	return order, nil
}

func (s *shopService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *shopService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}
