package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	products map[string]*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) error {
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context, category domain.ProductCategory) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && p.Category != category {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) ApplySale(_ context.Context, productID string, qty int) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	// Mirrors the Mongo pipeline: stock floors at zero, sold count counts all.
	p.Stock -= qty
	if p.Stock < 0 {
		p.Stock = 0
	}
	p.SoldCount += qty
	return nil
}

type stubOrderRepo struct {
	orders        map[string]*domain.Order
	byIdempotency map[string]*domain.Order
	findKeyErr    error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders:        make(map[string]*domain.Order),
		byIdempotency: make(map[string]*domain.Order),
	}
}

// idempotencyKeyFor mirrors the store's compound (user_id, idempotency_key) index.
func idempotencyKeyFor(userID, key string) string {
	return userID + "\x00" + key
}

func (r *stubOrderRepo) Insert(_ context.Context, o *domain.Order) error {
	clone := *o
	r.orders[o.ID] = &clone
	if o.IdempotencyKey != "" {
		r.byIdempotency[idempotencyKeyFor(o.UserID, o.IdempotencyKey)] = &clone
	}
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) FindByIdempotencyKey(_ context.Context, userID, key string) (*domain.Order, error) {
	if r.findKeyErr != nil {
		return nil, r.findKeyErr
	}
	o, ok := r.byIdempotency[idempotencyKeyFor(userID, key)]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

type stubCartStore struct {
	carts map[string]map[string]domain.CartItem
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{carts: make(map[string]map[string]domain.CartItem)}
}

func (s *stubCartStore) Get(_ context.Context, userID string) ([]domain.CartItem, error) {
	items := make([]domain.CartItem, 0, len(s.carts[userID]))
	for _, item := range s.carts[userID] {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items, nil
}

func (s *stubCartStore) Put(_ context.Context, userID string, item domain.CartItem) error {
	if s.carts[userID] == nil {
		s.carts[userID] = make(map[string]domain.CartItem)
	}
	s.carts[userID][item.ProductID] = item
	return nil
}

func (s *stubCartStore) Remove(_ context.Context, userID, productID string) error {
	delete(s.carts[userID], productID)
	return nil
}

func (s *stubCartStore) Clear(_ context.Context, userID string) error {
	delete(s.carts, userID)
	return nil
}

// ---------------------------------------------------------------------------

type shopFixture struct {
	svc      ports.ShopService
	products *stubProductRepo
	orders   *stubOrderRepo
	carts    *stubCartStore
}

func newShopFixture() *shopFixture {
	products := newStubProductRepo()
	orders := newStubOrderRepo()
	carts := newStubCartStore()
	svc := NewShopService(products, orders, carts, newStubAuthRepo(), zerolog.Nop())
	return &shopFixture{svc: svc, products: products, orders: orders, carts: carts}
}

func (f *shopFixture) seedProduct(t *testing.T, id string, price int64, stock int) {
	t.Helper()
	err := f.products.Insert(context.Background(), &domain.Product{
		ID:       id,
		Name:     "Item " + id,
		Price:    price,
		Category: domain.CategoryFashion,
		Stock:    stock,
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func TestShopService_AddToCart_MergesLines(t *testing.T) {
	f := newShopFixture()
	f.seedProduct(t, "p1", 100_000, 5)

	ctx := context.Background()
	if _, err := f.svc.AddToCart(ctx, "u1", "p1"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	cart, err := f.svc.AddToCart(ctx, "u1", "p1")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(cart) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(cart))
	}
	if cart[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart[0].Quantity)
	}
}

func TestShopService_AddToCart_OutOfStock(t *testing.T) {
	f := newShopFixture()
	f.seedProduct(t, "p1", 100_000, 0)

	if _, err := f.svc.AddToCart(context.Background(), "u1", "p1"); !errors.Is(err, domain.ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}
}

func TestShopService_AddToCart_UnknownProduct(t *testing.T) {
	f := newShopFixture()

	if _, err := f.svc.AddToCart(context.Background(), "u1", "ghost"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestShopService_AdjustQuantity_ClampsAtOne(t *testing.T) {
	f := newShopFixture()
	f.seedProduct(t, "p1", 100_000, 5)

	ctx := context.Background()
	if _, err := f.svc.AddToCart(ctx, "u1", "p1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err := f.svc.AdjustQuantity(ctx, "u1", "p1", -10)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if cart[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", cart[0].Quantity)
	}

	cart, err = f.svc.AdjustQuantity(ctx, "u1", "p1", 3)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if cart[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", cart[0].Quantity)
	}
}

func TestShopService_AdjustQuantity_MissingLine(t *testing.T) {
	f := newShopFixture()

	if _, err := f.svc.AdjustQuantity(context.Background(), "u1", "p1", 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestShopService_Checkout(t *testing.T) {
	f := newShopFixture()
	f.seedProduct(t, "p1", 100_000, 5)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := f.svc.AddToCart(ctx, "u1", "p1"); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	result, err := f.svc.Checkout(ctx, ports.CheckoutInput{
		UserID:          "u1",
		UserName:        "Alice",
		ShippingAddress: "Jl. Merdeka 1",
		PaymentMethod:   "Bank Transfer",
	})
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}
	if result.AlreadyExisted {
		t.Fatalf("fresh checkout flagged as replay")
	}

	order := result.Order
	if order.TotalPrice != 300_000 {
		t.Fatalf("expected total 300000, got %d", order.TotalPrice)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 3 {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}
	if order.Items[0].PriceAtPurchase != 100_000 {
		t.Fatalf("expected price snapshot 100000, got %d", order.Items[0].PriceAtPurchase)
	}

	p, _ := f.products.FindByID(ctx, "p1")
	if p.Stock != 2 {
		t.Fatalf("expected stock 2 after sale, got %d", p.Stock)
	}
	if p.SoldCount != 3 {
		t.Fatalf("expected sold count 3, got %d", p.SoldCount)
	}

	cart, _ := f.svc.Cart(ctx, "u1")
	if len(cart) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %d lines", len(cart))
	}
}

func TestShopService_Checkout_EmptyCart(t *testing.T) {
	f := newShopFixture()

	_, err := f.svc.Checkout(context.Background(), ports.CheckoutInput{
		UserID:          "u1",
		ShippingAddress: "Jl. Merdeka 1",
		PaymentMethod:   "Bank Transfer",
	})
	if !errors.Is(err, domain.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestShopService_Checkout_IdempotentReplay(t *testing.T) {
	f := newShopFixture()
	f.seedProduct(t, "p1", 50_000, 10)

	ctx := context.Background()
	if _, err := f.svc.AddToCart(ctx, "u1", "p1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	input := ports.CheckoutInput{
		UserID:          "u1",
		ShippingAddress: "Jl. Merdeka 1",
		PaymentMethod:   "Credit Card",
		IdempotencyKey:  "key-1",
	}

	first, err := f.svc.Checkout(ctx, input)
	if err != nil {
		t.Fatalf("first checkout: %v", err)
	}

	second, err := f.svc.Checkout(ctx, input)
	if err != nil {
		t.Fatalf("replayed checkout: %v", err)
	}
	if !second.AlreadyExisted {
		t.Fatalf("replay not flagged")
	}
	if second.Order.ID != first.Order.ID {
		t.Fatalf("replay returned a different order: %s vs %s", second.Order.ID, first.Order.ID)
	}

	// Stock moved only once.
	p, _ := f.products.FindByID(ctx, "p1")
	if p.SoldCount != 1 {
		t.Fatalf("expected sold count 1 after replay, got %d", p.SoldCount)
	}
}

func TestShopService_Checkout_IdempotencyKeyScopedToUser(t *testing.T) {
	f := newShopFixture()
	f.seedProduct(t, "p1", 50_000, 10)

	ctx := context.Background()
	if _, err := f.svc.AddToCart(ctx, "alice", "p1"); err != nil {
		t.Fatalf("add alice: %v", err)
	}
	first, err := f.svc.Checkout(ctx, ports.CheckoutInput{
		UserID:          "alice",
		ShippingAddress: "Alice St 1",
		PaymentMethod:   "Credit Card",
		IdempotencyKey:  "shared-key",
	})
	if err != nil {
		t.Fatalf("alice checkout: %v", err)
	}

	// Another user presenting the same key must never see alice's order.
	if _, err := f.svc.AddToCart(ctx, "mallory", "p1"); err != nil {
		t.Fatalf("add mallory: %v", err)
	}
	second, err := f.svc.Checkout(ctx, ports.CheckoutInput{
		UserID:          "mallory",
		ShippingAddress: "Mallory St 2",
		PaymentMethod:   "Credit Card",
		IdempotencyKey:  "shared-key",
	})
	if err != nil {
		t.Fatalf("mallory checkout: %v", err)
	}
	if second.AlreadyExisted {
		t.Fatalf("foreign key treated as a replay")
	}
	if second.Order.ID == first.Order.ID {
		t.Fatalf("mallory received alice's order %s", first.Order.ID)
	}
	if second.Order.UserID != "mallory" || second.Order.ShippingAddress != "Mallory St 2" {
		t.Fatalf("order not scoped to the caller: %+v", second.Order)
	}
}

func TestShopService_Checkout_IdempotencyLookupFailure(t *testing.T) {
	f := newShopFixture()
	f.seedProduct(t, "p1", 50_000, 10)

	ctx := context.Background()
	if _, err := f.svc.AddToCart(ctx, "u1", "p1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	lookupErr := errors.New("store unavailable")
	f.orders.findKeyErr = lookupErr

	_, err := f.svc.Checkout(ctx, ports.CheckoutInput{
		UserID:          "u1",
		ShippingAddress: "Jl. Merdeka 1",
		PaymentMethod:   "Credit Card",
		IdempotencyKey:  "key-1",
	})
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup failure to surface, got %v", err)
	}
	if len(f.orders.orders) != 0 {
		t.Fatalf("order placed despite failed idempotency lookup")
	}
}

func TestShopService_Checkout_StockFloorsAtZero(t *testing.T) {
	f := newShopFixture()
	f.seedProduct(t, "p1", 10_000, 2)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := f.svc.AddToCart(ctx, "u1", "p1"); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	if _, err := f.svc.Checkout(ctx, ports.CheckoutInput{
		UserID:          "u1",
		ShippingAddress: "Jl. Merdeka 1",
		PaymentMethod:   "Bank Transfer",
	}); err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}

	p, _ := f.products.FindByID(ctx, "p1")
	if p.Stock != 0 {
		t.Fatalf("expected stock floored at 0, got %d", p.Stock)
	}
	if p.SoldCount != 5 {
		t.Fatalf("expected sold count 5, got %d", p.SoldCount)
	}
}

func TestShopService_UpdateOrderStatus(t *testing.T) {
	f := newShopFixture()
	ctx := context.Background()

	if err := f.orders.Insert(ctx, &domain.Order{ID: "o1", Status: domain.OrderPending}); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	order, err := f.svc.UpdateOrderStatus(ctx, "o1", domain.OrderShipped)
	if err != nil {
		t.Fatalf("UpdateOrderStatus returned error: %v", err)
	}
	if order.Status != domain.OrderShipped {
		t.Fatalf("expected shipped, got %s", order.Status)
	}

	// Skipping straight from pending to delivered is rejected.
	if err := f.orders.UpdateStatus(ctx, "o1", domain.OrderPending); err != nil {
		t.Fatalf("reset order: %v", err)
	}
	if _, err := f.svc.UpdateOrderStatus(ctx, "o1", domain.OrderDelivered); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	// Backwards moves are rejected.
	if err := f.orders.UpdateStatus(ctx, "o1", domain.OrderShipped); err != nil {
		t.Fatalf("reset order: %v", err)
	}
	if _, err := f.svc.UpdateOrderStatus(ctx, "o1", domain.OrderPending); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestShopService_UpdateProduct_KeepsImageWhenOmitted(t *testing.T) {
	f := newShopFixture()
	ctx := context.Background()

	if err := f.products.Insert(ctx, &domain.Product{
		ID:       "p1",
		Name:     "Dress",
		Price:    200_000,
		Category: domain.CategoryFashion,
		Image:    "data:image/jpeg;base64,abc",
		Stock:    3,
	}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	updated, err := f.svc.UpdateProduct(ctx, "p1", ports.SaveProductInput{
		Name:     "Dress v2",
		Price:    250_000,
		Category: domain.CategoryFashion,
		Stock:    4,
	})
	if err != nil {
		t.Fatalf("UpdateProduct returned error: %v", err)
	}
	if updated.Image != "data:image/jpeg;base64,abc" {
		t.Fatalf("image dropped on update without a new one")
	}
	if updated.Price != 250_000 || updated.Stock != 4 {
		t.Fatalf("fields not applied: %+v", updated)
	}
}
