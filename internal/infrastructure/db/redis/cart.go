package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/matchfit/matchfit-api/internal/core/domain"
)

// CartStore keeps one cart per user in a Redis hash.
// Key format: cart:<user_id>; one field per product id holding a JSON line.
type CartStore struct {
	client *redis.Client
}

// NewCartStore creates a CartStore wrapping the given Redis client.
func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

func (s *CartStore) Get(ctx context.Context, userID string) ([]domain.CartItem, error) {
	fields, err := s.client.HGetAll(ctx, s.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cart get: %w", err)
	}

	items := make([]domain.CartItem, 0, len(fields))
	for _, raw := range fields {
		var item domain.CartItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("cart decode: %w", err)
		}
		items = append(items, item)
	}
	// Hash field order is unspecified; keep listings stable.
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items, nil
}

// Put upserts one cart line, keyed by its product id.
func (s *CartStore) Put(ctx context.Context, userID string, item domain.CartItem) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cart encode: %w", err)
	}
	if err := s.client.HSet(ctx, s.key(userID), item.ProductID, raw).Err(); err != nil {
		return fmt.Errorf("cart put: %w", err)
	}
	return nil
}

func (s *CartStore) Remove(ctx context.Context, userID, productID string) error {
	if err := s.client.HDel(ctx, s.key(userID), productID).Err(); err != nil {
		return fmt.Errorf("cart remove: %w", err)
	}
	return nil
}

func (s *CartStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("cart clear: %w", err)
	}
	return nil
}

func (s *CartStore) key(userID string) string {
	return "cart:" + userID
}
