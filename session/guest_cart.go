package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
)

// GuestCart is the session-scoped cart of an unauthenticated visitor:
// product id -> quantity.
type GuestCart map[uint]int

// Count is the quantity sum shown in the page header.
func (gc GuestCart) Count() int {
	count := 0
	for _, qty := range gc {
		count += qty
	}
	return count
}

// Store keeps guest carts in redis, keyed by guest id, expiring after the
// configured TTL so abandoned carts don't accumulate.
type Store struct {
	client *redis.Client
	config config.RedisConfig
}

func NewStore(cfg config.RedisConfig) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		config: cfg,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func cartKey(guestID string) string {
	return fmt.Sprintf("guestcart:%s", guestID)
}

// Get returns the guest's cart, or an empty cart when none exists.
func (s *Store) Get(ctx context.Context, guestID string) (GuestCart, error) {
	data, err := s.client.Get(ctx, cartKey(guestID)).Result()
	if err == redis.Nil {
		return GuestCart{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart GuestCart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Store) save(ctx context.Context, guestID string, cart GuestCart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(guestID), data, s.config.GuestCartTTL).Err()
}

// AddItem increments the quantity for productID, creating the cart or the
// entry as needed, and returns the updated cart.
func (s *Store) AddItem(ctx context.Context, guestID string, productID uint, qty int) (GuestCart, error) {
	cart, err := s.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}

	cart[productID] += qty
	if err := s.save(ctx, guestID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear removes the guest's cart entirely, used after the cart is merged
// into a user cart at login.
func (s *Store) Clear(ctx context.Context, guestID string) error {
	return s.client.Del(ctx, cartKey(guestID)).Err()
}
