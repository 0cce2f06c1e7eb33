package cart

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/zapzocket/studio/internal/model"
)

// mirrorKey matches the storage key the web client used for its cart.
const mirrorKey = "heyvanKalaCart"

// Mirror persists the mapped cart so a reloaded session starts from its
// last known contents. Saves are best effort and overwritten wholesale on
// every successful backend round trip; the backend stays the source of
// truth.
type Mirror interface {
	Save(ctx context.Context, items []model.CartItem) error
	Load(ctx context.Context) ([]model.CartItem, error)
}

// RedisMirror stores the cart as one JSON blob in redis.
type RedisMirror struct {
	client *redis.Client
}

func NewRedisMirror(client *redis.Client) *RedisMirror {
	return &RedisMirror{client: client}
}

func (m *RedisMirror) Save(ctx context.Context, items []model.CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return m.client.Set(ctx, mirrorKey, b, 0).Err()
}

func (m *RedisMirror) Load(ctx context.Context) ([]model.CartItem, error) {
	data, err := m.client.Get(ctx, mirrorKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
