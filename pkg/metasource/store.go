package metasource

import "context"

// Store reads raw meta collections for a record identity. Implementations
// must never mutate the backing store.
type Store interface {
	// PostMeta returns every stored value per meta key, in storage order.
	PostMeta(ctx context.Context, postID int64) (map[string][]string, error)
	// OrderMeta returns one value per meta key; later rows overwrite earlier
	// ones. NULL values are reported as nil.
	OrderMeta(ctx context.Context, orderID int64) (map[string]any, error)
}

// MemoryStore is a Store backed by maps, used by fixtures and tests.
type MemoryStore struct {
	posts  map[int64]map[string][]string
	orders map[int64]map[string]any
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		posts:  make(map[int64]map[string][]string),
		orders: make(map[int64]map[string]any),
	}
}

// SetPostMeta replaces the meta collection for a post.
func (m *MemoryStore) SetPostMeta(postID int64, meta map[string][]string) {
	m.posts[postID] = meta
}

// SetOrderMeta replaces the meta collection for an order.
func (m *MemoryStore) SetOrderMeta(orderID int64, meta map[string]any) {
	m.orders[orderID] = meta
}

// PostMeta implements Store.
func (m *MemoryStore) PostMeta(ctx context.Context, postID int64) (map[string][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src := m.posts[postID]
	out := make(map[string][]string, len(src))
	for key, values := range src {
		out[key] = append([]string(nil), values...)
	}
	return out, nil
}

// OrderMeta implements Store.
func (m *MemoryStore) OrderMeta(ctx context.Context, orderID int64) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src := m.orders[orderID]
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out, nil
}
