package metasource

import (
	"context"

	"go.uber.org/zap"

	"github.com/goliatone/go-metaviewer/pkg/record"
)

// Snapshot is everything the section builder needs for one render: the
// resolved record plus the raw meta collection for its kind.
type Snapshot struct {
	Variant   record.Variant
	PostMeta  map[string][]string
	OrderMeta map[string]any
}

// Option configures a Source.
type Option func(*Source)

// WithStore sets the backing meta store. Without one, posts fall back to
// their embedded Meta and orders report no meta.
func WithStore(store Store) Option {
	return func(s *Source) {
		s.store = store
	}
}

// WithLogger sets the logger used to report failed lookups.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Source resolves the raw meta for a record variant.
type Source struct {
	store  Store
	logger *zap.Logger
}

// New constructs a Source.
func New(options ...Option) *Source {
	s := &Source{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Load fetches the meta collection for v. It performs at most one store read
// and never fails: errors are logged and produce an empty collection.
func (s *Source) Load(ctx context.Context, v record.Variant) Snapshot {
	snap := Snapshot{Variant: v}
	if !v.Present() {
		return snap
	}

	switch v.Kind {
	case record.KindOrder:
		snap.OrderMeta = s.orderMeta(ctx, v.Order.ID)
	default:
		snap.PostMeta = s.postMeta(ctx, v.Post)
	}
	return snap
}

func (s *Source) postMeta(ctx context.Context, post *record.Post) map[string][]string {
	if s.store == nil {
		return post.Meta
	}
	meta, err := s.store.PostMeta(ctx, post.ID)
	if err != nil {
		s.logger.Warn("post meta lookup failed", zap.Int64("post_id", post.ID), zap.Error(err))
		return map[string][]string{}
	}
	return meta
}

func (s *Source) orderMeta(ctx context.Context, orderID int64) map[string]any {
	if s.store == nil {
		return map[string]any{}
	}
	meta, err := s.store.OrderMeta(ctx, orderID)
	if err != nil {
		s.logger.Warn("order meta lookup failed", zap.Int64("order_id", orderID), zap.Error(err))
		return map[string]any{}
	}
	return meta
}
