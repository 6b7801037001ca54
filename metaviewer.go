// Package metaviewer renders the stored metadata of a post, order or
// subscription as a read-only HTML table for an admin screen panel.
//
// The root package re-exports the common entry points; the building blocks
// live under pkg/.
package metaviewer

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-metaviewer/pkg/metabox"
	"github.com/goliatone/go-metaviewer/pkg/metasource"
	"github.com/goliatone/go-metaviewer/pkg/record"
	"github.com/goliatone/go-metaviewer/pkg/render"
	"github.com/goliatone/go-metaviewer/pkg/viewer"
)

// Post aliases record.Post.
type Post = record.Post

// Order aliases record.Order.
type Order = record.Order

// Variant aliases record.Variant.
type Variant = record.Variant

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// NewViewer exposes the viewer constructor from the top-level module.
func NewViewer(options ...viewer.Option) (*viewer.Viewer, error) {
	return viewer.New(options...)
}

// RenderHTML resolves the record for objectType and renders its table with
// default presentation options. Pass a nil post and order to render the empty
// layout for the screen.
func RenderHTML(ctx context.Context, objectType string, post *Post, order *Order, options ...viewer.Option) ([]byte, error) {
	v, err := viewer.New(options...)
	if err != nil {
		return nil, err
	}
	return v.Render(ctx, record.Resolve(objectType, post, order), RenderOptions{})
}

// NewMetabox builds the panel registration helper with the stock
// configuration, rendering through a default viewer.
func NewMetabox(options ...viewer.Option) (*metabox.Metabox, error) {
	v, err := viewer.New(options...)
	if err != nil {
		return nil, err
	}
	return metabox.New(metabox.DefaultConfig(), v)
}

// WithStore passes a meta store to the viewer.
func WithStore(store metasource.Store) viewer.Option {
	return viewer.WithStore(store)
}

// WithThemeSelector passes a go-theme selector through to the viewer so the
// chosen theme's tokens reach the style block.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) viewer.Option {
	return viewer.WithThemeSelector(selector, name, variant)
}
