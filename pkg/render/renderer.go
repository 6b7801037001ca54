package render

import (
	"context"

	"github.com/goliatone/go-metaviewer/pkg/section"
)

// Renderer converts ordered sections into a presentation fragment.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, sections []section.Section, options RenderOptions) ([]byte, error)
}
