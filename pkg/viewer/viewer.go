package viewer

import (
	"context"
	"errors"
	"fmt"
	"io"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-metaviewer/pkg/metasource"
	"github.com/goliatone/go-metaviewer/pkg/record"
	"github.com/goliatone/go-metaviewer/pkg/render"
	"github.com/goliatone/go-metaviewer/pkg/renderers/table"
	"github.com/goliatone/go-metaviewer/pkg/section"
)

// Option customises the viewer configuration.
type Option func(*Viewer)

// WithStore sets the meta store used by the default source.
func WithStore(store metasource.Store) Option {
	return func(v *Viewer) {
		v.store = store
	}
}

// WithSource injects a fully configured source, overriding WithStore.
func WithSource(source *metasource.Source) Option {
	return func(v *Viewer) {
		v.source = source
	}
}

// WithRenderer injects the renderer. Defaults to the HTML table renderer.
func WithRenderer(renderer render.Renderer) Option {
	return func(v *Viewer) {
		v.renderer = renderer
	}
}

// WithLogger sets the logger shared with the default source.
func WithLogger(logger *zap.Logger) Option {
	return func(v *Viewer) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithThemeSelector resolves the named theme for renders whose options carry
// no theme of their own.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(v *Viewer) {
		v.themes = selector
		v.themeName = name
		v.themeVariant = variant
	}
}

// Viewer renders the metadata of one record per call. It holds no per-record
// state and is safe for concurrent use.
type Viewer struct {
	store    metasource.Store
	source   *metasource.Source
	renderer render.Renderer
	logger   *zap.Logger

	themes       theme.ThemeSelector
	themeName    string
	themeVariant string
}

// New constructs a Viewer, filling missing dependencies with the built-in
// implementations.
func New(options ...Option) (*Viewer, error) {
	v := &Viewer{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}

	if v.source == nil {
		v.source = metasource.New(
			metasource.WithStore(v.store),
			metasource.WithLogger(v.logger),
		)
	}
	if v.renderer == nil {
		renderer, err := table.New()
		if err != nil {
			return nil, fmt.Errorf("viewer: default renderer: %w", err)
		}
		v.renderer = renderer
	}
	return v, nil
}

// Sections loads the record's meta and returns its ordered sections.
func (v *Viewer) Sections(ctx context.Context, rec record.Variant) []section.Section {
	return section.Build(v.source.Load(ctx, rec))
}

// Render returns the rendered fragment for rec.
func (v *Viewer) Render(ctx context.Context, rec record.Variant, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("viewer: context is required")
	}
	if options.Theme == nil {
		options.Theme = v.selectTheme()
	}
	out, err := v.renderer.Render(ctx, v.Sections(ctx, rec), options)
	if err != nil {
		return nil, fmt.Errorf("viewer: render %s %d: %w", rec.Kind, rec.ID(), err)
	}
	return out, nil
}

func (v *Viewer) selectTheme() *theme.RendererConfig {
	if v.themes == nil {
		return nil
	}
	selection, err := v.themes.Select(v.themeName, v.themeVariant)
	if err != nil {
		v.logger.Warn("theme selection failed",
			zap.String("theme", v.themeName),
			zap.String("variant", v.themeVariant),
			zap.Error(err),
		)
		return nil
	}
	return render.ThemeConfig(selection)
}

// RenderTo writes the rendered fragment for rec to w.
func (v *Viewer) RenderTo(ctx context.Context, w io.Writer, rec record.Variant, options render.RenderOptions) error {
	out, err := v.Render(ctx, rec, options)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("viewer: write output: %w", err)
	}
	return nil
}

// ContentType reports the renderer's content type.
func (v *Viewer) ContentType() string {
	return v.renderer.ContentType()
}
