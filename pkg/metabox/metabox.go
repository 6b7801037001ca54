package metabox

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-metaviewer/pkg/record"
	"github.com/goliatone/go-metaviewer/pkg/render"
	"github.com/goliatone/go-metaviewer/pkg/visibility"
)

// Box is the registration payload handed to the host. Title is plain text;
// hosts escape it for their markup.
type Box struct {
	ID       string
	Title    string
	Screen   string
	Context  Placement
	Priority Priority
	// Render writes the panel body. The host calls it while drawing the screen.
	Render func(ctx context.Context, w io.Writer) error
}

// Host accepts panel registrations for the screen being built.
type Host interface {
	AddMetaBox(box Box) error
}

// HostFunc adapts a function into a Host.
type HostFunc func(box Box) error

// AddMetaBox delegates to the underlying function.
func (fn HostFunc) AddMetaBox(box Box) error {
	return fn(box)
}

// RecordRenderer writes the metadata table for one record.
type RecordRenderer interface {
	RenderTo(ctx context.Context, w io.Writer, rec record.Variant, options render.RenderOptions) error
}

// Option customises a Metabox.
type Option func(*Metabox)

// WithVisibility sets the predicate consulted before registering.
func WithVisibility(predicate visibility.Predicate) Option {
	return func(m *Metabox) {
		if predicate != nil {
			m.visible = predicate
		}
	}
}

// WithLogger sets the logger used for skipped registrations.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Metabox) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithRenderOptions sets the options passed to the renderer. The panel id is
// always taken from the configuration.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(m *Metabox) {
		m.renderOptions = options
	}
}

// Metabox registers the viewer panel on allowed screens.
type Metabox struct {
	cfg           Config
	renderer      RecordRenderer
	visible       visibility.Predicate
	logger        *zap.Logger
	renderOptions render.RenderOptions
}

var (
	titlePolicyOnce sync.Once
	titlePolicy     *bluemonday.Policy
)

func titleSanitizer() *bluemonday.Policy {
	titlePolicyOnce.Do(func() {
		titlePolicy = bluemonday.StrictPolicy()
	})
	return titlePolicy
}

// plainTitle strips markup and decodes entities so the title is plain text.
func plainTitle(raw string) string {
	return strings.TrimSpace(html.UnescapeString(titleSanitizer().Sanitize(raw)))
}

// New validates cfg and returns a Metabox bound to renderer.
func New(cfg Config, renderer RecordRenderer, options ...Option) (*Metabox, error) {
	if renderer == nil {
		return nil, errors.New("metabox: renderer is required")
	}
	cfg.Title = plainTitle(cfg.Title)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ObjectTypes = append([]string(nil), cfg.ObjectTypes...)

	m := &Metabox{
		cfg:      cfg,
		renderer: renderer,
		visible:  visibility.Always(),
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	m.renderOptions.PanelID = cfg.ID
	return m, nil
}

// Config returns a copy of the effective configuration.
func (m *Metabox) Config() Config {
	cfg := m.cfg
	cfg.ObjectTypes = append([]string(nil), m.cfg.ObjectTypes...)
	return cfg
}

// Register offers the panel to host for the screen identified by objectType.
// It reports whether the panel was added. Screens outside the allow-list and
// records rejected by the visibility predicate are skipped without error.
func (m *Metabox) Register(ctx context.Context, host Host, objectType string, rec record.Variant) (bool, error) {
	if host == nil {
		return false, errors.New("metabox: host is required")
	}
	if !m.cfg.Allows(objectType) {
		m.logger.Debug("meta viewer skipped: screen not allowed", zap.String("object_type", objectType))
		return false, nil
	}
	if !m.visible.Visible(objectType, rec) {
		m.logger.Debug("meta viewer skipped: hidden by predicate",
			zap.String("object_type", objectType),
			zap.Stringer("kind", rec.Kind),
		)
		return false, nil
	}

	options := m.renderOptions
	box := Box{
		ID:       m.cfg.ID,
		Title:    m.cfg.Title,
		Screen:   objectType,
		Context:  m.cfg.Context,
		Priority: m.cfg.Priority,
		Render: func(renderCtx context.Context, w io.Writer) error {
			if renderCtx == nil {
				renderCtx = ctx
			}
			return m.renderer.RenderTo(renderCtx, w, rec, options)
		},
	}
	if err := host.AddMetaBox(box); err != nil {
		return false, fmt.Errorf("metabox: register on %s: %w", objectType, err)
	}
	return true, nil
}
