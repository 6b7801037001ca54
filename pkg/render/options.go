package render

import theme "github.com/goliatone/go-theme"

// DefaultPanelID is the panel identifier the style rules are scoped to when
// RenderOptions.PanelID is empty.
const DefaultPanelID = "meta_viewer"

// RenderOptions describe per-request presentation settings. They never change
// which rows are produced.
type RenderOptions struct {
	// PanelID scopes the embedded style rules (`#<PanelID> table ...`).
	PanelID string
	// Theme optionally contributes CSS custom properties to the style block.
	Theme *theme.RendererConfig
	// OmitStyles skips the style block, for hosts that ship their own CSS.
	OmitStyles bool
}

// ResolvedPanelID returns PanelID or DefaultPanelID.
func (o RenderOptions) ResolvedPanelID() string {
	if o.PanelID == "" {
		return DefaultPanelID
	}
	return o.PanelID
}
