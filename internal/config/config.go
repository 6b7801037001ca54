// Package config loads the meta viewer harness configuration.
package config

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-metaviewer/pkg/metabox"
)

// Config is the root configuration document.
type Config struct {
	Metabox  metabox.Config `yaml:"metabox"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// DatabaseConfig selects the meta store. An empty driver means records carry
// their own meta and no database is opened.
type DatabaseConfig struct {
	Driver         string `yaml:"driver"`
	DSN            string `yaml:"dsn"`
	TablePrefix    string `yaml:"table_prefix"`
	OrderMetaTable string `yaml:"order_meta_table"`
	PostMetaTable  string `yaml:"post_meta_table"`
}

// Enabled reports whether a database store is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Driver != ""
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// ThemeConfig carries the theme name and the CSS variables added to the
// table's style block.
type ThemeConfig struct {
	Name    string            `yaml:"name"`
	Variant string            `yaml:"variant"`
	CSSVars map[string]string `yaml:"css_vars"`
}

// RendererConfig converts the theme section into the renderer's theme
// payload. It returns nil when nothing is configured.
func (t ThemeConfig) RendererConfig() *theme.RendererConfig {
	if t.Name == "" && t.Variant == "" && len(t.CSSVars) == 0 {
		return nil
	}
	vars := make(map[string]string, len(t.CSSVars))
	for key, value := range t.CSSVars {
		vars[key] = value
	}
	return &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
		CSSVars: vars,
	}
}

// Defaults returns a configuration with all defaults applied.
func Defaults() *Config {
	return &Config{
		Metabox: metabox.DefaultConfig(),
		Database: DatabaseConfig{
			TablePrefix: "wp_",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
