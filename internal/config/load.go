package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-metaviewer/pkg/metasource"
)

// Load reads configuration from path with ENV interpolation. An empty path
// returns the defaults.
func Load(path string, getenv func(string) string) (*Config, error) {
	if path == "" {
		cfg := Defaults()
		return cfg, Validate(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, getenv)
}

// Parse decodes a YAML document on top of the defaults and validates it.
func Parse(data []byte, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	data = interpolateEnv(data, getenv)

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envPattern matches ${VAR} or ${VAR:-default}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		value := getenv(string(parts[1]))
		if value == "" && len(parts) >= 3 && len(parts[2]) > 0 {
			value = string(parts[2])
		}
		return []byte(value)
	})
}

// Validate reports every configuration problem at once.
func Validate(cfg *Config) error {
	var errs []string

	if err := cfg.Metabox.Validate(); err != nil {
		errs = append(errs, strings.Split(err.Error(), "\n")...)
	}

	db := cfg.Database
	if db.Enabled() {
		if !metasource.KnownDriver(db.Driver) {
			errs = append(errs, fmt.Sprintf("database: unknown driver %q (must be mysql, postgres or sqlite)", db.Driver))
		}
		if db.DSN == "" {
			errs = append(errs, "database: dsn is required when a driver is set")
		}
		if db.TablePrefix != "" {
			if err := metasource.ValidateTableName(db.TablePrefix); err != nil {
				errs = append(errs, fmt.Sprintf("database: table_prefix: %v", err))
			}
		}
		for _, table := range []string{db.OrderMetaTable, db.PostMetaTable} {
			if table == "" {
				continue
			}
			if err := metasource.ValidateTableName(table); err != nil {
				errs = append(errs, fmt.Sprintf("database: %v", err))
			}
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging: invalid level %q (must be debug, info, warn or error)", cfg.Logging.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// StoreOptions maps the database section onto SQL store options.
func (d DatabaseConfig) StoreOptions() []metasource.SQLOption {
	return []metasource.SQLOption{
		metasource.WithTablePrefix(d.TablePrefix),
		metasource.WithPostMetaTable(d.PostMetaTable),
		metasource.WithOrderMetaTable(d.OrderMetaTable),
	}
}
