package metasource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Supported database/sql driver names.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultTablePrefix   = "wp_"
	postMetaTableSuffix  = "postmeta"
	orderMetaTableSuffix = "wc_orders_meta"
)

var (
	// ErrUnknownDriver is returned for driver names other than the supported ones.
	ErrUnknownDriver = errors.New("metasource: unknown driver")
	// ErrInvalidTable is returned when a table name is not a plain identifier.
	ErrInvalidTable = errors.New("metasource: invalid table name")

	tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// SQLOption customises the SQL store.
type SQLOption func(*sqlConfig)

type sqlConfig struct {
	prefix         string
	postMetaTable  string
	orderMetaTable string
}

// WithTablePrefix sets the host table prefix (default "wp_").
func WithTablePrefix(prefix string) SQLOption {
	return func(cfg *sqlConfig) {
		cfg.prefix = strings.TrimSpace(prefix)
	}
}

// WithPostMetaTable overrides the full post meta table name.
func WithPostMetaTable(name string) SQLOption {
	return func(cfg *sqlConfig) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.postMetaTable = trimmed
		}
	}
}

// WithOrderMetaTable overrides the full order meta table name.
func WithOrderMetaTable(name string) SQLOption {
	return func(cfg *sqlConfig) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.orderMetaTable = trimmed
		}
	}
}

// SQLStore reads meta rows straight from the host's meta tables.
type SQLStore struct {
	db             *sql.DB
	driver         string
	postMetaTable  string
	orderMetaTable string
}

var _ Store = (*SQLStore)(nil)

// NewSQLStore wraps an open database handle. The driver name selects the
// placeholder syntax.
func NewSQLStore(db *sql.DB, driver string, options ...SQLOption) (*SQLStore, error) {
	if db == nil {
		return nil, errors.New("metasource: database handle is required")
	}
	if !KnownDriver(driver) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	cfg := sqlConfig{prefix: defaultTablePrefix}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.postMetaTable == "" {
		cfg.postMetaTable = cfg.prefix + postMetaTableSuffix
	}
	if cfg.orderMetaTable == "" {
		cfg.orderMetaTable = cfg.prefix + orderMetaTableSuffix
	}
	for _, name := range []string{cfg.postMetaTable, cfg.orderMetaTable} {
		if err := ValidateTableName(name); err != nil {
			return nil, err
		}
	}

	return &SQLStore{
		db:             db,
		driver:         driver,
		postMetaTable:  cfg.postMetaTable,
		orderMetaTable: cfg.orderMetaTable,
	}, nil
}

// OpenSQLStore opens a database handle for driver/dsn and wraps it. Callers
// own the returned store and must Close it.
func OpenSQLStore(driver, dsn string, options ...SQLOption) (*SQLStore, error) {
	if !KnownDriver(driver) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("metasource: open %s: %w", driver, err)
	}
	store, err := NewSQLStore(db, driver, options...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// KnownDriver reports whether driver is supported by the SQL store.
func KnownDriver(driver string) bool {
	switch driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
		return true
	default:
		return false
	}
}

// ValidateTableName rejects anything that is not a bare SQL identifier, since
// table names are interpolated into queries.
func ValidateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, name)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// PostMetaTable returns the resolved post meta table name.
func (s *SQLStore) PostMetaTable() string { return s.postMetaTable }

// OrderMetaTable returns the resolved order meta table name.
func (s *SQLStore) OrderMetaTable() string { return s.orderMetaTable }

// PostMeta implements Store.
func (s *SQLStore) PostMeta(ctx context.Context, postID int64) (map[string][]string, error) {
	query := fmt.Sprintf(
		"SELECT meta_key, meta_value FROM %s WHERE post_id = %s ORDER BY meta_id",
		s.postMetaTable, s.placeholder(1),
	)
	rows, err := s.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("metasource: query post meta: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var key, value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("metasource: scan post meta: %w", err)
		}
		out[key.String] = append(out[key.String], value.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("metasource: read post meta: %w", err)
	}
	return out, nil
}

// OrderMeta implements Store.
func (s *SQLStore) OrderMeta(ctx context.Context, orderID int64) (map[string]any, error) {
	query := fmt.Sprintf(
		"SELECT meta_key, meta_value FROM %s WHERE order_id = %s ORDER BY id",
		s.orderMetaTable, s.placeholder(1),
	)
	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("metasource: query order meta: %w", err)
	}
	defer rows.Close()

	out := make(map[string]any)
	for rows.Next() {
		var key, value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("metasource: scan order meta: %w", err)
		}
		if value.Valid {
			out[key.String] = value.String
		} else {
			out[key.String] = nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("metasource: read order meta: %w", err)
	}
	return out, nil
}

func (s *SQLStore) placeholder(n int) string {
	if s.driver == DriverPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}
