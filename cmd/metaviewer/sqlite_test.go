package main

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func seedSQLite(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE wp_wc_orders_meta (id INTEGER PRIMARY KEY AUTOINCREMENT, order_id INTEGER, meta_key TEXT, meta_value TEXT)`,
		`CREATE TABLE wp_postmeta (meta_id INTEGER PRIMARY KEY AUTOINCREMENT, post_id INTEGER, meta_key TEXT, meta_value TEXT)`,
		`INSERT INTO wp_wc_orders_meta (order_id, meta_key, meta_value) VALUES (7, '_from_db', 'yes')`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
}
