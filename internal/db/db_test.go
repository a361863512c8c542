package db

import (
	"path/filepath"
	"testing"

	"goalsmith/internal/config"
)

func TestInit_InvalidPostgresDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.DSN = "host=256.256.256.256 port=1 user=x dbname=x connect_timeout=1"
	if err := Init(cfg); err == nil {
		t.Errorf("expected error for unreachable postgres DSN, got nil")
	}
}

func TestInit_SqliteFileAndMigrates(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.DSN = filepath.Join(t.TempDir(), "test.db")
	if err := Init(cfg); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if DB == nil {
		t.Fatal("DB not set")
	}
	for _, table := range []string{"users", "goals"} {
		if !DB.Migrator().HasTable(table) {
			t.Errorf("expected table %q after migration", table)
		}
	}
}
