// SPDX-License-Identifier: MIT
package db

import (
	"path/filepath"
	"testing"

	"github.com/dbbuilder/ui-customizer/internal/models"
)

func TestOpenMigratesCache(t *testing.T) {
	testDB, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if !testDB.Migrator().HasTable(&models.CachedBundle{}) {
		t.Fatal("cached_bundles table not found")
	}
	if !testDB.Migrator().HasColumn(&models.CachedBundle{}, "payload") {
		t.Fatal("payload column not found in cached_bundles table")
	}
}

func TestInMemoryDatabaseIsShared(t *testing.T) {
	testDB, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	entry := &models.CachedBundle{Key: "k", Style: "modern", SeedColor: "#2563EB", Payload: []byte("{}")}
	if err := testDB.Create(entry).Error; err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	// A second query must see the row created above
	var count int64
	if err := testDB.Model(&models.CachedBundle{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}
}

func TestInitDBFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	if err := InitDB("sqlite", path); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer Close()

	if GetDB() == nil {
		t.Fatal("expected DB to be set")
	}
}

func TestOpenUnsupportedType(t *testing.T) {
	if _, err := Open("postgres", "dsn"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
