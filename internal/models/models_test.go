package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(&CachedBundle{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestCreateCachedBundle(t *testing.T) {
	db := setupTestDB(t)

	entry := CachedBundle{
		Key:       BundleKey("retro", "#F97316", 0),
		Style:     "retro",
		SeedColor: "#F97316",
		Payload:   []byte(`{"style":"retro"}`),
	}

	result := db.Create(&entry)
	if result.Error != nil {
		t.Fatalf("Failed to create cached bundle: %v", result.Error)
	}

	if entry.ID == 0 {
		t.Error("CachedBundle ID should be set after creation")
	}
}

func TestCachedBundleKeyIsUnique(t *testing.T) {
	db := setupTestDB(t)

	first := CachedBundle{Key: "modern|2563EB|0", Style: "modern", SeedColor: "#2563EB", Payload: []byte("{}")}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("Failed to create first entry: %v", err)
	}

	dup := CachedBundle{Key: "modern|2563EB|0", Style: "modern", SeedColor: "#2563EB", Payload: []byte("{}")}
	if err := db.Create(&dup).Error; err == nil {
		t.Error("Expected unique constraint violation for duplicate key")
	}
}

func TestBundleKeyNormalizes(t *testing.T) {
	tests := []struct {
		style, color string
		seed         int64
		want         string
	}{
		{"modern", "#2563eb", 0, "modern|2563EB|0"},
		{"modern", " 2563EB", 0, "modern|2563EB|0"},
		{"retro", "", 42, "retro||42"},
	}

	for _, tt := range tests {
		if got := BundleKey(tt.style, tt.color, tt.seed); got != tt.want {
			t.Errorf("BundleKey(%q, %q, %d) = %q, want %q", tt.style, tt.color, tt.seed, got, tt.want)
		}
	}
}
