// SPDX-License-Identifier: MIT
package themes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dbbuilder/ui-customizer/internal/models"
	"github.com/dbbuilder/ui-customizer/internal/tokens"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Cache stores synthesized bundles by their generation inputs.
type Cache interface {
	Get(ctx context.Context, key string) (*tokens.Bundle, bool, error)
	Put(ctx context.Context, entry CacheEntry) error
}

// CacheEntry is a bundle together with the inputs it was built from.
type CacheEntry struct {
	Key        string
	Style      tokens.Style
	SeedColor  string
	RandomSeed int64
	Bundle     *tokens.Bundle
}

// DBCache is a Cache backed by the cached_bundles table.
type DBCache struct {
	db *gorm.DB
}

// NewDBCache wraps an open, migrated database.
func NewDBCache(db *gorm.DB) *DBCache {
	return &DBCache{db: db}
}

// Get returns the bundle stored under key, if any.
func (c *DBCache) Get(ctx context.Context, key string) (*tokens.Bundle, bool, error) {
	var row models.CachedBundle
	err := c.db.WithContext(ctx).Where(&models.CachedBundle{Key: key}).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached bundle: %w", err)
	}

	var b tokens.Bundle
	if err := json.Unmarshal(row.Payload, &b); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached bundle: %w", err)
	}

	if err := c.db.WithContext(ctx).Model(&row).UpdateColumn("hits", gorm.Expr("hits + ?", 1)).Error; err != nil {
		return nil, false, fmt.Errorf("failed to count cache hit: %w", err)
	}
	return &b, true, nil
}

// Put stores a bundle. An existing entry for the same key is kept.
func (c *DBCache) Put(ctx context.Context, entry CacheEntry) error {
	payload, err := json.Marshal(entry.Bundle)
	if err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}

	row := models.CachedBundle{
		Key:        entry.Key,
		Style:      string(entry.Style),
		SeedColor:  entry.SeedColor,
		RandomSeed: entry.RandomSeed,
		Payload:    payload,
	}
	if err := c.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to store bundle: %w", err)
	}
	return nil
}

// Count returns the number of cached bundles.
func (c *DBCache) Count(ctx context.Context) (int64, error) {
	var n int64
	err := c.db.WithContext(ctx).Model(&models.CachedBundle{}).Count(&n).Error
	return n, err
}

// Prune deletes bundles created before cutoff and returns how many were removed.
func (c *DBCache) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res := c.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.CachedBundle{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to prune cached bundles: %w", res.Error)
	}
	return res.RowsAffected, nil
}
