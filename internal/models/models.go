// SPDX-License-Identifier: MIT
package models

import (
	"fmt"
	"strings"
	"time"
)

// CachedBundle is a synthesized token bundle stored under its generation
// inputs. Bundles are deterministic in those inputs, so a hit can be
// returned as is.
type CachedBundle struct {
	ID         uint   `gorm:"primaryKey"`
	Key        string `gorm:"uniqueIndex;size:191;not null"`
	Style      string `gorm:"index;not null"`
	SeedColor  string `gorm:"not null"`
	RandomSeed int64
	Payload    []byte `gorm:"not null"` // JSON encoded bundle
	Hits       int    `gorm:"default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BundleKey builds the cache key for a generation request. seedColor is
// normalized so equivalent spellings of a color share an entry.
func BundleKey(style, seedColor string, randomSeed int64) string {
	return fmt.Sprintf("%s|%s|%d",
		style,
		strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(seedColor), "#")),
		randomSeed)
}
