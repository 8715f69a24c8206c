// SPDX-License-Identifier: MIT
package themes

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dbbuilder/ui-customizer/internal/models"
	"github.com/dbbuilder/ui-customizer/internal/tokens"
	"github.com/rs/zerolog"
)

// ErrUnknownPreset is returned when a request names a preset that does not exist.
var ErrUnknownPreset = errors.New("unknown palette preset")

// maxSeed keeps generated seeds exactly representable as JSON numbers.
const maxSeed = 1 << 53

// Request describes one bundle generation. Empty fields are filled from
// the preset, then drawn from the random seed.
type Request struct {
	Style   string
	Color   string
	Palette string
	Seed    *int64
}

// Result is a generated bundle and how it was produced.
type Result struct {
	Bundle  *tokens.Bundle
	Seed    int64
	Cached  bool
	Elapsed time.Duration
}

// Service generates token bundles, consulting an optional cache.
type Service struct {
	cache  Cache
	logger zerolog.Logger
	seeder func() int64
}

// Option configures a Service.
type Option func(*Service)

// WithCache stores and reuses bundles in c.
func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithSeeder overrides how seeds are picked for requests without one.
func WithSeeder(fn func() int64) Option {
	return func(s *Service) { s.seeder = fn }
}

// NewService creates a Service.
func NewService(logger zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		logger: logger,
		seeder: func() int64 { return rand.Int64N(maxSeed) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate resolves the request and returns a bundle, from the cache when
// an identical request was seen before.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	style, color := req.Style, req.Color
	if req.Palette != "" {
		preset, ok := GetPreset(req.Palette)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, req.Palette)
		}
		if color == "" {
			color = preset.Seed
		}
		if style == "" {
			style = string(preset.Style)
		}
	}

	// Reject bad input before touching the cache
	if style != "" {
		parsed, err := tokens.ParseStyle(style)
		if err != nil {
			return nil, err
		}
		style = string(parsed)
	}
	if color != "" {
		parsed, err := tokens.ParseColor(color)
		if err != nil {
			return nil, err
		}
		color = parsed.Hex()
	}

	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		seed = s.seeder()
	}

	// The seed only matters for inputs that are drawn at random
	keySeed := seed
	if style != "" && color != "" {
		keySeed = 0
	}
	key := models.BundleKey(style, color, keySeed)

	if s.cache != nil {
		b, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("bundle cache read failed")
		} else if ok {
			elapsed := time.Since(start)
			s.logger.Debug().Str("key", key).Dur("elapsed", elapsed).Msg("bundle cache hit")
			return &Result{Bundle: b, Seed: seed, Cached: true, Elapsed: elapsed}, nil
		}
	}

	b, err := tokens.Synthesize(tokens.Options{
		Style:     style,
		SeedColor: color,
		Random:    tokens.NewRandomSource(seed),
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		err := s.cache.Put(ctx, CacheEntry{
			Key:        key,
			Style:      b.Style,
			SeedColor:  b.Seed.Hex(),
			RandomSeed: keySeed,
			Bundle:     b,
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("bundle cache write failed")
		}
	}

	elapsed := time.Since(start)
	s.logger.Debug().
		Str("style", string(b.Style)).
		Str("harmony", string(b.Harmony)).
		Str("seed_color", b.Seed.Hex()).
		Int64("seed", seed).
		Dur("elapsed", elapsed).
		Msg("synthesized design tokens")

	return &Result{Bundle: b, Seed: seed, Elapsed: elapsed}, nil
}
