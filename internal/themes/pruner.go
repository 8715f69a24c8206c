// SPDX-License-Identifier: MIT
package themes

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Pruner removes entries older than a cutoff.
type Pruner interface {
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
}

// PruneScheduler periodically evicts cached bundles older than TTL.
type PruneScheduler struct {
	target   Pruner
	logger   zerolog.Logger
	TTL      time.Duration
	Interval time.Duration
	now      func() time.Time

	done     chan bool
	stopChan chan bool
}

// NewPruneScheduler creates a scheduler that runs every interval.
func NewPruneScheduler(target Pruner, logger zerolog.Logger, ttl, interval time.Duration) *PruneScheduler {
	return &PruneScheduler{
		target:   target,
		logger:   logger,
		TTL:      ttl,
		Interval: interval,
		now:      time.Now,
		done:     make(chan bool, 1),
		stopChan: make(chan bool, 1),
	}
}

// Start runs one prune immediately and then one per interval in a goroutine.
// The returned channel receives once the scheduler has stopped.
func (s *PruneScheduler) Start() chan bool {
	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		s.runPrune()

		for {
			select {
			case <-s.stopChan:
				s.done <- true
				return
			case <-ticker.C:
				s.runPrune()
			}
		}
	}()

	return s.done
}

// Stop stops the scheduler. Calling it more than once is harmless.
func (s *PruneScheduler) Stop() {
	select {
	case s.stopChan <- true:
	default:
	}
}

func (s *PruneScheduler) runPrune() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.target.Prune(ctx, s.now().Add(-s.TTL))
	if err != nil {
		s.logger.Warn().Err(err).Msg("cache prune failed")
		return
	}
	if n > 0 {
		s.logger.Info().Int64("removed", n).Dur("ttl", s.TTL).Msg("pruned cached bundles")
	}
}
