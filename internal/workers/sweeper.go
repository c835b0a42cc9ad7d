// Package workers holds the server's background jobs.
package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/store"
)

// UploadSweeper removes stored uploads that no History record references.
//
// Upload writes the file before the record, so a crash in between leaves an
// orphan. Files younger than OrphanTTL are never touched: they may belong to
// an upload that is still in flight.
type UploadSweeper struct {
	files     store.FileStorage
	histories store.HistoryRepository

	interval time.Duration
	ttl      time.Duration
	now      func() time.Time

	logger *logger.Logger
}

var _ Worker = (*UploadSweeper)(nil)

func NewUploadSweeper(files store.FileStorage, histories store.HistoryRepository, cfg config.Workers, logger *logger.Logger) *UploadSweeper {
	return &UploadSweeper{
		files:     files,
		histories: histories,
		interval:  cfg.SweepInterval,
		ttl:       cfg.OrphanTTL,
		now:       time.Now,
		logger:    logger,
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
func (s *UploadSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Dur("ttl", s.ttl).Msg("upload sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.Sweep(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Err(err).Str("func", "*UploadSweeper.Run").Msg("sweep failed")
		}

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("upload sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

// Sweep removes every unreferenced upload older than the TTL and returns how
// many files were deleted.
func (s *UploadSweeper) Sweep(ctx context.Context) (int, error) {
	files, err := s.files.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-s.ttl)
	candidates := make([]string, 0, len(files))
	for _, f := range files {
		if f.ModTime.Before(cutoff) {
			candidates = append(candidates, f.Name)
		}
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	referenced, err := s.histories.ReferencedStoredNames(ctx, candidates)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, name := range candidates {
		if _, ok := referenced[name]; ok {
			continue
		}
		if err = s.files.Remove(ctx, name); err != nil && !errors.Is(err, store.ErrFileNotFound) {
			s.logger.Err(err).Str("func", "*UploadSweeper.Sweep").Str("stored_name", name).Msg("error removing orphan")
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("orphaned uploads removed")
	}
	return removed, nil
}
