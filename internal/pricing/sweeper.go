package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"parceldesk/internal/model"
	"parceldesk/internal/rates"
)

const (
	cycleInterval = 300 * time.Second
	retryInterval = 20 * time.Second
)

type RateSource interface {
	Current(ctx context.Context, today time.Time) (float64, error)
}

type PackageStore interface {
	ListAll(ctx context.Context) ([]model.Package, error)
	UpdateDeliveryCost(ctx context.Context, id int64, cost *float64) error
}

// Sweeper recomputes every stored package's delivery cost from the latest
// cached rate. A failed row update is logged and the pass continues; a
// failure that aborts the whole pass puts the loop on a short retry timer.
type Sweeper struct {
	rates RateSource
	store PackageStore
	now   func() time.Time

	cycleInterval time.Duration
	retryInterval time.Duration

	log zerolog.Logger
}

func NewSweeper(rateSource RateSource, store PackageStore) *Sweeper {
	return &Sweeper{
		rates:         rateSource,
		store:         store,
		now:           time.Now,
		cycleInterval: cycleInterval,
		retryInterval: retryInterval,
		log:           log.With().Str("task", "pricing_sweep").Logger(),
	}
}

// Run blocks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	s.log.Info().Msg("pricing sweep task started")

	for {
		wait := s.cycleInterval
		if err := s.sweep(ctx); err != nil {
			if ctx.Err() != nil {
				s.log.Info().Msg("pricing sweep task stopped")
				return ctx.Err()
			}
			s.log.Error().Err(err).Dur("retry_in", s.retryInterval).Msg("pricing sweep aborted")
			wait = s.retryInterval
		}

		if err := sleep(ctx, wait); err != nil {
			s.log.Info().Msg("pricing sweep task stopped")
			return err
		}
	}
}

// RunOnce is the manual trigger path: a single pass, best-effort. An aborted
// pass is logged, not propagated; scheduled sweeps pick up the slack.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.sweep(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log.Error().Err(err).Msg("on-demand pricing sweep aborted")
	}
	return nil
}

func (s *Sweeper) sweep(ctx context.Context) error {
	var rate *float64
	switch r, err := s.rates.Current(ctx, s.now().UTC()); {
	case err == nil:
		rate = &r
	case errors.Is(err, rates.ErrNoRate):
		s.log.Warn().Msg("no usd rate available, packages stay unpriced")
	default:
		s.log.Error().Err(err).Msg("usd rate lookup failed, treating as no rate")
	}

	pkgs, err := s.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}

	updated, failed := 0, 0
	for _, pkg := range pkgs {
		cost := DeliveryCost(pkg.Weight, pkg.ContentValueUSD, rate)
		if err := s.store.UpdateDeliveryCost(ctx, pkg.ID, cost); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failed++
			s.log.Error().Err(err).Int64("package_id", pkg.ID).Msg("delivery cost update failed")
			continue
		}
		updated++
	}

	event := s.log.Info().Int("updated", updated).Int("failed", failed)
	if rate != nil {
		event = event.Float64("rate", *rate)
	}
	event.Msg("pricing sweep completed")
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
