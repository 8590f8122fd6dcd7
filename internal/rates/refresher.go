package rates

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"parceldesk/internal/model"
)

const refreshHourUTC = 9

type Fetcher interface {
	Fetch(ctx context.Context) (model.ExchangeRate, error)
}

type Store interface {
	Put(ctx context.Context, rate model.ExchangeRate) error
}

// Refresher keeps the rate cache populated: one fetch on startup, then one
// every weekday at 09:00 UTC. Fetch or store failures are logged and left to
// the next scheduled run; only cancellation stops the loop.
type Refresher struct {
	client Fetcher
	cache  Store
	now    func() time.Time
	log    zerolog.Logger
}

func NewRefresher(client Fetcher, cache Store) *Refresher {
	return &Refresher{
		client: client,
		cache:  cache,
		now:    time.Now,
		log:    log.With().Str("task", "rate_refresh").Logger(),
	}
}

// Run blocks until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) error {
	r.log.Info().Msg("rate refresh task started")

	r.refresh(ctx)

	for {
		next := nextRefresh(r.now().UTC())
		r.log.Info().Time("next_run", next).Msg("sleeping until next rate refresh")

		if err := sleepUntil(ctx, next, r.now); err != nil {
			r.log.Info().Msg("rate refresh task stopped")
			return err
		}
		r.step(ctx, next)
	}
}

// step handles one scheduled wake for the given slot.
func (r *Refresher) step(ctx context.Context, scheduled time.Time) {
	if !isWeekday(scheduled) {
		r.log.Info().Str("day", scheduled.Weekday().String()).Msg("skipping rate refresh on weekend")
		return
	}
	r.refresh(ctx)
}

// RunOnce is the manual trigger path: a single fetch-and-store attempt.
// Failures are logged and swallowed; the daily schedule self-heals.
func (r *Refresher) RunOnce(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.refresh(ctx)
	return nil
}

func (r *Refresher) refresh(ctx context.Context) {
	rate, err := r.client.Fetch(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("usd rate fetch failed")
		return
	}

	if err := r.cache.Put(ctx, rate); err != nil {
		r.log.Error().Err(err).Msg("usd rate store failed")
		return
	}

	r.log.Info().
		Float64("rate", rate.Value).
		Str("date", rate.Date.Format(dayFormat)).
		Msg("usd rate updated")
}

// nextRefresh returns the next 09:00 UTC strictly after now.
func nextRefresh(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), refreshHourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func sleepUntil(ctx context.Context, t time.Time, now func() time.Time) error {
	d := t.Sub(now())
	if d < 0 {
		d = 0
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
