package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

var packageTypes = []string{"clothes", "electronics", "other"}

// SeedData inserts the package-type catalog. Re-running is a no-op.
func SeedData(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM package_types`).Scan(&count); err != nil {
		return fmt.Errorf("count package types: %w", err)
	}
	if count > 0 {
		log.Info().Int("count", count).Msg("package types already seeded")
		return nil
	}

	for _, name := range packageTypes {
		if _, err := pool.Exec(ctx,
			`INSERT INTO package_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return fmt.Errorf("seed package type %q: %w", name, err)
		}
	}

	log.Info().Int("count", len(packageTypes)).Msg("package types seeded")
	return nil
}
