package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"parceldesk/internal/model"
)

type PackageTypeRepository struct {
	pool *pgxpool.Pool
}

func NewPackageTypeRepository(pool *pgxpool.Pool) *PackageTypeRepository {
	return &PackageTypeRepository{pool: pool}
}

func (r *PackageTypeRepository) List(ctx context.Context) ([]model.PackageType, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM package_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []model.PackageType
	for rows.Next() {
		var t model.PackageType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PackageTypeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM package_types WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
