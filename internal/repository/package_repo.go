package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parceldesk/internal/model"
)

type PackageRepository struct {
	pool *pgxpool.Pool
}

func NewPackageRepository(pool *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{pool: pool}
}

func (r *PackageRepository) Insert(ctx context.Context, pkg *model.Package) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO packages (name, weight, type_id, content_value_usd, session_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		pkg.Name, pkg.Weight, pkg.TypeID, pkg.ContentValueUSD, pkg.SessionID,
	).Scan(&pkg.ID, &pkg.CreatedAt)
}

func (r *PackageRepository) FindByID(ctx context.Context, id int64, sessionID string) (*model.Package, error) {
	pkg := &model.Package{}
	err := r.pool.QueryRow(ctx,
		`SELECT p.id, p.name, p.weight, p.type_id, t.name, p.content_value_usd, p.delivery_cost, p.session_id, p.created_at
		FROM packages p
		JOIN package_types t ON t.id = p.type_id
		WHERE p.id = $1 AND p.session_id = $2`, id, sessionID).
		Scan(&pkg.ID, &pkg.Name, &pkg.Weight, &pkg.TypeID, &pkg.TypeName,
			&pkg.ContentValueUSD, &pkg.DeliveryCost, &pkg.SessionID, &pkg.CreatedAt)
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

func (r *PackageRepository) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]model.Package, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.name, p.weight, p.type_id, t.name, p.content_value_usd, p.delivery_cost, p.session_id, p.created_at
		FROM packages p
		JOIN package_types t ON t.id = p.type_id
		WHERE p.session_id = $1
		ORDER BY p.id
		LIMIT $2 OFFSET $3`, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPackages(rows)
}

func (r *PackageRepository) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM packages WHERE session_id = $1`, sessionID).Scan(&count)
	return count, err
}

// ListAll feeds the pricing sweep; no session scoping.
func (r *PackageRepository) ListAll(ctx context.Context) ([]model.Package, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.name, p.weight, p.type_id, t.name, p.content_value_usd, p.delivery_cost, p.session_id, p.created_at
		FROM packages p
		JOIN package_types t ON t.id = p.type_id
		ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPackages(rows)
}

// UpdateDeliveryCost overwrites the one mutable column. A single UPDATE runs
// in its own transaction, so a partial write cannot be observed.
func (r *PackageRepository) UpdateDeliveryCost(ctx context.Context, id int64, cost *float64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE packages SET delivery_cost = $2 WHERE id = $1`, id, cost)
	return err
}

func scanPackages(rows pgx.Rows) ([]model.Package, error) {
	var pkgs []model.Package
	for rows.Next() {
		var pkg model.Package
		if err := rows.Scan(&pkg.ID, &pkg.Name, &pkg.Weight, &pkg.TypeID, &pkg.TypeName,
			&pkg.ContentValueUSD, &pkg.DeliveryCost, &pkg.SessionID, &pkg.CreatedAt); err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, rows.Err()
}
