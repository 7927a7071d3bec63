package readstore

import (
	"context"
	"errors"

	"coupon-market/internal/infra"
	"coupon-market/internal/infra/db"
	"coupon-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type CompanyReadStore struct {
	db db.DBTX
}

func NewCompanyReadStore(dbtx db.DBTX) *CompanyReadStore {
	return &CompanyReadStore{db: dbtx}
}

func (r *CompanyReadStore) FindByID(ctx context.Context, id int64) (*queries.CompanyView, error) {
	return r.findOne(ctx, `SELECT id, name, email FROM companies WHERE id = $1`, id)
}

func (r *CompanyReadStore) FindByName(ctx context.Context, name string) (*queries.CompanyView, error) {
	return r.findOne(ctx, `SELECT id, name, email FROM companies WHERE name = $1`, name)
}

func (r *CompanyReadStore) FindByEmail(ctx context.Context, email string) (*queries.CompanyView, error) {
	return r.findOne(ctx, `SELECT id, name, email FROM companies WHERE email = $1`, email)
}

func (r *CompanyReadStore) ListAll(ctx context.Context) ([]*queries.CompanyView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email FROM companies ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list companies", err)
	}
	defer rows.Close()

	var result []*queries.CompanyView
	for rows.Next() {
		var v queries.CompanyView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan company row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate company rows", err)
	}
	return result, nil
}

func (r *CompanyReadStore) findOne(ctx context.Context, query string, arg any) (*queries.CompanyView, error) {
	var v queries.CompanyView
	if err := r.db.QueryRow(ctx, query, arg).Scan(&v.ID, &v.Name, &v.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get company view", err)
	}
	return &v, nil
}
