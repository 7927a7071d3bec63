package readstore

import (
	"context"
	"errors"

	"coupon-market/internal/infra"
	"coupon-market/internal/infra/db"
	"coupon-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id int64) (*queries.CustomerView, error) {
	return r.findOne(ctx, `SELECT id, name, email FROM customers WHERE id = $1`, id)
}

func (r *CustomerReadStore) FindByEmail(ctx context.Context, email string) (*queries.CustomerView, error) {
	return r.findOne(ctx, `SELECT id, name, email FROM customers WHERE email = $1`, email)
}

func (r *CustomerReadStore) ListAll(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email FROM customers ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var result []*queries.CustomerView
	for rows.Next() {
		var v queries.CustomerView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}
	return result, nil
}

func (r *CustomerReadStore) findOne(ctx context.Context, query string, arg any) (*queries.CustomerView, error) {
	var v queries.CustomerView
	if err := r.db.QueryRow(ctx, query, arg).Scan(&v.ID, &v.Name, &v.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer view", err)
	}
	return &v, nil
}
