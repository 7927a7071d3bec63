package readstore

import (
	"context"
	"errors"
	"time"

	"coupon-market/internal/infra"
	"coupon-market/internal/infra/db"
	"coupon-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const couponColumns = `id, company_id, title, type, start_date, end_date, price, amount, message, created_at`

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id int64) (*queries.CouponView, error) {
	var v queries.CouponView
	err := r.db.QueryRow(ctx, `SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id).Scan(
		&v.ID, &v.CompanyID, &v.Title, &v.Type,
		&v.StartDate, &v.EndDate, &v.Price, &v.Amount, &v.Message, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coupon view", err)
	}
	return &v, nil
}

func (r *CouponReadStore) ListAll(ctx context.Context) ([]*queries.CouponView, error) {
	return r.list(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY id`)
}

func (r *CouponReadStore) ListByType(ctx context.Context, couponType string) ([]*queries.CouponView, error) {
	return r.list(ctx, `SELECT `+couponColumns+` FROM coupons WHERE type = $1 ORDER BY id`, couponType)
}

func (r *CouponReadStore) ListByMaxPrice(ctx context.Context, maxPrice float64) ([]*queries.CouponView, error) {
	return r.list(ctx, `SELECT `+couponColumns+` FROM coupons WHERE price <= $1 ORDER BY price`, maxPrice)
}

func (r *CouponReadStore) ListUpToEndDate(ctx context.Context, endDate time.Time) ([]*queries.CouponView, error) {
	return r.list(ctx, `SELECT `+couponColumns+` FROM coupons WHERE end_date <= $1 ORDER BY end_date`, endDate)
}

func (r *CouponReadStore) ListByCompany(ctx context.Context, companyID int64) ([]*queries.CouponView, error) {
	return r.list(ctx, `SELECT `+couponColumns+` FROM coupons WHERE company_id = $1 ORDER BY id`, companyID)
}

func (r *CouponReadStore) ListByCustomer(ctx context.Context, customerID int64) ([]*queries.CouponView, error) {
	const query = `
		SELECT c.id, c.company_id, c.title, c.type, c.start_date, c.end_date, c.price, c.amount, c.message, c.created_at
		FROM coupons c
		JOIN purchases p ON p.coupon_id = c.id
		WHERE p.customer_id = $1
		ORDER BY c.id`
	return r.list(ctx, query, customerID)
}

func (r *CouponReadStore) ListNewest(ctx context.Context, limit int) ([]*queries.CouponView, error) {
	return r.list(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
}

func (r *CouponReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.CouponView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var result []*queries.CouponView
	for rows.Next() {
		var v queries.CouponView
		err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Title, &v.Type,
			&v.StartDate, &v.EndDate, &v.Price, &v.Amount, &v.Message, &v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}
	return result, nil
}
