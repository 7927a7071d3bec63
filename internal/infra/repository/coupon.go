package repository

import (
	"context"
	"time"

	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/infra"
	"coupon-market/internal/infra/db"
	"coupon-market/internal/usecase/shared"
)

type couponRepository struct{}

func NewCouponRepository() shared.CouponRepository {
	return &couponRepository{}
}

func (r *couponRepository) Create(ctx context.Context, tx db.DBTX, c *coupon.Coupon) (int64, error) {
	const query = `
		INSERT INTO coupons (company_id, title, type, start_date, end_date, price, amount, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query,
		c.CompanyID(), c.Title(), c.Type().String(),
		c.StartDate(), c.EndDate(), c.Price(), c.Amount(), c.Message(), c.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, mapError("failed to create coupon", err)
	}
	return id, nil
}

func (r *couponRepository) Update(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error {
	const query = `
		UPDATE coupons
		SET title = $2, type = $3, start_date = $4, end_date = $5, price = $6, amount = $7, message = $8
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		c.ID(), c.Title(), c.Type().String(),
		c.StartDate(), c.EndDate(), c.Price(), c.Amount(), c.Message(),
	)
	if err != nil {
		return mapError("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *couponRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return mapError("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *couponRepository) ExistsByTitle(ctx context.Context, tx db.DBTX, title string) (bool, error) {
	return r.exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM coupons WHERE title = $1)`, title)
}

func (r *couponRepository) ExistsByTitleExcluding(ctx context.Context, tx db.DBTX, title string, excludeID int64) (bool, error) {
	return r.exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM coupons WHERE title = $1 AND id <> $2)`, title, excludeID)
}

func (r *couponRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id int64) (*shared.CouponSnapshot, error) {
	const query = `
		SELECT id, company_id, title, type, start_date, end_date, price, amount
		FROM coupons
		WHERE id = $1
		FOR UPDATE`

	var s shared.CouponSnapshot
	err := tx.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CompanyID, &s.Title, &s.Type,
		&s.StartDate, &s.EndDate, &s.Price, &s.Amount,
	)
	if err != nil {
		return nil, mapError("failed to lock coupon", err)
	}
	return &s, nil
}

func (r *couponRepository) AdjustAmount(ctx context.Context, tx db.DBTX, id int64, delta int) error {
	const query = `
		UPDATE coupons
		SET amount = amount + $2
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, delta)
	if err != nil {
		return mapError("failed to adjust coupon amount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *couponRepository) DeleteExpired(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM coupons WHERE end_date <= $1`, cutoff)
	if err != nil {
		return 0, mapError("failed to delete expired coupons", err)
	}
	return tag.RowsAffected(), nil
}

func (r *couponRepository) exists(ctx context.Context, tx db.DBTX, query string, args ...any) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, mapError("failed to check coupon existence", err)
	}
	return exists, nil
}
