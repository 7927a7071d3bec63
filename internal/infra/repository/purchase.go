package repository

import (
	"context"

	"coupon-market/internal/infra/db"
	"coupon-market/internal/usecase/shared"
)

type purchaseRepository struct{}

func NewPurchaseRepository() shared.PurchaseRepository {
	return &purchaseRepository{}
}

func (r *purchaseRepository) Insert(ctx context.Context, tx db.DBTX, customerID, couponID int64) error {
	const query = `
		INSERT INTO purchases (customer_id, coupon_id)
		VALUES ($1, $2)`

	if _, err := tx.Exec(ctx, query, customerID, couponID); err != nil {
		return mapError("failed to insert purchase", err)
	}
	return nil
}

func (r *purchaseRepository) Delete(ctx context.Context, tx db.DBTX, customerID, couponID int64) (bool, error) {
	const query = `
		DELETE FROM purchases
		WHERE customer_id = $1 AND coupon_id = $2`

	tag, err := tx.Exec(ctx, query, customerID, couponID)
	if err != nil {
		return false, mapError("failed to delete purchase", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *purchaseRepository) Exists(ctx context.Context, tx db.DBTX, customerID, couponID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM purchases WHERE customer_id = $1 AND coupon_id = $2)`

	var exists bool
	if err := tx.QueryRow(ctx, query, customerID, couponID).Scan(&exists); err != nil {
		return false, mapError("failed to check purchase existence", err)
	}
	return exists, nil
}
