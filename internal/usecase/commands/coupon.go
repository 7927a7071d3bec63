package commands

import (
	"context"

	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/domain/validation"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/apperr"
	"coupon-market/internal/pkg/clock"
	"coupon-market/internal/usecase/shared"
)

var (
	ErrCouponIDRequired   = apperr.New(apperr.BadInput, "coupon id is required")
	ErrPurchaseIDRequired = apperr.New(apperr.BadInput, "customer id and coupon id are required")
	ErrCouponTitleTaken   = apperr.New(apperr.NameAlreadyExists, "coupon title is already in use")
	ErrCouponNotFoundCmd  = apperr.New(apperr.NotFound, "coupon not found")
	ErrOutOfStock         = apperr.New(apperr.GeneralError, "coupon is out of stock")
	ErrAlreadyPurchased   = apperr.New(apperr.GeneralError, "coupon already purchased by this customer")
)

type CouponCommands interface {
	Create(ctx context.Context, d coupon.Draft) (int64, error)
	Update(ctx context.Context, id int64, d coupon.Draft) error
	Remove(ctx context.Context, id int64) error
	Buy(ctx context.Context, customerID, couponID int64) error
	CancelPurchase(ctx context.Context, couponID, customerID int64) error
	SweepExpired(ctx context.Context) (int64, error)
}

type couponUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponUseCase(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponUseCaseImpl{uow: uow, clock: clk}
}

func (uc *couponUseCaseImpl) Create(ctx context.Context, d coupon.Draft) (int64, error) {
	c, err := coupon.New(d, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Coupons().ExistsByTitle(ctx, tx.DB(), c.Title())
		if derr != nil {
			return derr
		}
		if taken {
			return ErrCouponTitleTaken
		}

		createdID, derr = tx.Coupons().Create(ctx, tx.DB(), c)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrCompanyNotFoundCmd
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}

func (uc *couponUseCaseImpl) Update(ctx context.Context, id int64, d coupon.Draft) error {
	if id <= 0 {
		return ErrCouponIDRequired
	}
	c, err := coupon.New(d, uc.clock.Now())
	if err != nil {
		return err
	}
	c.WithID(id)

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Coupons().ExistsByTitleExcluding(ctx, tx.DB(), c.Title(), id)
		if derr != nil {
			return derr
		}
		if taken {
			return ErrCouponTitleTaken
		}

		if derr = tx.Coupons().Update(ctx, tx.DB(), c); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCouponNotFoundCmd
			}
			return derr
		}
		return nil
	})
}

func (uc *couponUseCaseImpl) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrCouponIDRequired
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Coupons().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFoundCmd
			}
			return err
		}
		return nil
	})
}

// Buy inserts the purchase relation and decrements stock as one atomic unit.
// The coupon row is locked first so concurrent buys serialize on it and the
// counter can never go below zero.
func (uc *couponUseCaseImpl) Buy(ctx context.Context, customerID, couponID int64) error {
	if customerID <= 0 || couponID <= 0 {
		return ErrPurchaseIDRequired
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Coupons().FindForUpdate(ctx, tx.DB(), couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFoundCmd
			}
			return err
		}
		if snap.Amount <= 0 {
			return ErrOutOfStock
		}

		purchased, err := tx.Purchases().Exists(ctx, tx.DB(), customerID, couponID)
		if err != nil {
			return err
		}
		if purchased {
			return ErrAlreadyPurchased
		}

		if err := tx.Purchases().Insert(ctx, tx.DB(), customerID, couponID); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrCustomerNotFoundCmd
			}
			return err
		}
		return tx.Coupons().AdjustAmount(ctx, tx.DB(), couponID, -1)
	})
}

// CancelPurchase is idempotent: the counter is restored only when a relation
// row was actually deleted, so a stray cancel never inflates stock.
func (uc *couponUseCaseImpl) CancelPurchase(ctx context.Context, couponID, customerID int64) error {
	if customerID <= 0 || couponID <= 0 {
		return ErrPurchaseIDRequired
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, err := tx.Purchases().Delete(ctx, tx.DB(), customerID, couponID)
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}
		return tx.Coupons().AdjustAmount(ctx, tx.DB(), couponID, 1)
	})
}

// SweepExpired removes every coupon whose validity ended on or before the
// current date and reports how many rows went away.
func (uc *couponUseCaseImpl) SweepExpired(ctx context.Context) (int64, error) {
	cutoff := validation.Truncate(uc.clock.Now())

	var removed int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Coupons().DeleteExpired(ctx, tx.DB(), cutoff)
		if derr != nil {
			return derr
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
