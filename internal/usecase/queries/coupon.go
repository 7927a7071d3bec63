package queries

import (
	"context"
	"time"

	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/domain/validation"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/apperr"
)

var (
	ErrCouponNotFound  = apperr.New(apperr.NotFound, "coupon not found")
	ErrInvalidCouponID = apperr.New(apperr.InvalidParameter, "invalid coupon id")
)

type CouponReadStore interface {
	FindByID(ctx context.Context, id int64) (*CouponView, error)
	ListAll(ctx context.Context) ([]*CouponView, error)
	ListByType(ctx context.Context, couponType string) ([]*CouponView, error)
	ListByMaxPrice(ctx context.Context, maxPrice float64) ([]*CouponView, error)
	ListUpToEndDate(ctx context.Context, endDate time.Time) ([]*CouponView, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*CouponView, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*CouponView, error)
	ListNewest(ctx context.Context, limit int) ([]*CouponView, error)
}

type CouponQueries interface {
	GetByID(ctx context.Context, id int64) (*CouponView, error)
	ListAll(ctx context.Context) ([]*CouponView, error)
	ListByType(ctx context.Context, couponType string) ([]*CouponView, error)
	ListByMaxPrice(ctx context.Context, maxPrice float64) ([]*CouponView, error)
	ListUpToEndDate(ctx context.Context, endDate string) ([]*CouponView, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*CouponView, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*CouponView, error)
	ListNewest(ctx context.Context) ([]*CouponView, error)
}

type couponQueriesImpl struct {
	repo CouponReadStore
}

func NewCouponQueries(repo CouponReadStore) CouponQueries {
	return &couponQueriesImpl{repo: repo}
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id int64) (*CouponView, error) {
	if id <= 0 {
		return nil, ErrInvalidCouponID
	}
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *couponQueriesImpl) ListAll(ctx context.Context) ([]*CouponView, error) {
	return q.repo.ListAll(ctx)
}

func (q *couponQueriesImpl) ListByType(ctx context.Context, couponType string) ([]*CouponView, error) {
	if !coupon.Type(couponType).IsValid() {
		return nil, apperr.New(apperr.InvalidParameter, "invalid coupon type")
	}
	return q.repo.ListByType(ctx, couponType)
}

func (q *couponQueriesImpl) ListByMaxPrice(ctx context.Context, maxPrice float64) ([]*CouponView, error) {
	if !validation.ValidPrice(maxPrice) {
		return nil, apperr.New(apperr.InvalidParameter, "invalid max price")
	}
	return q.repo.ListByMaxPrice(ctx, maxPrice)
}

// ListUpToEndDate lists coupons whose validity ends on or before the given
// calendar date.
func (q *couponQueriesImpl) ListUpToEndDate(ctx context.Context, endDate string) ([]*CouponView, error) {
	cutoff, ok := validation.ParseDate(endDate)
	if !ok {
		return nil, apperr.New(apperr.InvalidParameter, "invalid end date")
	}
	return q.repo.ListUpToEndDate(ctx, cutoff)
}

func (q *couponQueriesImpl) ListByCompany(ctx context.Context, companyID int64) ([]*CouponView, error) {
	if companyID <= 0 {
		return nil, ErrInvalidCompanyID
	}
	return q.repo.ListByCompany(ctx, companyID)
}

func (q *couponQueriesImpl) ListByCustomer(ctx context.Context, customerID int64) ([]*CouponView, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	return q.repo.ListByCustomer(ctx, customerID)
}

func (q *couponQueriesImpl) ListNewest(ctx context.Context) ([]*CouponView, error) {
	return q.repo.ListNewest(ctx, NewestCouponCount)
}
