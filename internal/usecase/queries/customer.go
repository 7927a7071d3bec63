package queries

import (
	"context"

	"coupon-market/internal/domain/validation"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/apperr"
)

var (
	ErrCustomerNotFound  = apperr.New(apperr.NotFound, "customer not found")
	ErrInvalidCustomerID = apperr.New(apperr.InvalidParameter, "invalid customer id")
)

type CustomerReadStore interface {
	FindByID(ctx context.Context, id int64) (*CustomerView, error)
	FindByEmail(ctx context.Context, email string) (*CustomerView, error)
	ListAll(ctx context.Context) ([]*CustomerView, error)
}

type CustomerQueries interface {
	GetByID(ctx context.Context, id int64) (*CustomerView, error)
	GetByEmail(ctx context.Context, email string) (*CustomerView, error)
	ListAll(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	repo CustomerReadStore
}

func NewCustomerQueries(repo CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id int64) (*CustomerView, error) {
	if id <= 0 {
		return nil, ErrInvalidCustomerID
	}
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *customerQueriesImpl) GetByEmail(ctx context.Context, email string) (*CustomerView, error) {
	if !validation.ValidEmail(email) {
		return nil, apperr.New(apperr.InvalidParameter, "invalid customer email")
	}
	view, err := q.repo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *customerQueriesImpl) ListAll(ctx context.Context) ([]*CustomerView, error) {
	return q.repo.ListAll(ctx)
}
