package queries

import (
	"context"

	"coupon-market/internal/domain/validation"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/apperr"
)

var (
	ErrCompanyNotFound  = apperr.New(apperr.NotFound, "company not found")
	ErrInvalidCompanyID = apperr.New(apperr.InvalidParameter, "invalid company id")
)

type CompanyReadStore interface {
	FindByID(ctx context.Context, id int64) (*CompanyView, error)
	FindByName(ctx context.Context, name string) (*CompanyView, error)
	FindByEmail(ctx context.Context, email string) (*CompanyView, error)
	ListAll(ctx context.Context) ([]*CompanyView, error)
}

type CompanyQueries interface {
	GetByID(ctx context.Context, id int64) (*CompanyView, error)
	GetByName(ctx context.Context, name string) (*CompanyView, error)
	GetByEmail(ctx context.Context, email string) (*CompanyView, error)
	ListAll(ctx context.Context) ([]*CompanyView, error)
}

type companyQueriesImpl struct {
	repo CompanyReadStore
}

func NewCompanyQueries(repo CompanyReadStore) CompanyQueries {
	return &companyQueriesImpl{repo: repo}
}

func (q *companyQueriesImpl) GetByID(ctx context.Context, id int64) (*CompanyView, error) {
	if id <= 0 {
		return nil, ErrInvalidCompanyID
	}
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *companyQueriesImpl) GetByName(ctx context.Context, name string) (*CompanyView, error) {
	if !validation.ValidName(name) {
		return nil, apperr.New(apperr.InvalidParameter, "invalid company name")
	}
	view, err := q.repo.FindByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *companyQueriesImpl) GetByEmail(ctx context.Context, email string) (*CompanyView, error) {
	if !validation.ValidEmail(email) {
		return nil, apperr.New(apperr.InvalidParameter, "invalid company email")
	}
	view, err := q.repo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *companyQueriesImpl) ListAll(ctx context.Context) ([]*CompanyView, error) {
	return q.repo.ListAll(ctx)
}
