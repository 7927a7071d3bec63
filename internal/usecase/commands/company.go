package commands

import (
	"context"

	"coupon-market/internal/domain/company"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/apperr"
	"coupon-market/internal/pkg/password"
	"coupon-market/internal/usecase/shared"
)

var (
	ErrCompanyIDRequired  = apperr.New(apperr.BadInput, "company id is required")
	ErrCompanyNameTaken   = apperr.New(apperr.NameAlreadyExists, "company name is already in use")
	ErrCompanyEmailTaken  = apperr.New(apperr.EmailAlreadyExists, "company email is already in use")
	ErrCompanyNotFoundCmd = apperr.New(apperr.NotFound, "company not found")
)

type CompanyCommands interface {
	Create(ctx context.Context, p company.Profile) (int64, error)
	Update(ctx context.Context, id int64, p company.Profile) error
	Remove(ctx context.Context, id int64) error
}

type companyUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCompanyUseCase(uow shared.UnitOfWork) CompanyCommands {
	return &companyUseCaseImpl{uow: uow}
}

func (uc *companyUseCaseImpl) Create(ctx context.Context, p company.Profile) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	hash, err := password.HashPassword(p.Password)
	if err != nil {
		return 0, err
	}
	c, err := company.New(p, hash)
	if err != nil {
		return 0, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Companies().ExistsByName(ctx, tx.DB(), c.Name())
		if derr != nil {
			return derr
		}
		if taken {
			return ErrCompanyNameTaken
		}

		taken, derr = tx.Companies().ExistsByEmail(ctx, tx.DB(), c.Email())
		if derr != nil {
			return derr
		}
		if taken {
			return ErrCompanyEmailTaken
		}

		createdID, derr = tx.Companies().Create(ctx, tx.DB(), c)
		return derr
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}

func (uc *companyUseCaseImpl) Update(ctx context.Context, id int64, p company.Profile) error {
	if id <= 0 {
		return ErrCompanyIDRequired
	}
	if err := p.Validate(); err != nil {
		return err
	}

	hash, err := password.HashPassword(p.Password)
	if err != nil {
		return err
	}
	c, err := company.New(p, hash)
	if err != nil {
		return err
	}
	c.WithID(id)

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Companies().ExistsByNameExcluding(ctx, tx.DB(), c.Name(), id)
		if derr != nil {
			return derr
		}
		if taken {
			return ErrCompanyNameTaken
		}

		taken, derr = tx.Companies().ExistsByEmailExcluding(ctx, tx.DB(), c.Email(), id)
		if derr != nil {
			return derr
		}
		if taken {
			return ErrCompanyEmailTaken
		}

		if derr = tx.Companies().Update(ctx, tx.DB(), c); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCompanyNotFoundCmd
			}
			return derr
		}
		return nil
	})
}

// Remove deletes a company together with its coupons and their purchase
// relations (store-level cascade).
func (uc *companyUseCaseImpl) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrCompanyIDRequired
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Companies().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCompanyNotFoundCmd
			}
			return err
		}
		return nil
	})
}
