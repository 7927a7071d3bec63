package commands

import (
	"context"

	"coupon-market/internal/domain/customer"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/apperr"
	"coupon-market/internal/pkg/password"
	"coupon-market/internal/usecase/shared"
)

var (
	ErrCustomerIDRequired  = apperr.New(apperr.BadInput, "customer id is required")
	ErrCustomerNameTaken   = apperr.New(apperr.NameAlreadyExists, "customer name is already in use")
	ErrCustomerEmailTaken  = apperr.New(apperr.EmailAlreadyExists, "customer email is already in use")
	ErrCustomerNotFoundCmd = apperr.New(apperr.NotFound, "customer not found")
)

type CustomerCommands interface {
	Create(ctx context.Context, p customer.Profile) (int64, error)
	Update(ctx context.Context, id int64, p customer.Profile) error
	Remove(ctx context.Context, id int64) error
}

type customerUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCustomerUseCase(uow shared.UnitOfWork) CustomerCommands {
	return &customerUseCaseImpl{uow: uow}
}

func (uc *customerUseCaseImpl) Create(ctx context.Context, p customer.Profile) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	hash, err := password.HashPassword(p.Password)
	if err != nil {
		return 0, err
	}
	c, err := customer.New(p, hash)
	if err != nil {
		return 0, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Customers().ExistsByName(ctx, tx.DB(), c.Name())
		if derr != nil {
			return derr
		}
		if taken {
			return ErrCustomerNameTaken
		}

		taken, derr = tx.Customers().ExistsByEmail(ctx, tx.DB(), c.Email())
		if derr != nil {
			return derr
		}
		if taken {
			return ErrCustomerEmailTaken
		}

		createdID, derr = tx.Customers().Create(ctx, tx.DB(), c)
		return derr
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}

func (uc *customerUseCaseImpl) Update(ctx context.Context, id int64, p customer.Profile) error {
	if id <= 0 {
		return ErrCustomerIDRequired
	}
	if err := p.Validate(); err != nil {
		return err
	}

	hash, err := password.HashPassword(p.Password)
	if err != nil {
		return err
	}
	c, err := customer.New(p, hash)
	if err != nil {
		return err
	}
	c.WithID(id)

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Customers().ExistsByNameExcluding(ctx, tx.DB(), c.Name(), id)
		if derr != nil {
			return derr
		}
		if taken {
			return ErrCustomerNameTaken
		}

		taken, derr = tx.Customers().ExistsByEmailExcluding(ctx, tx.DB(), c.Email(), id)
		if derr != nil {
			return derr
		}
		if taken {
			return ErrCustomerEmailTaken
		}

		if derr = tx.Customers().Update(ctx, tx.DB(), c); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCustomerNotFoundCmd
			}
			return derr
		}
		return nil
	})
}

// Remove deletes a customer; the store cascades the purchase relations so
// inventory counters are left untouched, matching an account closure.
func (uc *customerUseCaseImpl) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrCustomerIDRequired
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFoundCmd
			}
			return err
		}
		return nil
	})
}
