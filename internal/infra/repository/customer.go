package repository

import (
	"context"

	"coupon-market/internal/domain/customer"
	"coupon-market/internal/infra"
	"coupon-market/internal/infra/db"
	"coupon-market/internal/usecase/shared"
)

type customerRepository struct{}

func NewCustomerRepository() shared.CustomerRepository {
	return &customerRepository{}
}

func (r *customerRepository) Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (int64, error) {
	const query = `
		INSERT INTO customers (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	if err := tx.QueryRow(ctx, query, c.Name(), c.Email(), c.PasswordHash()).Scan(&id); err != nil {
		return 0, mapError("failed to create customer", err)
	}
	return id, nil
}

func (r *customerRepository) Update(ctx context.Context, tx db.DBTX, c *customer.Customer) error {
	const query = `
		UPDATE customers
		SET name = $2, email = $3, password_hash = $4
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, c.ID(), c.Name(), c.Email(), c.PasswordHash())
	if err != nil {
		return mapError("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return mapError("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *customerRepository) ExistsByName(ctx context.Context, tx db.DBTX, name string) (bool, error) {
	return r.exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM customers WHERE name = $1)`, name)
}

func (r *customerRepository) ExistsByEmail(ctx context.Context, tx db.DBTX, email string) (bool, error) {
	return r.exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1)`, email)
}

func (r *customerRepository) ExistsByNameExcluding(ctx context.Context, tx db.DBTX, name string, excludeID int64) (bool, error) {
	return r.exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM customers WHERE name = $1 AND id <> $2)`, name, excludeID)
}

func (r *customerRepository) ExistsByEmailExcluding(ctx context.Context, tx db.DBTX, email string, excludeID int64) (bool, error) {
	return r.exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1 AND id <> $2)`, email, excludeID)
}

func (r *customerRepository) FindCredentialsByEmail(ctx context.Context, tx db.DBTX, email string) (*shared.CredentialsSnapshot, error) {
	const query = `
		SELECT id, name, email, password_hash
		FROM customers
		WHERE email = $1`

	var s shared.CredentialsSnapshot
	if err := tx.QueryRow(ctx, query, email).Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash); err != nil {
		return nil, mapError("failed to find customer credentials", err)
	}
	return &s, nil
}

func (r *customerRepository) exists(ctx context.Context, tx db.DBTX, query string, args ...any) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, mapError("failed to check customer existence", err)
	}
	return exists, nil
}
