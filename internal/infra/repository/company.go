package repository

import (
	"context"

	"coupon-market/internal/domain/company"
	"coupon-market/internal/infra"
	"coupon-market/internal/infra/db"
	"coupon-market/internal/usecase/shared"
)

type companyRepository struct{}

func NewCompanyRepository() shared.CompanyRepository {
	return &companyRepository{}
}

func (r *companyRepository) Create(ctx context.Context, tx db.DBTX, c *company.Company) (int64, error) {
	const query = `
		INSERT INTO companies (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	if err := tx.QueryRow(ctx, query, c.Name(), c.Email(), c.PasswordHash()).Scan(&id); err != nil {
		return 0, mapError("failed to create company", err)
	}
	return id, nil
}

func (r *companyRepository) Update(ctx context.Context, tx db.DBTX, c *company.Company) error {
	const query = `
		UPDATE companies
		SET name = $2, email = $3, password_hash = $4
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, c.ID(), c.Name(), c.Email(), c.PasswordHash())
	if err != nil {
		return mapError("failed to update company", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("company not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *companyRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return mapError("failed to delete company", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("company not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *companyRepository) ExistsByName(ctx context.Context, tx db.DBTX, name string) (bool, error) {
	return r.exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM companies WHERE name = $1)`, name)
}

func (r *companyRepository) ExistsByEmail(ctx context.Context, tx db.DBTX, email string) (bool, error) {
	return r.exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM companies WHERE email = $1)`, email)
}

func (r *companyRepository) ExistsByNameExcluding(ctx context.Context, tx db.DBTX, name string, excludeID int64) (bool, error) {
	return r.exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM companies WHERE name = $1 AND id <> $2)`, name, excludeID)
}

func (r *companyRepository) ExistsByEmailExcluding(ctx context.Context, tx db.DBTX, email string, excludeID int64) (bool, error) {
	return r.exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM companies WHERE email = $1 AND id <> $2)`, email, excludeID)
}

func (r *companyRepository) FindCredentialsByName(ctx context.Context, tx db.DBTX, name string) (*shared.CredentialsSnapshot, error) {
	const query = `
		SELECT id, name, email, password_hash
		FROM companies
		WHERE name = $1`

	var s shared.CredentialsSnapshot
	if err := tx.QueryRow(ctx, query, name).Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash); err != nil {
		return nil, mapError("failed to find company credentials", err)
	}
	return &s, nil
}

func (r *companyRepository) exists(ctx context.Context, tx db.DBTX, query string, args ...any) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, mapError("failed to check company existence", err)
	}
	return exists, nil
}
