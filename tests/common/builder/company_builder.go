//go:build unit || e2e

package builder

import (
	domcompany "coupon-market/internal/domain/company"
	reqdto "coupon-market/internal/handler/dto/request"
	"coupon-market/internal/usecase/queries"
	"coupon-market/internal/usecase/shared"
)

type CompanyBuilder struct {
	ID           int64
	Name         string
	Email        string
	Password     string
	PasswordHash string
}

func NewCompanyBuilder() *CompanyBuilder {
	return &CompanyBuilder{
		ID:           1,
		Name:         "Acme Retail",
		Email:        "contact@acme.example.com",
		Password:     "s3cret-pass",
		PasswordHash: "hashed_password",
	}
}

func (c *CompanyBuilder) With(mutate func(*CompanyBuilder)) *CompanyBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CompanyBuilder) BuildProfile() domcompany.Profile {
	return domcompany.Profile{
		Name:     c.Name,
		Email:    c.Email,
		Password: c.Password,
	}
}

func (c *CompanyBuilder) BuildDomain() (*domcompany.Company, error) {
	return domcompany.New(c.BuildProfile(), c.PasswordHash)
}

func (c *CompanyBuilder) BuildRequestDTO() reqdto.CompanyRequest {
	return reqdto.CompanyRequest{
		Name:     c.Name,
		Email:    c.Email,
		Password: c.Password,
	}
}

func (c *CompanyBuilder) BuildView() *queries.CompanyView {
	return &queries.CompanyView{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}

func (c *CompanyBuilder) BuildCredentials() *shared.CredentialsSnapshot {
	return &shared.CredentialsSnapshot{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
	}
}

// Fluent builder methods
func (c *CompanyBuilder) WithID(id int64) *CompanyBuilder {
	c.ID = id
	return c
}

func (c *CompanyBuilder) WithName(name string) *CompanyBuilder {
	c.Name = name
	return c
}

func (c *CompanyBuilder) WithEmail(email string) *CompanyBuilder {
	c.Email = email
	return c
}

func (c *CompanyBuilder) WithPassword(password string) *CompanyBuilder {
	c.Password = password
	return c
}

func (c *CompanyBuilder) WithPasswordHash(hash string) *CompanyBuilder {
	c.PasswordHash = hash
	return c
}
