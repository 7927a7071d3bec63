//go:build unit || e2e

package builder

import (
	domcustomer "coupon-market/internal/domain/customer"
	reqdto "coupon-market/internal/handler/dto/request"
	"coupon-market/internal/usecase/queries"
	"coupon-market/internal/usecase/shared"
)

type CustomerBuilder struct {
	ID           int64
	Name         string
	Email        string
	Password     string
	PasswordHash string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:           1,
		Name:         "Jordan Diaz",
		Email:        "jordan@example.com",
		Password:     "s3cret-pass",
		PasswordHash: "hashed_password",
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CustomerBuilder) BuildProfile() domcustomer.Profile {
	return domcustomer.Profile{
		Name:     c.Name,
		Email:    c.Email,
		Password: c.Password,
	}
}

func (c *CustomerBuilder) BuildDomain() (*domcustomer.Customer, error) {
	return domcustomer.New(c.BuildProfile(), c.PasswordHash)
}

func (c *CustomerBuilder) BuildRequestDTO() reqdto.CustomerRequest {
	return reqdto.CustomerRequest{
		Name:     c.Name,
		Email:    c.Email,
		Password: c.Password,
	}
}

func (c *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}

func (c *CustomerBuilder) BuildCredentials() *shared.CredentialsSnapshot {
	return &shared.CredentialsSnapshot{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
	}
}

// Fluent builder methods
func (c *CustomerBuilder) WithID(id int64) *CustomerBuilder {
	c.ID = id
	return c
}

func (c *CustomerBuilder) WithName(name string) *CustomerBuilder {
	c.Name = name
	return c
}

func (c *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	c.Email = email
	return c
}

func (c *CustomerBuilder) WithPassword(password string) *CustomerBuilder {
	c.Password = password
	return c
}

func (c *CustomerBuilder) WithPasswordHash(hash string) *CustomerBuilder {
	c.PasswordHash = hash
	return c
}
