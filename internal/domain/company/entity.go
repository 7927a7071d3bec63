package company

import (
	"strings"

	"coupon-market/internal/domain/validation"
	"coupon-market/internal/pkg/apperr"
)

// Profile is the raw client-submitted company data, validated as a whole
// so every invalid field is reported in one failure.
type Profile struct {
	Name     string
	Email    string
	Password string
}

func (p Profile) Validate() error {
	var c apperr.Collector

	if !validation.ValidName(p.Name) {
		c.Add("name", apperr.CodeInvalidName)
	}
	if !validation.ValidPassword(p.Password) {
		c.Add("password", apperr.CodeInvalidPassword)
	}
	if !validation.ValidEmail(p.Email) {
		c.Add("email", apperr.CodeInvalidEmail)
	}

	return c.Err("one or more company fields are invalid")
}

type Company struct {
	id           int64
	name         string
	email        string
	passwordHash string
}

// New validates the profile and builds a company carrying the already
// hashed password. The id stays zero until the store assigns one.
func New(p Profile, passwordHash string) (*Company, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Company{
		name:         strings.TrimSpace(p.Name),
		email:        strings.TrimSpace(p.Email),
		passwordHash: passwordHash,
	}, nil
}

// Reconstruct rebuilds a company from a trusted store row, skipping
// validation.
func Reconstruct(id int64, name, email, passwordHash string) *Company {
	return &Company{id: id, name: name, email: email, passwordHash: passwordHash}
}

func (c *Company) WithID(id int64) *Company {
	c.id = id
	return c
}

func (c *Company) ID() int64            { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) Email() string        { return c.email }
func (c *Company) PasswordHash() string { return c.passwordHash }
