// Package customer mirrors the company entity: same uniqueness and format
// rules, different store table and login key (email instead of name).
package customer

import (
	"strings"

	"coupon-market/internal/domain/validation"
	"coupon-market/internal/pkg/apperr"
)

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

	return c.Err("one or more customer fields are invalid")
}

type Customer struct {
	id           int64
	name         string
	email        string
	passwordHash string
}

func New(p Profile, passwordHash string) (*Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Customer{
		name:         strings.TrimSpace(p.Name),
		email:        strings.TrimSpace(p.Email),
		passwordHash: passwordHash,
	}, nil
}

func Reconstruct(id int64, name, email, passwordHash string) *Customer {
	return &Customer{id: id, name: name, email: email, passwordHash: passwordHash}
}

func (c *Customer) WithID(id int64) *Customer {
	c.id = id
	return c
}

func (c *Customer) ID() int64            { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) PasswordHash() string { return c.passwordHash }
