package commands

import (
	"context"
	"crypto/subtle"

	"coupon-market/internal/domain/company"
	"coupon-market/internal/domain/customer"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/apperr"
	"coupon-market/internal/pkg/config"
	"coupon-market/internal/pkg/errs"
	"coupon-market/internal/pkg/jwt"
	"coupon-market/internal/pkg/password"
	"coupon-market/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = apperr.New(apperr.GeneralError, "invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

// The credential pair is validated as a full profile, with the missing field
// filled by a well-formed placeholder, so a login request reports the same
// field errors as a registration would.
const (
	loginPlaceholderEmail = "valid@email.com"
	loginPlaceholderName  = "placeholder"
)

type LoginResult struct {
	ActorID int64
	Name    string
	Role    jwt.Role
	Token   string
}

type AuthCommands interface {
	CompanyLogin(ctx context.Context, name, pass string) (*LoginResult, error)
	CustomerLogin(ctx context.Context, email, pass string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	admin      config.AdminConfig
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtService *jwt.Service, admin config.AdminConfig) AuthCommands {
	return &authUseCaseImpl{
		uow:        uow,
		jwtService: jwtService,
		admin:      admin,
	}
}

// CompanyLogin authenticates by company name. The configured admin account
// rides the same endpoint and yields the admin role.
func (a *authUseCaseImpl) CompanyLogin(ctx context.Context, name, pass string) (*LoginResult, error) {
	p := company.Profile{Name: name, Email: loginPlaceholderEmail, Password: pass}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if a.isAdmin(name, pass) {
		return a.issue(0, a.admin.Name, jwt.RoleAdmin)
	}

	var creds *shared.CredentialsSnapshot
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, derr := tx.Companies().FindCredentialsByName(ctx, tx.DB(), name)
		if derr != nil {
			return derr
		}
		creds = found
		return nil
	})
	if err != nil {
		// Unknown name and wrong password are indistinguishable to the caller
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if password.ComparePassword(creds.PasswordHash, pass) != nil {
		return nil, ErrInvalidCredentials
	}
	return a.issue(creds.ID, creds.Name, jwt.RoleCompany)
}

func (a *authUseCaseImpl) CustomerLogin(ctx context.Context, email, pass string) (*LoginResult, error) {
	p := customer.Profile{Name: loginPlaceholderName, Email: email, Password: pass}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var creds *shared.CredentialsSnapshot
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, derr := tx.Customers().FindCredentialsByEmail(ctx, tx.DB(), email)
		if derr != nil {
			return derr
		}
		creds = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if password.ComparePassword(creds.PasswordHash, pass) != nil {
		return nil, ErrInvalidCredentials
	}
	return a.issue(creds.ID, creds.Name, jwt.RoleCustomer)
}

func (a *authUseCaseImpl) isAdmin(name, pass string) bool {
	if a.admin.Password == "" {
		return false
	}
	nameOK := subtle.ConstantTimeCompare([]byte(name), []byte(a.admin.Name)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(a.admin.Password)) == 1
	return nameOK && passOK
}

func (a *authUseCaseImpl) issue(actorID int64, name string, role jwt.Role) (*LoginResult, error) {
	token, err := a.jwtService.GenerateToken(actorID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{
		ActorID: actorID,
		Name:    name,
		Role:    role,
		Token:   token,
	}, nil
}
