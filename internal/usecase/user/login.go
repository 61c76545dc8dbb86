package user

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Login struct {
	repo   Repository
	tokens TokenIssuer
}

func NewLogin(repo Repository, tokens TokenIssuer) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, username, password string) (*models.User, string, error) {
	u, err := uc.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", errInvalidCredentials()
	}
	if err != nil {
		return nil, "", err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, "", errInvalidCredentials()
	}
	if !u.IsActive {
		return nil, "", httperr.ErrValidation("non_field_errors", "account_disabled", "Account is disabled.")
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func errInvalidCredentials() error {
	return httperr.ErrValidation("non_field_errors", "invalid_credentials", "Invalid credentials.")
}

type Logout struct {
	revoker TokenRevoker
}

func NewLogout(revoker TokenRevoker) *Logout {
	return &Logout{revoker: revoker}
}

// Execute revokes the token with the given id until it would have expired.
func (uc *Logout) Execute(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return httperr.ErrValidation("token", "invalid_token", "Token has no id")
	}
	return uc.revoker.Revoke(ctx, jti, expiresAt)
}
