package user

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Repository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	ListUsers(ctx context.Context, f identity.UserFilter) ([]models.User, error)
}

// TokenIssuer signs access tokens for a user.
type TokenIssuer interface {
	Issue(u *models.User) (string, error)
}

// TokenRevoker is satisfied by auth.Revoker.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
}

// EmailDomainChecker reports whether an e-mail's domain can receive mail.
type EmailDomainChecker func(email string) bool
