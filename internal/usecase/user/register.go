package user

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Password2 string
	FirstName string
	LastName  string
	UserType  string
	Phone     string
	BirthDate string
}

type Register struct {
	repo        Repository
	tokens      TokenIssuer
	audit       audit.Recorder
	checkDomain EmailDomainChecker
}

// NewRegister builds the sign-up use case. checkDomain may be nil to skip
// the e-mail domain lookup.
func NewRegister(repo Repository, tokens TokenIssuer, audit audit.Recorder, checkDomain EmailDomainChecker) *Register {
	return &Register{repo: repo, tokens: tokens, audit: audit, checkDomain: checkDomain}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	// 1. passwords
	if in.Password != in.Password2 {
		return nil, "", httperr.ErrValidation("password", "password_mismatch", "Password fields didn't match.")
	}
	if problem := validators.PasswordProblem(in.Password); problem != "" {
		return nil, "", httperr.ErrValidation("password", "weak_password", problem)
	}

	// 2. role: clients and barbers only
	role := identity.RoleClient
	if in.UserType != "" {
		r, err := identity.ParseRole(in.UserType)
		if err != nil || r == identity.RoleAdmin {
			return nil, "", httperr.ErrValidation("user_type", "invalid_user_type", "user_type must be client or barber")
		}
		role = r
	}

	// 3. contact data
	email := strings.TrimSpace(in.Email)
	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, "", httperr.ErrValidation("email", "invalid_email_domain", "E-mail domain does not accept mail")
	}
	if in.Phone != "" && !validators.IsPhoneValid(in.Phone) {
		return nil, "", httperr.ErrValidation("phone", "invalid_phone",
			"Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed.")
	}

	u := &models.User{
		Username:  strings.TrimSpace(in.Username),
		Email:     email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		UserType:  role,
		Phone:     in.Phone,
		IsActive:  true,
	}
	if in.BirthDate != "" {
		d, err := timezone.ParseDate(in.BirthDate)
		if err != nil {
			return nil, "", httperr.ErrValidation("birth_date", "invalid_date", "Date must be YYYY-MM-DD.")
		}
		u.BirthDate = &d
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}
	u.PasswordHash = hash

	// 4. persist
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, "", httperr.ErrValidation("username", "username_taken", "A user with that username already exists.")
		}
		return nil, "", err
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]string{"user_type": role.String()},
	})

	return u, token, nil
}
