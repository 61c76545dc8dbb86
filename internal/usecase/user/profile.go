package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

func errUserNotFound() error {
	return httperr.ErrNotFound("user_not_found", "User not found")
}

type Me struct {
	repo Repository
}

func NewMe(repo Repository) *Me {
	return &Me{repo: repo}
}

func (uc *Me) Execute(ctx context.Context, caller identity.Principal) (*models.User, error) {
	u, err := uc.repo.GetUser(ctx, caller.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errUserNotFound()
	}
	return u, err
}

// UpdateMeInput never carries username or user type; those are immutable
// through self-service.
type UpdateMeInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Phone     *string
	BirthDate *string
}

type UpdateMe struct {
	repo Repository
}

func NewUpdateMe(repo Repository) *UpdateMe {
	return &UpdateMe{repo: repo}
}

func (uc *UpdateMe) Execute(ctx context.Context, caller identity.Principal, in UpdateMeInput) (*models.User, error) {
	u, err := uc.repo.GetUser(ctx, caller.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errUserNotFound()
	}
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Phone != nil {
		if *in.Phone != "" && !validators.IsPhoneValid(*in.Phone) {
			return nil, httperr.ErrValidation("phone", "invalid_phone", "Invalid phone number")
		}
		u.Phone = *in.Phone
	}
	if in.BirthDate != nil {
		if *in.BirthDate == "" {
			u.BirthDate = nil
		} else {
			d, err := timezone.ParseDate(*in.BirthDate)
			if err != nil {
				return nil, httperr.ErrValidation("birth_date", "invalid_date", "Date must be YYYY-MM-DD.")
			}
			u.BirthDate = &d
		}
	}

	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

type ListUsers struct {
	repo Repository
}

func NewListUsers(repo Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

// Execute: admins see everyone, barbers their clients, clients themselves.
func (uc *ListUsers) Execute(ctx context.Context, caller identity.Principal) ([]models.User, error) {
	return uc.repo.ListUsers(ctx, scope(caller))
}

type GetUser struct {
	repo Repository
}

func NewGetUser(repo Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, caller identity.Principal, id uint) (*models.User, error) {
	f := scope(caller)
	if f.ID != nil && *f.ID != id {
		return nil, errUserNotFound()
	}
	f.ID = &id

	users, err := uc.repo.ListUsers(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, errUserNotFound()
	}
	return &users[0], nil
}

func scope(caller identity.Principal) identity.UserFilter {
	id := caller.UserID
	switch {
	case caller.IsAdmin():
		return identity.UserFilter{}
	case caller.Is(identity.RoleBarber):
		return identity.UserFilter{ClientsOfBarber: &id}
	}
	return identity.UserFilter{ID: &id}
}
