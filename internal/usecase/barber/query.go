package barber

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	barber "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ListProfiles struct {
	repo barber.Repository
}

func NewListProfiles(repo barber.Repository) *ListProfiles {
	return &ListProfiles{repo: repo}
}

func (uc *ListProfiles) Execute(ctx context.Context, caller identity.Principal) ([]models.BarberProfile, error) {
	var f barber.ProfileFilter
	switch {
	case caller.IsAdmin():
	case caller.Is(identity.RoleBarber):
		id := caller.UserID
		f.UserID = &id
	default:
		f.ApprovedOnly = true
	}
	return uc.repo.ListProfiles(ctx, f)
}

type GetProfile struct {
	repo barber.Repository
}

func NewGetProfile(repo barber.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, caller identity.Principal, id uint) (*models.BarberProfile, error) {
	p, err := load(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if !barber.CanView(caller, p) {
		return nil, errProfileNotFound()
	}
	return p, nil
}

type MyProfile struct {
	repo barber.Repository
}

func NewMyProfile(repo barber.Repository) *MyProfile {
	return &MyProfile{repo: repo}
}

func (uc *MyProfile) Execute(ctx context.Context, caller identity.Principal) (*models.BarberProfile, error) {
	if !caller.Is(identity.RoleBarber) {
		return nil, httperr.ErrForbidden("barber_only", "Only barbers have a barber profile")
	}

	p, err := uc.repo.GetProfileByUser(ctx, caller.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("profile_not_found", "Profile not found")
	}
	return p, err
}
