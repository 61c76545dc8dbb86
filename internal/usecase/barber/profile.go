package barber

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	barber "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ProfileInput is a partial profile. Nil fields are left untouched;
// a non-nil WorkingHours replaces the whole week.
type ProfileInput struct {
	UserID         *uint
	Bio            *string
	Specialization *string
	IsAvailable    *bool
	WorkingHours   map[string]barber.DayInput
}

func (in ProfileInput) apply(p *models.BarberProfile) (replaceHours bool, err error) {
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.Specialization != nil {
		p.Specialization = *in.Specialization
	}
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}
	if in.WorkingHours == nil {
		return false, nil
	}

	week, err := barber.ParseWeeklyHours(in.WorkingHours)
	if err != nil {
		return false, err
	}
	p.WorkingHours = barber.HoursToModels(p.ID, week)
	return true, nil
}

func errProfileNotFound() error {
	return httperr.ErrNotFound("profile_not_found", "Barber profile not found")
}

func load(ctx context.Context, repo barber.Repository, id uint) (*models.BarberProfile, error) {
	p, err := repo.GetProfile(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errProfileNotFound()
	}
	return p, err
}

// ======================================================
// Create
// ======================================================

type CreateProfile struct {
	repo  barber.Repository
	audit audit.Recorder
}

func NewCreateProfile(repo barber.Repository, audit audit.Recorder) *CreateProfile {
	return &CreateProfile{repo: repo, audit: audit}
}

// Execute creates the caller's own profile, or, for admins, the profile of
// in.UserID. New profiles are never approved.
func (uc *CreateProfile) Execute(
	ctx context.Context,
	caller identity.Principal,
	in ProfileInput,
) (*models.BarberProfile, error) {

	var ownerID uint
	switch {
	case caller.Is(identity.RoleBarber):
		ownerID = caller.UserID
	case caller.IsAdmin():
		if in.UserID == nil {
			return nil, httperr.ErrValidation("user_id", "required", "user_id is required")
		}
		ownerID = *in.UserID
	default:
		return nil, httperr.ErrForbidden("barber_only", "Only barbers can create a barber profile")
	}

	owner, err := uc.repo.GetUser(ctx, ownerID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && owner.UserType != identity.RoleBarber) {
		return nil, httperr.ErrValidation("user_id", "invalid_barber", "Selected user is not a barber")
	}
	if err != nil {
		return nil, err
	}

	p := &models.BarberProfile{UserID: owner.ID, IsAvailable: true}
	if _, err := in.apply(p); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateProfile(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.ErrConflict("profile_exists", "This barber already has a profile")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &caller.UserID,
		Action:   "barber_profile_created",
		Entity:   "barber_profile",
		EntityID: &p.ID,
	})

	return uc.repo.GetProfile(ctx, p.ID)
}

// ======================================================
// Update
// ======================================================

type UpdateProfile struct {
	repo  barber.Repository
	audit audit.Recorder
}

func NewUpdateProfile(repo barber.Repository, audit audit.Recorder) *UpdateProfile {
	return &UpdateProfile{repo: repo, audit: audit}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	caller identity.Principal,
	id uint,
	in ProfileInput,
) (*models.BarberProfile, error) {

	p, err := load(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if !barber.CanView(caller, p) {
		return nil, errProfileNotFound()
	}
	if !barber.CanEdit(caller, p) {
		return nil, httperr.ErrForbidden("not_profile_owner", "You can only edit your own profile")
	}

	replace, err := in.apply(p)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SaveProfile(ctx, p, replace); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &caller.UserID,
		Action:   "barber_profile_updated",
		Entity:   "barber_profile",
		EntityID: &p.ID,
	})

	return uc.repo.GetProfile(ctx, p.ID)
}

// ======================================================
// Approve
// ======================================================

type ApproveProfile struct {
	repo  barber.Repository
	audit audit.Recorder
}

func NewApproveProfile(repo barber.Repository, audit audit.Recorder) *ApproveProfile {
	return &ApproveProfile{repo: repo, audit: audit}
}

func (uc *ApproveProfile) Execute(
	ctx context.Context,
	caller identity.Principal,
	id uint,
) (*models.BarberProfile, error) {

	if !caller.IsAdmin() {
		return nil, httperr.ErrForbidden("admin_only", "Only admins can approve barbers")
	}

	p, err := load(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	p.IsApproved = true
	if err := uc.repo.SaveProfile(ctx, p, false); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &caller.UserID,
		Action:   "barber_profile_approved",
		Entity:   "barber_profile",
		EntityID: &p.ID,
	})

	return p, nil
}
