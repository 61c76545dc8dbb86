package barber

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ProfileFilter struct {
	UserID       *uint
	ApprovedOnly bool
}

type Repository interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)

	// Profiles are returned with User and WorkingHours loaded.
	GetProfile(ctx context.Context, id uint) (*models.BarberProfile, error)
	GetProfileByUser(ctx context.Context, userID uint) (*models.BarberProfile, error)
	ListProfiles(ctx context.Context, f ProfileFilter) ([]models.BarberProfile, error)

	CreateProfile(ctx context.Context, p *models.BarberProfile) error

	// SaveProfile updates the profile columns; with replaceHours the stored
	// week is swapped for p.WorkingHours in the same transaction.
	SaveProfile(ctx context.Context, p *models.BarberProfile, replaceHours bool) error
}
