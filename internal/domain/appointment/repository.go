package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ListFilter selects appointments. Nil fields do not filter; dates are
// civil dates.
type ListFilter struct {
	ClientID *uint
	BarberID *uint
	Statuses []Status
	Date     *time.Time
	Time     *string
	FromDate *time.Time // inclusive
	ToDate   *time.Time // exclusive
}

type Repository interface {
	// -------- Lookups --------
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetProfile(ctx context.Context, id uint) (*models.BarberProfile, error)
	GetProfileByUser(ctx context.Context, userID uint) (*models.BarberProfile, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// GetAppointment loads Client, Barber and Service.
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Queries --------
	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)
	CountAppointments(ctx context.Context, f ListFilter) (int64, error)
}

// SlotLocker serialises bookings of the same barber/date/time across
// processes. Lock fails with domain.ErrSlotLocked when another request holds
// the slot.
type SlotLocker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}
