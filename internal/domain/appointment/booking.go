package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// BookingCheck carries everything ValidateBooking looks at. Barber and
// Profile are nil when they do not exist.
type BookingCheck struct {
	Caller  identity.Principal
	Date    time.Time
	Today   time.Time
	Barber  *models.User
	Profile *models.BarberProfile
}

// ValidateBooking applies the booking rules in order and returns the first
// failure.
func ValidateBooking(in BookingCheck) error {
	// 1. past dates
	if civil(in.Date).Before(civil(in.Today)) {
		return httperr.ErrValidation("appointment_date", "past_date",
			"Cannot book appointments in the past")
	}

	// 2. barber must be a barber
	if in.Barber == nil || in.Barber.UserType != identity.RoleBarber {
		return httperr.ErrValidation("barber_id", "invalid_barber",
			"Selected user is not a barber")
	}

	// 3. no self-booking
	if in.Caller.Is(identity.RoleBarber) && in.Caller.UserID == in.Barber.ID {
		return httperr.ErrValidation("barber_id", "self_booking",
			"Barbers cannot book appointments with themselves")
	}

	// 4. approved profile
	if !barber.IsBookable(in.Profile) {
		return httperr.ErrValidation("barber_id", "barber_not_authorized",
			"Selected barber is not authorized yet")
	}

	return nil
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
