package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	appointment "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type GetAvailabilityInput struct {
	Caller    identity.Principal
	ProfileID uint
	Date      string
}

type GetAvailability struct {
	repo appointment.Repository
	step time.Duration
}

func NewGetAvailability(repo appointment.Repository, step time.Duration) *GetAvailability {
	if step <= 0 {
		step = appointment.DefaultSlotDuration
	}
	return &GetAvailability{repo: repo, step: step}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) (*appointment.Availability, error) {

	profile, err := uc.repo.GetProfile(ctx, in.ProfileID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errBarberNotFound()
	}
	if err != nil {
		return nil, err
	}
	if !barber.CanView(in.Caller, profile) {
		return nil, errBarberNotFound()
	}

	if in.Date == "" {
		return nil, httperr.ErrValidation("date", "date_required", "Date parameter is required")
	}
	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrValidation("date", "invalid_date", "Invalid date format. Use YYYY-MM-DD")
	}

	week := barber.HoursFromModels(profile.WorkingHours)

	var booked []models.Appointment
	if _, works := week.On(barber.WeekdayOf(date)); works {
		booked, err = uc.repo.ListAppointments(ctx, appointment.ListFilter{
			BarberID: &profile.UserID,
			Date:     &date,
			Statuses: appointment.BlockingStatuses,
		})
		if err != nil {
			return nil, err
		}
	}

	out := appointment.DayAvailability(week, date, booked, uc.step)
	out.Barber = profile.User.Username
	return &out, nil
}

func errBarberNotFound() error {
	return httperr.ErrNotFound("barber_not_found", "Barber not found")
}
