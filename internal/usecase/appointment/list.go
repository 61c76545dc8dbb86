package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	appointment "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type ListAppointmentsInput struct {
	Caller identity.Principal
	Status string
	Date   string
}

type ListAppointments struct {
	repo appointment.Repository
}

func NewListAppointments(repo appointment.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lists what the caller may see: everything for admins, their
// agenda for barbers, their bookings for clients.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentDTO, error) {

	if !in.Caller.IsAuthenticated() {
		return nil, httperr.ErrForbidden("authentication_required", "Authentication required")
	}

	var f appointment.ListFilter
	if in.Status != "" {
		st, err := appointment.ParseStatus(in.Status)
		if err != nil {
			return nil, httperr.ErrValidation("status", "invalid_status", err.Error())
		}
		f.Statuses = []appointment.Status{st}
	}
	if in.Date != "" {
		d, err := timezone.ParseDate(in.Date)
		if err != nil {
			return nil, httperr.ErrValidation("date", "invalid_date", "Invalid date format. Use YYYY-MM-DD")
		}
		f.Date = &d
	}

	aps, err := uc.repo.ListAppointments(ctx, appointment.ScopeFilter(in.Caller, f))
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentDTOs(aps), nil
}

type GetAppointment struct {
	repo appointment.Repository
}

func NewGetAppointment(repo appointment.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute hides appointments outside the caller's visibility as not found.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	caller identity.Principal,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found")
	}
	if err != nil {
		return nil, err
	}
	if !appointment.CanView(caller, ap) {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found")
	}
	return ap, nil
}
