package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	appointment "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type ConfirmAppointment struct {
	t transition
}

func NewConfirmAppointment(
	repo appointment.Repository,
	audit audit.Recorder,
	clock timezone.Clock,
) *ConfirmAppointment {
	return &ConfirmAppointment{t: transition{
		repo:   repo,
		audit:  audit,
		clock:  clock,
		action: "appointment_confirmed",
		authorize: func(p identity.Principal, ap *models.Appointment) error {
			return appointment.AuthorizeBarberAction(p, ap, "confirm")
		},
		apply: appointment.Confirm,
	}}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	caller identity.Principal,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.t.run(ctx, caller, appointmentID)
}
