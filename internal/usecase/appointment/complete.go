package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	appointment "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type CompleteAppointment struct {
	t transition
}

func NewCompleteAppointment(
	repo appointment.Repository,
	audit audit.Recorder,
	clock timezone.Clock,
) *CompleteAppointment {
	return &CompleteAppointment{t: transition{
		repo:   repo,
		audit:  audit,
		clock:  clock,
		action: "appointment_completed",
		authorize: func(p identity.Principal, ap *models.Appointment) error {
			return appointment.AuthorizeBarberAction(p, ap, "complete")
		},
		apply: appointment.Complete,
	}}
}

// Execute checks ownership before status, so a stranger learns nothing
// about the appointment's state.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	caller identity.Principal,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.t.run(ctx, caller, appointmentID)
}
