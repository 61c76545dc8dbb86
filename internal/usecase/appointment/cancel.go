package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	appointment "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type CancelAppointment struct {
	t transition
}

func NewCancelAppointment(
	repo appointment.Repository,
	audit audit.Recorder,
	clock timezone.Clock,
) *CancelAppointment {
	return &CancelAppointment{t: transition{
		repo:      repo,
		audit:     audit,
		clock:     clock,
		action:    "appointment_cancelled",
		authorize: appointment.AuthorizeCancel,
		apply:     appointment.Cancel,
	}}
}

// Execute cancels on behalf of the client, the barber or an admin.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	caller identity.Principal,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.t.run(ctx, caller, appointmentID)
}
