package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	appointment "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// transition is the shared load / authorize / apply / persist / audit flow
// of the lifecycle use cases.
type transition struct {
	repo  appointment.Repository
	audit audit.Recorder
	clock timezone.Clock

	action    string
	authorize func(identity.Principal, *models.Appointment) error
	apply     func(*models.Appointment, time.Time) error
}

func (t transition) run(
	ctx context.Context,
	caller identity.Principal,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := t.repo.GetAppointment(ctx, appointmentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found")
	}
	if err != nil {
		return nil, err
	}

	if err := t.authorize(caller, ap); err != nil {
		return nil, err
	}

	from := ap.Status
	if err := t.apply(ap, t.clock()); err != nil {
		return nil, err
	}

	if err := t.repo.UpdateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errSlotTaken()
		}
		return nil, err
	}

	t.audit.Dispatch(audit.Event{
		ActorID:  &caller.UserID,
		Action:   t.action,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": from, "to": ap.Status},
	})

	return ap, nil
}
