package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	appointment "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Caller    identity.Principal
	BarberID  uint
	ServiceID uint
	Date      string
	Time      string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   appointment.Repository
	locker appointment.SlotLocker
	audit  audit.Recorder
	clock  timezone.Clock
}

func NewCreateAppointment(
	repo appointment.Repository,
	locker appointment.SlotLocker,
	audit audit.Recorder,
	clock timezone.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
		clock:  clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Only authenticated callers book
	// --------------------------------------------------
	if !in.Caller.IsAuthenticated() {
		return nil, httperr.ErrForbidden("authentication_required", "Authentication required")
	}

	// --------------------------------------------------
	// 2. Date / time
	// --------------------------------------------------
	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrValidation("appointment_date", "invalid_date", "Date must be YYYY-MM-DD.")
	}
	at, err := barber.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrValidation("appointment_time", "invalid_time", "Time must be HH:MM.")
	}

	// --------------------------------------------------
	// 3. Barber and profile
	// --------------------------------------------------
	barberUser, err := uc.optionalUser(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	var profile *models.BarberProfile
	if barberUser != nil {
		profile, err = uc.optionalProfile(ctx, barberUser.ID)
		if err != nil {
			return nil, err
		}
	}

	if err := appointment.ValidateBooking(appointment.BookingCheck{
		Caller:  in.Caller,
		Date:    date,
		Today:   timezone.Today(uc.clock),
		Barber:  barberUser,
		Profile: profile,
	}); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Service
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrValidation("service_id", "invalid_service", "Selected service does not exist")
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Slot lock + conflict
	// --------------------------------------------------
	slot := at.String()
	release, err := uc.locker.Lock(ctx, slotKey(barberUser.ID, date.Format(timezone.DateLayout), slot))
	if errors.Is(err, domain.ErrSlotLocked) {
		return nil, errSlotTaken()
	}
	if err != nil {
		return nil, err
	}
	defer release()

	taken, err := uc.repo.CountAppointments(ctx, appointment.ListFilter{
		BarberID: &barberUser.ID,
		Date:     &date,
		Time:     &slot,
		Statuses: appointment.BlockingStatuses,
	})
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, errSlotTaken()
	}

	// --------------------------------------------------
	// 6. Create
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:        in.Caller.UserID,
		BarberID:        barberUser.ID,
		ServiceID:       service.ID,
		AppointmentDate: date,
		AppointmentTime: slot,
		Status:          string(appointment.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errSlotTaken()
		}
		return nil, err
	}

	// --------------------------------------------------
	// 7. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.Caller.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"date": in.Date,
			"time": slot,
		},
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}

func (uc *CreateAppointment) optionalUser(ctx context.Context, id uint) (*models.User, error) {
	u, err := uc.repo.GetUser(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return u, err
}

func (uc *CreateAppointment) optionalProfile(ctx context.Context, userID uint) (*models.BarberProfile, error) {
	p, err := uc.repo.GetProfileByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func slotKey(barberID uint, date, at string) string {
	return fmt.Sprintf("booking:%d:%s:%s", barberID, date, at)
}

func errSlotTaken() error {
	return httperr.ErrConflict("slot_taken", "This time slot is already booked")
}
