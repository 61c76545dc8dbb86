package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

func TestCancelAppointment_Parties(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cancel := NewCancelAppointment(f.store, f.trail, fixedClock)

	ap := f.book(t, "2026-10-20", "09:00")
	_, err := cancel.Execute(ctx, f.barber2, ap.ID)
	requireCode(t, err, httperr.KindForbidden, "not_appointment_party")

	got, err := cancel.Execute(ctx, f.barber, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
	assert.Equal(t, fixedNow, *got.CancelledAt)

	_, err = cancel.Execute(ctx, f.admin, ap.ID)
	requireCode(t, err, httperr.KindConflict, "invalid_state")

	_, err = cancel.Execute(ctx, f.admin, 9999)
	requireCode(t, err, httperr.KindNotFound, "appointment_not_found")
}

func TestConfirmAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	confirm := NewConfirmAppointment(f.store, f.trail, fixedClock)
	ap := f.book(t, "2026-10-20", "09:00")

	_, err := confirm.Execute(ctx, f.client, ap.ID)
	requireCode(t, err, httperr.KindForbidden, "barber_only")

	_, err = confirm.Execute(ctx, f.admin, ap.ID)
	requireCode(t, err, httperr.KindForbidden, "barber_only")

	_, err = confirm.Execute(ctx, f.barber2, ap.ID)
	requireCode(t, err, httperr.KindForbidden, "not_your_appointment")

	got, err := confirm.Execute(ctx, f.barber, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)

	stored, err := f.store.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", stored.Status)
	assert.NotNil(t, stored.ConfirmedAt)
}

func TestConfirmAppointment_RebookedSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cancel := NewCancelAppointment(f.store, f.trail, fixedClock)
	confirm := NewConfirmAppointment(f.store, f.trail, fixedClock)

	original := f.book(t, "2026-10-20", "10:00")
	_, err := cancel.Execute(ctx, f.client, original.ID)
	require.NoError(t, err)
	rebooked := f.book(t, "2026-10-20", "10:00")

	_, err = confirm.Execute(ctx, f.barber, original.ID)
	requireCode(t, err, httperr.KindConflict, "slot_taken")

	stored, err := f.store.GetAppointment(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", stored.Status)
	assert.NotContains(t, f.trail.Actions(), "appointment_confirmed")

	// the live booking is unaffected
	got, err := confirm.Execute(ctx, f.barber, rebooked.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
}

func TestCompleteAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	complete := NewCompleteAppointment(f.store, f.trail, fixedClock)
	cancel := NewCancelAppointment(f.store, f.trail, fixedClock)

	done := f.book(t, "2026-10-20", "09:00")
	got, err := complete.Execute(ctx, f.barber, done.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)

	_, err = complete.Execute(ctx, f.barber, done.ID)
	requireCode(t, err, httperr.KindConflict, "invalid_state")

	cancelled := f.book(t, "2026-10-20", "09:30")
	_, err = cancel.Execute(ctx, f.client, cancelled.ID)
	require.NoError(t, err)

	// authorization is checked before status
	_, err = complete.Execute(ctx, f.barber2, cancelled.ID)
	requireCode(t, err, httperr.KindForbidden, "not_your_appointment")

	_, err = complete.Execute(ctx, f.barber, cancelled.ID)
	requireCode(t, err, httperr.KindConflict, "invalid_state")

	assert.Equal(t, []string{
		"appointment_created",
		"appointment_completed",
		"appointment_created",
		"appointment_cancelled",
	}, f.trail.Actions())
}

func TestListAndGetAppointments_Visibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book(t, "2026-10-20", "09:00")
	f.book(t, "2026-10-21", "09:00")

	list := NewListAppointments(f.store)

	mine, err := list.Execute(ctx, ListAppointmentsInput{Caller: f.client})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2026-10-21", mine[0].AppointmentDate, "newest first")

	other, err := list.Execute(ctx, ListAppointmentsInput{Caller: f.barber2})
	require.NoError(t, err)
	assert.Empty(t, other)

	byDate, err := list.Execute(ctx, ListAppointmentsInput{Caller: f.admin, Date: "2026-10-20"})
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, a.ID, byDate[0].ID)

	_, err = list.Execute(ctx, ListAppointmentsInput{Caller: f.admin, Status: "pending"})
	requireCode(t, err, httperr.KindValidation, "invalid_status")

	_, err = NewGetAppointment(f.store).Execute(ctx, f.barber2, a.ID)
	requireCode(t, err, httperr.KindNotFound, "appointment_not_found")
}
