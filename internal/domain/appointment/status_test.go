package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestStatusClassification(t *testing.T) {
	for _, s := range BlockingStatuses {
		assert.True(t, s.IsBlocking(), s)
		assert.False(t, s.BlocksTransition(), s)
	}
	assert.False(t, StatusNoShow.IsBlocking())
	assert.False(t, StatusNoShow.BlocksTransition())
	assert.True(t, StatusCancelled.BlocksTransition())
	assert.True(t, StatusCompleted.BlocksTransition())

	_, err := ParseStatus("pending")
	assert.Error(t, err)
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	for _, st := range []Status{StatusScheduled, StatusConfirmed, StatusInProgress, StatusNoShow} {
		ap := &models.Appointment{Status: string(st)}
		require.NoError(t, Cancel(ap, now), st)
		assert.Equal(t, string(StatusCancelled), ap.Status)
		assert.Equal(t, now, *ap.CancelledAt)
	}

	for _, st := range []Status{StatusCancelled, StatusCompleted} {
		ap := &models.Appointment{Status: string(st)}
		err := Cancel(ap, now)
		assert.True(t, httperr.IsKind(err, httperr.KindConflict), st)
		assert.Equal(t, string(st), ap.Status)
		assert.Nil(t, ap.CancelledAt)
	}
}

func TestComplete(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.NotNil(t, ap.CompletedAt)

	err := Complete(&models.Appointment{Status: string(StatusCancelled)}, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestConfirm_NoGuard(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCompleted)}
	require.NoError(t, Confirm(ap, time.Now()))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.NotNil(t, ap.ConfirmedAt)
}
