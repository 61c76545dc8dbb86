package barber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func ptr(s string) *string { return &s }

func TestWeekdayOf_MondayIsZero(t *testing.T) {
	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Monday, WeekdayOf(monday))
	assert.Equal(t, Sunday, WeekdayOf(monday.AddDate(0, 0, 6)))
	assert.Equal(t, "sunday", Sunday.String())
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, Clock(570), c)

	c, err = ParseClock("17:00:00")
	require.NoError(t, err)
	assert.Equal(t, "17:00", c.String())

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	assert.Equal(t, "10:00", Clock(570).Add(30*time.Minute).String())
}

func TestParseWeeklyHours(t *testing.T) {
	w, err := ParseWeeklyHours(map[string]DayInput{
		"monday":  {Start: ptr("09:00"), End: ptr("12:00")},
		"Tuesday": {Start: ptr(""), End: nil},
	})
	require.NoError(t, err)

	h, ok := w.On(Monday)
	require.True(t, ok)
	assert.Equal(t, Hours{Start: 540, End: 720}, h)

	_, ok = w.On(Tuesday)
	assert.False(t, ok)
}

func TestParseWeeklyHours_Errors(t *testing.T) {
	cases := []struct {
		name  string
		in    map[string]DayInput
		field string
		code  string
	}{
		{"start only", map[string]DayInput{"monday": {Start: ptr("09:00")}}, "monday_end", "incomplete_hours"},
		{"end only", map[string]DayInput{"friday": {End: ptr("18:00")}}, "friday_start", "incomplete_hours"},
		{"end before start", map[string]DayInput{"monday": {Start: ptr("12:00"), End: ptr("09:00")}}, "monday_end", "invalid_range"},
		{"equal bounds", map[string]DayInput{"monday": {Start: ptr("09:00"), End: ptr("09:00")}}, "monday_end", "invalid_range"},
		{"bad time", map[string]DayInput{"sunday": {Start: ptr("9am"), End: ptr("12:00")}}, "sunday_start", "invalid_time"},
		{"unknown day", map[string]DayInput{"funday": {}}, "working_hours", "invalid_weekday"},
		{"same day twice", map[string]DayInput{
			"monday": {Start: ptr("09:00"), End: ptr("12:00")},
			"Monday": {Start: ptr("13:00"), End: ptr("18:00")},
		}, "working_hours", "invalid_weekday"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseWeeklyHours(tc.in)
			be, ok := httperr.AsBusiness(err)
			require.True(t, ok, "expected business error, got %v", err)
			assert.Equal(t, httperr.KindValidation, be.Kind)
			assert.Equal(t, tc.field, be.Field)
			assert.Equal(t, tc.code, be.Code)
		})
	}
}

func TestHoursModelsRoundTrip(t *testing.T) {
	w := WeeklyHours{Monday: {Start: 540, End: 720}, Saturday: {Start: 600, End: 840}}

	rows := HoursToModels(7, w)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(7), rows[0].BarberProfileID)
	assert.Equal(t, "09:00", rows[0].StartTime)

	assert.Equal(t, w, HoursFromModels(rows))
}

func TestCanView(t *testing.T) {
	approved := &models.BarberProfile{UserID: 10, IsApproved: true}
	pending := &models.BarberProfile{UserID: 11}

	admin := identity.Principal{UserID: 1, Role: identity.RoleAdmin}
	owner := identity.Principal{UserID: 11, Role: identity.RoleBarber}
	client := identity.Principal{UserID: 5, Role: identity.RoleClient}

	assert.True(t, CanView(admin, pending))
	assert.True(t, CanView(owner, pending))
	assert.False(t, CanView(owner, approved))
	assert.True(t, CanView(client, approved))
	assert.False(t, CanView(client, pending))
	assert.True(t, CanView(identity.Anonymous(), approved))
	assert.False(t, CanView(identity.Anonymous(), pending))
}

func TestIsBookable(t *testing.T) {
	assert.False(t, IsBookable(nil))
	assert.False(t, IsBookable(&models.BarberProfile{}))
	assert.True(t, IsBookable(&models.BarberProfile{IsApproved: true}))
}
