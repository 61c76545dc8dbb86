package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func hours(t *testing.T, from, to string) barber.Hours {
	t.Helper()
	s, err := barber.ParseClock(from)
	require.NoError(t, err)
	e, err := barber.ParseClock(to)
	require.NoError(t, err)
	return barber.Hours{Start: s, End: e}
}

func booked(at string, st Status) models.Appointment {
	return models.Appointment{AppointmentTime: at, Status: string(st)}
}

func times(slots []TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time
	}
	return out
}

func TestComputeSlots_MorningWithOneBooking(t *testing.T) {
	slots := ComputeSlots(hours(t, "09:00", "12:00"),
		[]models.Appointment{booked("10:00", StatusScheduled)}, 30*time.Minute)

	require.Len(t, slots, 6)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, times(slots))
	for _, s := range slots {
		assert.Equal(t, s.Time != "10:00", s.Available, s.Time)
	}
}

func TestComputeSlots_LastSlotNotClipped(t *testing.T) {
	slots := ComputeSlots(hours(t, "09:00", "10:15"), nil, 30*time.Minute)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, times(slots))
}

func TestComputeSlots_OffGridBookingBlocksContainingSlot(t *testing.T) {
	slots := ComputeSlots(hours(t, "09:00", "11:00"),
		[]models.Appointment{booked("09:45", StatusConfirmed)}, 30*time.Minute)

	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestComputeSlots_NonBlockingStatusesIgnored(t *testing.T) {
	apps := []models.Appointment{
		booked("09:00", StatusCancelled),
		booked("09:30", StatusCompleted),
		booked("10:00", StatusNoShow),
		booked("10:30", StatusInProgress),
	}
	slots := ComputeSlots(hours(t, "09:00", "11:00"), apps, 30*time.Minute)

	assert.Equal(t, []bool{true, true, true, false}, []bool{
		slots[0].Available, slots[1].Available, slots[2].Available, slots[3].Available,
	})
}

func TestComputeSlots_ServiceDurationIgnored(t *testing.T) {
	ap := booked("09:00", StatusScheduled)
	ap.Service = models.Service{Duration: 90}

	slots := ComputeSlots(hours(t, "09:00", "10:30"), []models.Appointment{ap}, 30*time.Minute)

	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestComputeSlots_Properties(t *testing.T) {
	h := hours(t, "08:10", "19:40")
	step := 25 * time.Minute
	slots := ComputeSlots(h, nil, step)

	require.NotEmpty(t, slots)
	first, _ := barber.ParseClock(slots[0].Time)
	assert.Equal(t, h.Start, first)

	prev := barber.Clock(-1)
	for _, s := range slots {
		c, err := barber.ParseClock(s.Time)
		require.NoError(t, err)
		assert.Greater(t, c, prev, "slots must be strictly increasing")
		assert.Less(t, c, h.End)
		assert.True(t, s.Available)
		prev = c
	}
}

func TestDayAvailability_DayOff(t *testing.T) {
	week := barber.WeeklyHours{barber.Monday: hours(t, "09:00", "12:00")}
	sunday := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)

	got := DayAvailability(week, sunday, nil, DefaultSlotDuration)

	assert.False(t, got.Available)
	assert.Equal(t, ReasonDayOff, got.Reason)
	assert.Empty(t, got.Slots)
	assert.Equal(t, "2026-10-25", got.Date)
}

func TestDayAvailability_WorkingDay(t *testing.T) {
	week := barber.WeeklyHours{barber.Monday: hours(t, "09:00", "12:00")}
	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	got := DayAvailability(week, monday, nil, DefaultSlotDuration)

	assert.True(t, got.Available)
	assert.Len(t, got.Slots, 6)
}
