package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const (
	DefaultSlotDuration = 30 * time.Minute

	ReasonDayOff = "Barber doesn't work on this day"
)

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type Availability struct {
	Date      string     `json:"date"`
	Barber    string     `json:"barber"`
	Available bool       `json:"available"`
	Reason    string     `json:"reason,omitempty"`
	Slots     []TimeSlot `json:"available_slots"`
}

// ComputeSlots partitions [hours.Start, hours.End) into steps of slot
// duration. The last slot may extend past End. A slot is taken when a
// blocking appointment starts inside it; the booked service's length does
// not matter.
func ComputeSlots(hours barber.Hours, appointments []models.Appointment, step time.Duration) []TimeSlot {
	if step < time.Minute {
		step = DefaultSlotDuration
	}

	starts := make([]barber.Clock, 0, len(appointments))
	for _, ap := range appointments {
		if !Status(ap.Status).IsBlocking() {
			continue
		}
		t, err := barber.ParseClock(ap.AppointmentTime)
		if err != nil {
			continue
		}
		starts = append(starts, t)
	}

	var slots []TimeSlot
	for cur := hours.Start; cur < hours.End; cur = cur.Add(step) {
		end := cur.Add(step)
		free := true
		for _, t := range starts {
			if cur <= t && t < end {
				free = false
				break
			}
		}
		slots = append(slots, TimeSlot{Time: cur.String(), Available: free})
	}
	return slots
}

// DayAvailability evaluates one date against a barber's week.
func DayAvailability(week barber.WeeklyHours, date time.Time, appointments []models.Appointment, step time.Duration) Availability {
	out := Availability{Date: date.Format("2006-01-02")}

	hours, ok := week.On(barber.WeekdayOf(date))
	if !ok {
		out.Reason = ReasonDayOff
		out.Slots = []TimeSlot{}
		return out
	}

	out.Available = true
	out.Slots = ComputeSlots(hours, appointments, step)
	if out.Slots == nil {
		out.Slots = []TimeSlot{}
	}
	return out
}
