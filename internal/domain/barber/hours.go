package barber

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Hours is one working day, half-open: [Start, End).
type Hours struct {
	Start Clock
	End   Clock
}

// WeeklyHours maps each working day to its hours. A missing key is a day
// off, so "start without end" cannot be represented.
type WeeklyHours map[Weekday]Hours

func (w WeeklyHours) On(day Weekday) (Hours, bool) {
	h, ok := w[day]
	return h, ok
}

// DayInput is the raw request shape for one day.
type DayInput struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// ParseWeeklyHours validates a full week keyed by weekday name. Days not in
// the input are days off.
func ParseWeeklyHours(days map[string]DayInput) (WeeklyHours, error) {
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	byDay := make(map[Weekday]DayInput, len(days))
	for _, k := range keys {
		day, ok := ParseWeekday(k)
		if !ok {
			return nil, httperr.ErrValidation("working_hours", "invalid_weekday",
				fmt.Sprintf("%q is not a weekday.", k))
		}
		if _, dup := byDay[day]; dup {
			return nil, httperr.ErrValidation("working_hours", "invalid_weekday",
				fmt.Sprintf("%s is given more than once.", day))
		}
		byDay[day] = days[k]
	}

	out := WeeklyHours{}
	for _, day := range Weekdays {
		in, ok := byDay[day]
		if !ok {
			continue
		}
		h, working, err := ParseDay(day, in.Start, in.End)
		if err != nil {
			return nil, err
		}
		if working {
			out[day] = h
		}
	}
	return out, nil
}

// ParseDay checks a single day. Blank strings count as absent.
func ParseDay(day Weekday, start, end *string) (Hours, bool, error) {
	s, e := blankToNil(start), blankToNil(end)
	startField, endField := day.String()+"_start", day.String()+"_end"

	switch {
	case s == nil && e == nil:
		return Hours{}, false, nil
	case s != nil && e == nil:
		return Hours{}, false, httperr.ErrValidation(endField, "incomplete_hours",
			fmt.Sprintf("If %s is provided, %s must also be provided.", startField, endField))
	case s == nil && e != nil:
		return Hours{}, false, httperr.ErrValidation(startField, "incomplete_hours",
			fmt.Sprintf("If %s is provided, %s must also be provided.", endField, startField))
	}

	from, err := ParseClock(*s)
	if err != nil {
		return Hours{}, false, httperr.ErrValidation(startField, "invalid_time", "Time must be HH:MM.")
	}
	to, err := ParseClock(*e)
	if err != nil {
		return Hours{}, false, httperr.ErrValidation(endField, "invalid_time", "Time must be HH:MM.")
	}
	if from >= to {
		return Hours{}, false, httperr.ErrValidation(endField, "invalid_range",
			fmt.Sprintf("%s must be after %s.", endField, startField))
	}
	return Hours{Start: from, End: to}, true, nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// HoursFromModels rebuilds the week from stored rows. Rows that no longer
// parse are treated as days off.
func HoursFromModels(rows []models.WorkingHours) WeeklyHours {
	out := WeeklyHours{}
	for _, r := range rows {
		day := Weekday(r.Weekday)
		if !day.Valid() {
			continue
		}
		from, err1 := ParseClock(r.StartTime)
		to, err2 := ParseClock(r.EndTime)
		if err1 != nil || err2 != nil || from >= to {
			continue
		}
		out[day] = Hours{Start: from, End: to}
	}
	return out
}

func HoursToModels(profileID uint, w WeeklyHours) []models.WorkingHours {
	rows := make([]models.WorkingHours, 0, len(w))
	for _, day := range Weekdays {
		h, ok := w[day]
		if !ok {
			continue
		}
		rows = append(rows, models.WorkingHours{
			BarberProfileID: profileID,
			Weekday:         int(day),
			StartTime:       h.Start.String(),
			EndTime:         h.End.String(),
		})
	}
	return rows
}
