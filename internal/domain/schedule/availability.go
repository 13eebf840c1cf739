package schedule

import "time"

// DateLayout is the calendar-date wire format used by the booking form.
const DateLayout = "2006-01-02"

// IsDateBookable reports whether the weekday of date is one of the shop's
// open days (0=Sunday..6=Saturday). The weekday is derived from the given
// date, never from the current time, so the result is stable for a given
// (date, availableDays) pair.
//
// An empty date is treated as bookable: "a date was provided" is a separate
// validation that runs before this one. An unparsable date is never bookable.
func IsDateBookable(date string, availableDays []int) bool {
	if date == "" {
		return true
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	day := int(t.Weekday())
	for _, d := range availableDays {
		if d == day {
			return true
		}
	}
	return false
}

// DefaultSlot returns the pre-selected time slot: the first configured one.
func DefaultSlot(slots []string) string {
	if len(slots) == 0 {
		return ""
	}
	return slots[0]
}
