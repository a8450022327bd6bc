package booking

import (
	"fmt"
	"strings"
)

// Weekday is one of the clinic's consultation days. Appointments can only be
// placed on these three days.
type Weekday int

const (
	Sunday Weekday = iota
	Tuesday
	Thursday
)

var weekdayNames = [...]string{
	Sunday:   "Sunday",
	Tuesday:  "Tuesday",
	Thursday: "Thursday",
}

func (w Weekday) String() string {
	if w < 0 || int(w) >= len(weekdayNames) {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// Valid reports whether w is one of the three consultation days.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Thursday
}

// Weekdays returns the consultation days in calendar order.
func Weekdays() []Weekday {
	return []Weekday{Sunday, Tuesday, Thursday}
}

// ParseWeekday resolves a display name, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if strings.EqualFold(name, s) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
