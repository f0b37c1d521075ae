package models

import (
	"fmt"
	"strings"

	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
)

// Weekday is the teaching day of a time slot. Weekend values are not part of
// the timetable.
type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
)

var teachingDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// ParseWeekday resolves a teaching day from its short name.
func ParseWeekday(raw string) (Weekday, error) {
	name := Weekday(strings.ToUpper(strings.TrimSpace(raw)))
	for _, d := range teachingDays {
		if d == name {
			return d, nil
		}
	}
	return "", appErrors.Validation(fmt.Sprintf("unknown weekday %q", raw))
}

// Valid reports whether the day is a teaching day.
func (d Weekday) Valid() bool {
	for _, candidate := range teachingDays {
		if candidate == d {
			return true
		}
	}
	return false
}

// TimeSlot is an immutable meeting time: a teaching day plus a start/end
// expressed in minutes from midnight, end exclusive.
type TimeSlot struct {
	Day          Weekday `json:"day"`
	StartMinutes int     `json:"start_minutes"`
	EndMinutes   int     `json:"end_minutes"`
}

// NewTimeSlot validates and constructs a TimeSlot.
func NewTimeSlot(day Weekday, startMinutes, endMinutes int) (TimeSlot, error) {
	if !day.Valid() {
		return TimeSlot{}, appErrors.Validation("weekday required")
	}
	if startMinutes < 0 || endMinutes < 0 || startMinutes >= endMinutes {
		return TimeSlot{}, appErrors.Validation("invalid time range")
	}
	return TimeSlot{Day: day, StartMinutes: startMinutes, EndMinutes: endMinutes}, nil
}

// ConflictsWith reports whether two slots overlap: same day and intersecting
// half-open minute intervals.
func (t TimeSlot) ConflictsWith(other TimeSlot) bool {
	if t.Day != other.Day {
		return false
	}
	return t.StartMinutes < other.EndMinutes && other.StartMinutes < t.EndMinutes
}

// Display renders the slot as "DAY HH:MM-HH:MM".
func (t TimeSlot) Display() string {
	return fmt.Sprintf("%s %s-%s", t.Day, formatMinutes(t.StartMinutes), formatMinutes(t.EndMinutes))
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
