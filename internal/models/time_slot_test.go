package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday(" mon ")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)

	_, err = ParseWeekday("SAT")
	assert.Error(t, err)
}

func TestNewTimeSlotValidation(t *testing.T) {
	_, err := NewTimeSlot(Monday, 540, 615)
	assert.NoError(t, err)

	_, err = NewTimeSlot("SAT", 540, 615)
	assert.Error(t, err)

	_, err = NewTimeSlot(Monday, -1, 615)
	assert.Error(t, err)

	_, err = NewTimeSlot(Monday, 615, 615)
	assert.Error(t, err)

	_, err = NewTimeSlot(Monday, 615, 540)
	assert.Error(t, err)
}

func TestTimeSlotConflictsWith(t *testing.T) {
	base, err := NewTimeSlot(Monday, 540, 615)
	require.NoError(t, err)

	cases := []struct {
		name     string
		other    TimeSlot
		conflict bool
	}{
		{name: "identical", other: TimeSlot{Day: Monday, StartMinutes: 540, EndMinutes: 615}, conflict: true},
		{name: "overlap start", other: TimeSlot{Day: Monday, StartMinutes: 600, EndMinutes: 660}, conflict: true},
		{name: "overlap end", other: TimeSlot{Day: Monday, StartMinutes: 500, EndMinutes: 545}, conflict: true},
		{name: "contained", other: TimeSlot{Day: Monday, StartMinutes: 550, EndMinutes: 560}, conflict: true},
		{name: "back to back", other: TimeSlot{Day: Monday, StartMinutes: 615, EndMinutes: 690}, conflict: false},
		{name: "before", other: TimeSlot{Day: Monday, StartMinutes: 480, EndMinutes: 540}, conflict: false},
		{name: "other day", other: TimeSlot{Day: Tuesday, StartMinutes: 540, EndMinutes: 615}, conflict: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.conflict, base.ConflictsWith(tc.other))
			assert.Equal(t, tc.conflict, tc.other.ConflictsWith(base))
		})
	}
}

func TestTimeSlotDisplay(t *testing.T) {
	slot, err := NewTimeSlot(Wednesday, 9*60, 10*60+15)
	require.NoError(t, err)

	assert.Equal(t, "WED 09:00-10:15", slot.Display())
}
