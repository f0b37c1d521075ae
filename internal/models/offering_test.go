package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCourse(t *testing.T) *Course {
	t.Helper()
	course, err := NewCourse("CS101", "Programming I", 3, nil)
	require.NoError(t, err)
	return course
}

func TestOfferingKey(t *testing.T) {
	assert.Equal(t, "Spring-2026:CS101", OfferingKey(" Spring-2026 ", " cs101 "))
}

func TestNewCourseOfferingDefaultsOpen(t *testing.T) {
	offering, err := NewCourseOffering("Spring-2026", newTestCourse(t), 30, nil)
	require.NoError(t, err)

	assert.True(t, offering.Open)
	assert.Equal(t, "Spring-2026:CS101", offering.Key())
}

func TestNewCourseOfferingValidation(t *testing.T) {
	course := newTestCourse(t)

	_, err := NewCourseOffering("  ", course, 30, nil)
	assert.Error(t, err)

	_, err = NewCourseOffering("Spring-2026", nil, 30, nil)
	assert.Error(t, err)

	_, err = NewCourseOffering("Spring-2026", course, -1, nil)
	assert.Error(t, err)
}

func TestOfferingEnrollRespectsSeatLimit(t *testing.T) {
	offering, err := NewCourseOffering("Spring-2026", newTestCourse(t), 2, nil)
	require.NoError(t, err)

	assert.True(t, offering.Enroll("S1"))
	assert.True(t, offering.Enroll("S2"))
	assert.False(t, offering.HasSeatAvailable())
	assert.False(t, offering.Enroll("S3"))
	assert.Equal(t, 2, offering.EnrolledCount())
}

func TestOfferingSeatLimitZeroIsUnlimited(t *testing.T) {
	offering, err := NewCourseOffering("Spring-2026", newTestCourse(t), 0, nil)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.True(t, offering.HasSeatAvailable())
		assert.True(t, offering.Enroll(fmt.Sprintf("S%d", i)))
	}
	assert.True(t, offering.HasSeatAvailable())
	assert.Equal(t, "100/unlimited", offering.SeatsDisplay())
}

func TestOfferingEnrollRejectsClosedAndDuplicate(t *testing.T) {
	offering, err := NewCourseOffering("Spring-2026", newTestCourse(t), 30, nil)
	require.NoError(t, err)

	assert.True(t, offering.Enroll("S1"))
	assert.False(t, offering.Enroll("S1"))
	assert.Equal(t, 1, offering.EnrolledCount())

	offering.Open = false
	assert.False(t, offering.Enroll("S2"))
}

func TestOfferingWithdraw(t *testing.T) {
	offering, err := NewCourseOffering("Spring-2026", newTestCourse(t), 30, nil)
	require.NoError(t, err)

	assert.False(t, offering.Withdraw("S1"))
	assert.True(t, offering.Enroll("S1"))
	assert.True(t, offering.Withdraw("S1"))
	assert.False(t, offering.IsStudentEnrolled("S1"))
}

func TestOfferingDisplays(t *testing.T) {
	offering, err := NewCourseOffering("Spring-2026", newTestCourse(t), 30, nil)
	require.NoError(t, err)
	assert.Equal(t, "TBA", offering.TimeSlotsDisplay())
	assert.Equal(t, "0/30", offering.SeatsDisplay())

	slot, err := NewTimeSlot(Monday, 9*60, 10*60+15)
	require.NoError(t, err)
	offering.TimeSlots = []TimeSlot{slot}
	assert.Equal(t, "MON 09:00-10:15", offering.TimeSlotsDisplay())
}
