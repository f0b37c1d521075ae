package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uni-registrar-api/internal/repository"
	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
)

func newOfferingServiceFixture(t *testing.T) (*OfferingService, *repository.OfferingRepository) {
	t.Helper()
	courses := repository.NewCourseRepository()
	courseSvc := NewCourseService(courses, nil, nil)
	_, err := courseSvc.Create(CreateCourseRequest{Code: "CS101", Title: "Programming I", Credits: 3})
	require.NoError(t, err)

	offerings := repository.NewOfferingRepository()
	return NewOfferingService(offerings, courses, nil, nil), offerings
}

func TestOfferingServiceCreate(t *testing.T) {
	svc, _ := newOfferingServiceFixture(t)

	detail, err := svc.Create(CreateOfferingRequest{
		Semester:   "Spring-2026",
		CourseCode: " cs101 ",
		SeatLimit:  30,
		TimeSlots: []TimeSlotRequest{
			{Day: "mon", StartMinutes: 9 * 60, EndMinutes: 10*60 + 15},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Spring-2026:CS101", detail.Key)
	assert.True(t, detail.Open)
	assert.Equal(t, "MON 09:00-10:15", detail.Schedule)
	assert.Equal(t, "0/30", detail.Seats)
}

func TestOfferingServiceCreateRejectsUnknownCourse(t *testing.T) {
	svc, _ := newOfferingServiceFixture(t)

	_, err := svc.Create(CreateOfferingRequest{Semester: "Spring-2026", CourseCode: "XX999"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestOfferingServiceCreateRejectsDuplicateKey(t *testing.T) {
	svc, _ := newOfferingServiceFixture(t)

	_, err := svc.Create(CreateOfferingRequest{Semester: "Spring-2026", CourseCode: "CS101"})
	require.NoError(t, err)

	_, err = svc.Create(CreateOfferingRequest{Semester: "Spring-2026", CourseCode: "cs101"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestOfferingServiceCreateRejectsBadSlot(t *testing.T) {
	svc, _ := newOfferingServiceFixture(t)

	_, err := svc.Create(CreateOfferingRequest{
		Semester:   "Spring-2026",
		CourseCode: "CS101",
		TimeSlots:  []TimeSlotRequest{{Day: "SAT", StartMinutes: 540, EndMinutes: 600}},
	})
	assert.Error(t, err)

	_, err = svc.Create(CreateOfferingRequest{
		Semester:   "Spring-2026",
		CourseCode: "CS101",
		TimeSlots:  []TimeSlotRequest{{Day: "MON", StartMinutes: 600, EndMinutes: 540}},
	})
	assert.Error(t, err)
}

func TestOfferingServiceUpdate(t *testing.T) {
	svc, _ := newOfferingServiceFixture(t)
	_, err := svc.Create(CreateOfferingRequest{Semester: "Spring-2026", CourseCode: "CS101", SeatLimit: 30})
	require.NoError(t, err)

	closed := false
	limit := 0
	detail, err := svc.Update("Spring-2026:CS101", UpdateOfferingRequest{Open: &closed, SeatLimit: &limit})
	require.NoError(t, err)
	assert.False(t, detail.Open)
	assert.Equal(t, "0/unlimited", detail.Seats)

	_, err = svc.Update("Fall-2026:CS101", UpdateOfferingRequest{Open: &closed})
	assert.Error(t, err)
}

func TestOfferingServiceListFiltersBySemester(t *testing.T) {
	svc, _ := newOfferingServiceFixture(t)
	_, err := svc.Create(CreateOfferingRequest{Semester: "Spring-2026", CourseCode: "CS101"})
	require.NoError(t, err)
	_, err = svc.Create(CreateOfferingRequest{Semester: "Fall-2026", CourseCode: "CS101"})
	require.NoError(t, err)

	assert.Len(t, svc.List(""), 2)
	assert.Len(t, svc.List("Spring-2026"), 1)
	assert.Empty(t, svc.List("Summer-2026"))
}
