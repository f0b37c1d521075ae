package models

import (
	"fmt"
	"strings"

	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
)

// OfferingKey builds the composite identifier "<semester>:<courseCode>".
func OfferingKey(semester, courseCode string) string {
	return strings.TrimSpace(semester) + ":" + NormalizeCourseCode(courseCode)
}

// CourseOffering is one scheduled instance of a course in a semester. It
// holds its own Course snapshot taken at creation: later catalog edits or
// removal of the course do not reach existing offerings.
type CourseOffering struct {
	Semester  string     `json:"semester"`
	Course    *Course    `json:"course"`
	Open      bool       `json:"open"`
	SeatLimit int        `json:"seat_limit"`
	TimeSlots []TimeSlot `json:"time_slots"`

	enrolled map[string]struct{}
}

// NewCourseOffering validates and constructs an offering. A seat limit of 0
// means unlimited seats, not zero capacity.
func NewCourseOffering(semester string, course *Course, seatLimit int, slots []TimeSlot) (*CourseOffering, error) {
	if strings.TrimSpace(semester) == "" {
		return nil, appErrors.Validation("semester required")
	}
	if course == nil {
		return nil, appErrors.Validation("course required")
	}
	if seatLimit < 0 {
		return nil, appErrors.Validation("seat limit must be >= 0")
	}
	offering := &CourseOffering{
		Semester:  strings.TrimSpace(semester),
		Course:    course,
		Open:      true,
		SeatLimit: seatLimit,
		TimeSlots: append([]TimeSlot(nil), slots...),
		enrolled:  make(map[string]struct{}),
	}
	return offering, nil
}

// Key returns the composite offering identifier.
func (o *CourseOffering) Key() string {
	return OfferingKey(o.Semester, o.Course.Code)
}

// SetSeatLimit replaces the seat limit, preserving the 0 = unlimited overload.
func (o *CourseOffering) SetSeatLimit(limit int) error {
	if limit < 0 {
		return appErrors.Validation("seat limit must be >= 0")
	}
	o.SeatLimit = limit
	return nil
}

// EnrolledCount returns the number of enrolled students.
func (o *CourseOffering) EnrolledCount() int {
	return len(o.enrolled)
}

// EnrolledStudentIDs returns a copy of the enrolled id set.
func (o *CourseOffering) EnrolledStudentIDs() []string {
	ids := make([]string, 0, len(o.enrolled))
	for id := range o.enrolled {
		ids = append(ids, id)
	}
	return ids
}

// IsStudentEnrolled reports membership in the enrolled set.
func (o *CourseOffering) IsStudentEnrolled(studentID string) bool {
	_, ok := o.enrolled[studentID]
	return ok
}

// HasSeatAvailable reports whether another student can enroll. Limit 0 is
// unlimited.
func (o *CourseOffering) HasSeatAvailable() bool {
	if o.SeatLimit == 0 {
		return true
	}
	return len(o.enrolled) < o.SeatLimit
}

// Enroll adds a student id to the enrolled set. It refuses closed or full
// offerings and reports false for duplicates.
func (o *CourseOffering) Enroll(studentID string) bool {
	if !o.Open || !o.HasSeatAvailable() {
		return false
	}
	if _, exists := o.enrolled[studentID]; exists {
		return false
	}
	o.enrolled[studentID] = struct{}{}
	return true
}

// Withdraw removes a student id from the enrolled set, reporting whether it
// was present.
func (o *CourseOffering) Withdraw(studentID string) bool {
	if _, exists := o.enrolled[studentID]; !exists {
		return false
	}
	delete(o.enrolled, studentID)
	return true
}

// TimeSlotsDisplay renders the slot list, or "TBA" when none are scheduled.
func (o *CourseOffering) TimeSlotsDisplay() string {
	if len(o.TimeSlots) == 0 {
		return "TBA"
	}
	parts := make([]string, len(o.TimeSlots))
	for i, slot := range o.TimeSlots {
		parts[i] = slot.Display()
	}
	return strings.Join(parts, ", ")
}

// SeatsDisplay renders "enrolled/limit" with the unlimited overload spelled out.
func (o *CourseOffering) SeatsDisplay() string {
	if o.SeatLimit == 0 {
		return fmt.Sprintf("%d/unlimited", o.EnrolledCount())
	}
	return fmt.Sprintf("%d/%d", o.EnrolledCount(), o.SeatLimit)
}
