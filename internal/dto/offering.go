package dto

import "github.com/noah-isme/uni-registrar-api/internal/models"

// OfferingSummary is the list-view projection of an offering.
type OfferingSummary struct {
	Key           string `json:"key"`
	Semester      string `json:"semester"`
	CourseCode    string `json:"course_code"`
	CourseTitle   string `json:"course_title"`
	Credits       int    `json:"credits"`
	Open          bool   `json:"open"`
	SeatLimit     int    `json:"seat_limit"`
	EnrolledCount int    `json:"enrolled_count"`
	Seats         string `json:"seats"`
	Schedule      string `json:"schedule"`
}

// OfferingDetail extends the summary with slots and the enrolled roster.
type OfferingDetail struct {
	OfferingSummary
	TimeSlots  []models.TimeSlot `json:"time_slots"`
	StudentIDs []string          `json:"student_ids"`
}

// NewOfferingSummary projects an offering for listings.
func NewOfferingSummary(o *models.CourseOffering) OfferingSummary {
	return OfferingSummary{
		Key:           o.Key(),
		Semester:      o.Semester,
		CourseCode:    o.Course.Code,
		CourseTitle:   o.Course.Title,
		Credits:       o.Course.Credits,
		Open:          o.Open,
		SeatLimit:     o.SeatLimit,
		EnrolledCount: o.EnrolledCount(),
		Seats:         o.SeatsDisplay(),
		Schedule:      o.TimeSlotsDisplay(),
	}
}

// NewOfferingDetail projects an offering with roster information.
func NewOfferingDetail(o *models.CourseOffering) OfferingDetail {
	return OfferingDetail{
		OfferingSummary: NewOfferingSummary(o),
		TimeSlots:       append([]models.TimeSlot(nil), o.TimeSlots...),
		StudentIDs:      o.EnrolledStudentIDs(),
	}
}
