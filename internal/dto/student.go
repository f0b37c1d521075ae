package dto

import "github.com/noah-isme/uni-registrar-api/internal/models"

// StudentSummary is the list-view projection of a student.
type StudentSummary struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Track                 string `json:"track,omitempty"`
	TrackDisplay          string `json:"track_display"`
	MaxCreditsPerSemester int    `json:"max_credits_per_semester"`
}

// StudentDetail extends the summary with academic state.
type StudentDetail struct {
	StudentSummary
	CompletedCourses       map[string]string `json:"completed_courses"`
	RegisteredOfferingKeys []string          `json:"registered_offering_keys"`
}

// NewStudentSummary projects a student for listings.
func NewStudentSummary(s *models.Student) StudentSummary {
	summary := StudentSummary{
		ID:                    s.ID,
		Name:                  s.Name,
		TrackDisplay:          s.TrackDisplay(),
		MaxCreditsPerSemester: s.MaxCreditsPerSemester,
	}
	if s.Track != nil {
		summary.Track = string(*s.Track)
	}
	return summary
}

// NewStudentDetail projects a student with completed courses and current
// registrations.
func NewStudentDetail(s *models.Student) StudentDetail {
	return StudentDetail{
		StudentSummary:         NewStudentSummary(s),
		CompletedCourses:       s.CompletedCourses(),
		RegisteredOfferingKeys: s.RegisteredOfferingKeys(),
	}
}
