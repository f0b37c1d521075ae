package models

import (
	"strings"

	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
)

// Student is a registered learner. Identity is the trimmed id. The track is
// optional: a student without one matches no track electives.
type Student struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	Track                *MajorTrack `json:"track,omitempty"`
	MaxCreditsPerSemester int        `json:"max_credits_per_semester"`

	// completed maps normalized course code to grade. Presence of the key
	// means completed; the grade may be empty.
	completed  map[string]string
	registered map[string]struct{}
}

// NewStudent validates and constructs a Student.
func NewStudent(id, name string, track *MajorTrack, maxCreditsPerSemester int) (*Student, error) {
	if strings.TrimSpace(id) == "" {
		return nil, appErrors.Validation("student id required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, appErrors.Validation("student name required")
	}
	if track != nil && !track.Valid() {
		return nil, appErrors.Validation("unknown major track")
	}
	if maxCreditsPerSemester <= 0 {
		return nil, appErrors.Validation("max credits per semester must be positive")
	}
	return &Student{
		ID:                    strings.TrimSpace(id),
		Name:                  strings.TrimSpace(name),
		Track:                 track,
		MaxCreditsPerSemester: maxCreditsPerSemester,
		completed:             make(map[string]string),
		registered:            make(map[string]struct{}),
	}, nil
}

// SetName replaces the name, rejecting blanks.
func (s *Student) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return appErrors.Validation("student name required")
	}
	s.Name = strings.TrimSpace(name)
	return nil
}

// SetTrack replaces the track. A nil track clears the declaration.
func (s *Student) SetTrack(track *MajorTrack) error {
	if track != nil && !track.Valid() {
		return appErrors.Validation("unknown major track")
	}
	s.Track = track
	return nil
}

// SetMaxCreditsPerSemester replaces the per-semester credit cap.
func (s *Student) SetMaxCreditsPerSemester(max int) error {
	if max <= 0 {
		return appErrors.Validation("max credits per semester must be positive")
	}
	s.MaxCreditsPerSemester = max
	return nil
}

// AddCompletedCourse records a completed course with its grade. Blank codes
// are ignored; re-adding replaces the grade.
func (s *Student) AddCompletedCourse(courseCode, grade string) {
	if strings.TrimSpace(courseCode) == "" {
		return
	}
	s.completed[NormalizeCourseCode(courseCode)] = grade
}

// HasCompleted reports whether the student completed the course, regardless
// of the recorded grade.
func (s *Student) HasCompleted(courseCode string) bool {
	if strings.TrimSpace(courseCode) == "" {
		return false
	}
	_, ok := s.completed[NormalizeCourseCode(courseCode)]
	return ok
}

// CompletedCourses returns a copy of the code→grade map.
func (s *Student) CompletedCourses() map[string]string {
	out := make(map[string]string, len(s.completed))
	for code, grade := range s.completed {
		out[code] = grade
	}
	return out
}

// IsRegisteredForOffering reports membership in the registered key set.
func (s *Student) IsRegisteredForOffering(offeringKey string) bool {
	_, ok := s.registered[offeringKey]
	return ok
}

// RegisterOffering adds an offering key, reporting false for duplicates.
func (s *Student) RegisterOffering(offeringKey string) bool {
	if _, exists := s.registered[offeringKey]; exists {
		return false
	}
	s.registered[offeringKey] = struct{}{}
	return true
}

// WithdrawOffering removes an offering key, reporting whether it was present.
func (s *Student) WithdrawOffering(offeringKey string) bool {
	if _, exists := s.registered[offeringKey]; !exists {
		return false
	}
	delete(s.registered, offeringKey)
	return true
}

// RegisteredOfferingKeys returns a copy of the registered key set.
func (s *Student) RegisteredOfferingKeys() []string {
	keys := make([]string, 0, len(s.registered))
	for key := range s.registered {
		keys = append(keys, key)
	}
	return keys
}

// TrackDisplay renders the track label or a placeholder for undeclared.
func (s *Student) TrackDisplay() string {
	if s.Track == nil {
		return "(no track)"
	}
	return s.Track.DisplayName()
}
