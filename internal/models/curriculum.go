package models

import (
	"strings"

	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
)

// Curriculum is the degree policy: required courses, per-track electives, the
// credit total and the elective minimum. Codes are stored normalized and may
// reference courses that are not (or no longer) in the catalog; dangling
// codes are tolerated and simply never complete.
//
// Required codes keep insertion order so that remaining-requirement listings
// are stable across runs.
type Curriculum struct {
	TotalCreditsToGraduate int
	MinTrackElectives      int

	requiredOrder []string
	requiredSet   map[string]struct{}
	electives     map[MajorTrack][]string
	electiveSets  map[MajorTrack]map[string]struct{}
}

// NewCurriculum validates and constructs an empty Curriculum.
func NewCurriculum(totalCreditsToGraduate, minTrackElectives int) (*Curriculum, error) {
	if totalCreditsToGraduate <= 0 {
		return nil, appErrors.Validation("total credits to graduate must be positive")
	}
	if minTrackElectives < 0 {
		return nil, appErrors.Validation("min track electives must be >= 0")
	}
	return &Curriculum{
		TotalCreditsToGraduate: totalCreditsToGraduate,
		MinTrackElectives:      minTrackElectives,
		requiredSet:            make(map[string]struct{}),
		electives:              make(map[MajorTrack][]string),
		electiveSets:           make(map[MajorTrack]map[string]struct{}),
	}, nil
}

// AddRequired records a required course code. Blank codes are ignored,
// duplicates collapse.
func (c *Curriculum) AddRequired(courseCode string) {
	if strings.TrimSpace(courseCode) == "" {
		return
	}
	code := NormalizeCourseCode(courseCode)
	if _, exists := c.requiredSet[code]; exists {
		return
	}
	c.requiredSet[code] = struct{}{}
	c.requiredOrder = append(c.requiredOrder, code)
}

// AddTrackElective records an elective course code for a track. Unknown
// tracks and blank codes are ignored.
func (c *Curriculum) AddTrackElective(track MajorTrack, courseCode string) {
	if !track.Valid() || strings.TrimSpace(courseCode) == "" {
		return
	}
	code := NormalizeCourseCode(courseCode)
	set, ok := c.electiveSets[track]
	if !ok {
		set = make(map[string]struct{})
		c.electiveSets[track] = set
	}
	if _, exists := set[code]; exists {
		return
	}
	set[code] = struct{}{}
	c.electives[track] = append(c.electives[track], code)
}

// RequiredCourseCodes returns the required codes in insertion order.
func (c *Curriculum) RequiredCourseCodes() []string {
	return append([]string(nil), c.requiredOrder...)
}

// TrackElectiveCourseCodes returns the elective codes for a track in
// insertion order. Unknown tracks yield an empty list.
func (c *Curriculum) TrackElectiveCourseCodes(track MajorTrack) []string {
	return append([]string(nil), c.electives[track]...)
}

// IsRequired reports required-set membership for a normalized code.
func (c *Curriculum) IsRequired(courseCode string) bool {
	_, ok := c.requiredSet[NormalizeCourseCode(courseCode)]
	return ok
}

// InCurriculum reports whether the course counts toward the degree for a
// student on the given track: required, or elective for that track. A nil
// track matches required courses only.
func (c *Curriculum) InCurriculum(track *MajorTrack, courseCode string) bool {
	if strings.TrimSpace(courseCode) == "" {
		return false
	}
	code := NormalizeCourseCode(courseCode)
	if _, ok := c.requiredSet[code]; ok {
		return true
	}
	if track == nil {
		return false
	}
	set, ok := c.electiveSets[*track]
	if !ok {
		return false
	}
	_, ok = set[code]
	return ok
}
