package models

import (
	"fmt"
	"strings"

	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
)

// NormalizeCourseCode trims and upper-cases a course code. Every stored code
// and every lookup key goes through this, so " cs101 " and "CS101" always
// address the same course.
func NormalizeCourseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Course is a catalog entry. Identity is the normalized code; title and
// credits are mutable, the code and prerequisite list are not.
type Course struct {
	Code          string   `json:"code"`
	Title         string   `json:"title"`
	Credits       int      `json:"credits"`
	Prerequisites []string `json:"prerequisites"`
}

// NewCourse validates and constructs a Course. Prerequisite codes are
// normalized; blank entries are dropped. Duplicates are kept as stored but
// only ever used as a membership test.
func NewCourse(code, title string, credits int, prerequisites []string) (*Course, error) {
	if strings.TrimSpace(code) == "" {
		return nil, appErrors.Validation("course code required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, appErrors.Validation("course title required")
	}
	if credits <= 0 {
		return nil, appErrors.Validation("credits must be positive")
	}
	course := &Course{
		Code:          NormalizeCourseCode(code),
		Title:         strings.TrimSpace(title),
		Credits:       credits,
		Prerequisites: make([]string, 0, len(prerequisites)),
	}
	for _, p := range prerequisites {
		if strings.TrimSpace(p) == "" {
			continue
		}
		course.Prerequisites = append(course.Prerequisites, NormalizeCourseCode(p))
	}
	return course, nil
}

// SetTitle replaces the title, rejecting blanks.
func (c *Course) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return appErrors.Validation("course title required")
	}
	c.Title = strings.TrimSpace(title)
	return nil
}

// SetCredits replaces the credit value, rejecting non-positive values.
func (c *Course) SetCredits(credits int) error {
	if credits <= 0 {
		return appErrors.Validation("credits must be positive")
	}
	c.Credits = credits
	return nil
}

// String renders the catalog line used by listings and reports.
func (c *Course) String() string {
	return fmt.Sprintf("%s (%d cr): %s", c.Code, c.Credits, c.Title)
}
