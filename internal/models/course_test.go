package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCourseCode(t *testing.T) {
	assert.Equal(t, "CS101", NormalizeCourseCode(" cs101 "))
	assert.Equal(t, "CS101", NormalizeCourseCode("CS101"))
	assert.Equal(t, "", NormalizeCourseCode("   "))
}

func TestNewCourseNormalizesPrerequisites(t *testing.T) {
	course, err := NewCourse(" cs102 ", " Programming II ", 3, []string{" cs101 ", "", "  "})
	require.NoError(t, err)

	assert.Equal(t, "CS102", course.Code)
	assert.Equal(t, "Programming II", course.Title)
	assert.Equal(t, []string{"CS101"}, course.Prerequisites)
}

func TestNewCourseValidation(t *testing.T) {
	cases := []struct {
		name    string
		code    string
		title   string
		credits int
	}{
		{name: "blank code", code: "  ", title: "Programming I", credits: 3},
		{name: "blank title", code: "CS101", title: " ", credits: 3},
		{name: "zero credits", code: "CS101", title: "Programming I", credits: 0},
		{name: "negative credits", code: "CS101", title: "Programming I", credits: -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCourse(tc.code, tc.title, tc.credits, nil)
			assert.Error(t, err)
		})
	}
}

func TestCourseSetters(t *testing.T) {
	course, err := NewCourse("CS101", "Programming I", 3, nil)
	require.NoError(t, err)

	assert.Error(t, course.SetTitle(" "))
	assert.NoError(t, course.SetTitle("Intro to Programming"))
	assert.Equal(t, "Intro to Programming", course.Title)

	assert.Error(t, course.SetCredits(0))
	assert.NoError(t, course.SetCredits(4))
	assert.Equal(t, 4, course.Credits)
}

func TestCourseString(t *testing.T) {
	course, err := NewCourse("CS101", "Programming I", 3, nil)
	require.NoError(t, err)

	assert.Equal(t, "CS101 (3 cr): Programming I", course.String())
}
