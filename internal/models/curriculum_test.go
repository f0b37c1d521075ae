package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurriculumValidation(t *testing.T) {
	_, err := NewCurriculum(0, 2)
	assert.Error(t, err)

	_, err = NewCurriculum(120, -1)
	assert.Error(t, err)

	_, err = NewCurriculum(120, 0)
	assert.NoError(t, err)
}

func TestCurriculumRequiredCoursesKeepInsertionOrder(t *testing.T) {
	curriculum, err := NewCurriculum(120, 2)
	require.NoError(t, err)

	curriculum.AddRequired("MA101")
	curriculum.AddRequired(" cs101 ")
	curriculum.AddRequired("CS101") // duplicate collapses
	curriculum.AddRequired("")
	curriculum.AddRequired("CS102")

	assert.Equal(t, []string{"MA101", "CS101", "CS102"}, curriculum.RequiredCourseCodes())
	assert.True(t, curriculum.IsRequired(" cs101 "))
	assert.False(t, curriculum.IsRequired("SE210"))
}

func TestCurriculumTrackElectives(t *testing.T) {
	curriculum, err := NewCurriculum(120, 2)
	require.NoError(t, err)

	curriculum.AddTrackElective(TrackSoftwareEngineering, "SE210")
	curriculum.AddTrackElective(TrackSoftwareEngineering, "se210")
	curriculum.AddTrackElective(MajorTrack("ASTROLOGY"), "AS100")

	assert.Equal(t, []string{"SE210"}, curriculum.TrackElectiveCourseCodes(TrackSoftwareEngineering))
	assert.Empty(t, curriculum.TrackElectiveCourseCodes(TrackDataAnalytics))
}

func TestCurriculumInCurriculum(t *testing.T) {
	curriculum, err := NewCurriculum(120, 2)
	require.NoError(t, err)
	curriculum.AddRequired("CS101")
	curriculum.AddTrackElective(TrackSoftwareEngineering, "SE210")

	se := TrackSoftwareEngineering
	da := TrackDataAnalytics

	// Required courses count for everyone, track declared or not.
	assert.True(t, curriculum.InCurriculum(nil, "CS101"))
	assert.True(t, curriculum.InCurriculum(&se, "cs101"))

	// Electives count only for the owning track.
	assert.True(t, curriculum.InCurriculum(&se, "SE210"))
	assert.False(t, curriculum.InCurriculum(&da, "SE210"))
	assert.False(t, curriculum.InCurriculum(nil, "SE210"))

	assert.False(t, curriculum.InCurriculum(&se, ""))
}
