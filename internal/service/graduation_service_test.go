package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uni-registrar-api/internal/models"
	"github.com/noah-isme/uni-registrar-api/internal/repository"
)

type graduationFixture struct {
	students *repository.StudentRepository
	courses  *repository.CourseRepository
	svc      *GraduationService
}

func newGraduationFixture(t *testing.T) *graduationFixture {
	t.Helper()

	curriculum, err := models.NewCurriculum(120, 2)
	require.NoError(t, err)
	for _, code := range []string{"CS101", "CS102", "CS201", "MA101"} {
		curriculum.AddRequired(code)
	}
	curriculum.AddTrackElective(models.TrackSoftwareEngineering, "SE210")
	curriculum.AddTrackElective(models.TrackDataAnalytics, "DA220")

	students := repository.NewStudentRepository()
	courses := repository.NewCourseRepository()
	for _, code := range []string{"CS101", "CS102", "CS201", "MA101", "SE210", "DA220"} {
		course, err := models.NewCourse(code, code+" title", 3, nil)
		require.NoError(t, err)
		courses.Save(course)
	}

	return &graduationFixture{
		students: students,
		courses:  courses,
		svc:      NewGraduationService(students, courses, curriculum, nil),
	}
}

func (f *graduationFixture) addStudent(t *testing.T, id string, track *models.MajorTrack, maxCredits int, completed ...string) *models.Student {
	t.Helper()
	student, err := models.NewStudent(id, "Student "+id, track, maxCredits)
	require.NoError(t, err)
	for _, code := range completed {
		student.AddCompletedCourse(code, "A")
	}
	f.students.Save(student)
	return student
}

func TestComputeProgressFreshman(t *testing.T) {
	f := newGraduationFixture(t)
	track := models.TrackSoftwareEngineering
	f.addStudent(t, "S1001", &track, 18, "CS101")

	progress := f.svc.ComputeProgress("S1001")

	assert.Equal(t, 3, progress.CompletedCredits)
	assert.Equal(t, 117, progress.RemainingCredits)
	assert.Equal(t, []string{"CS102", "CS201", "MA101"}, progress.RemainingRequiredCourses)
	assert.Equal(t, 0, progress.CompletedTrackElectives)
	assert.Equal(t, 2, progress.RemainingTrackElectives)
	assert.False(t, progress.EligibleToGraduate)
}

func TestComputeProgressUnknownStudentIsZeroed(t *testing.T) {
	f := newGraduationFixture(t)

	progress := f.svc.ComputeProgress("S9999")

	assert.Zero(t, progress.CompletedCredits)
	assert.Zero(t, progress.RemainingCredits)
	assert.Empty(t, progress.RemainingRequiredCourses)
	assert.NotNil(t, progress.RemainingRequiredCourses)
	assert.False(t, progress.EligibleToGraduate)
}

func TestComputeProgressSkipsDanglingCompletedCodes(t *testing.T) {
	f := newGraduationFixture(t)
	f.addStudent(t, "S1001", nil, 18, "CS101", "XX999")

	progress := f.svc.ComputeProgress("S1001")

	// XX999 is not in the catalog; it contributes no credits.
	assert.Equal(t, 3, progress.CompletedCredits)
}

func TestComputeProgressTrackElectivesRequireDeclaredTrack(t *testing.T) {
	f := newGraduationFixture(t)
	f.addStudent(t, "S1001", nil, 18, "SE210")

	progress := f.svc.ComputeProgress("S1001")

	assert.Equal(t, 0, progress.CompletedTrackElectives)
	assert.Equal(t, 2, progress.RemainingTrackElectives)
}

func TestComputeProgressEligible(t *testing.T) {
	curriculum, err := models.NewCurriculum(9, 1)
	require.NoError(t, err)
	curriculum.AddRequired("CS101")
	curriculum.AddTrackElective(models.TrackSoftwareEngineering, "SE210")

	students := repository.NewStudentRepository()
	courses := repository.NewCourseRepository()
	for _, spec := range []struct {
		code    string
		credits int
	}{{"CS101", 3}, {"SE210", 3}, {"MA101", 3}} {
		course, err := models.NewCourse(spec.code, spec.code+" title", spec.credits, nil)
		require.NoError(t, err)
		courses.Save(course)
	}

	track := models.TrackSoftwareEngineering
	student, err := models.NewStudent("S1001", "Amina", &track, 18)
	require.NoError(t, err)
	student.AddCompletedCourse("CS101", "A")
	student.AddCompletedCourse("SE210", "A")
	student.AddCompletedCourse("MA101", "B")
	students.Save(student)

	svc := NewGraduationService(students, courses, curriculum, nil)
	progress := svc.ComputeProgress("S1001")

	assert.Equal(t, 9, progress.CompletedCredits)
	assert.Zero(t, progress.RemainingCredits)
	assert.Empty(t, progress.RemainingRequiredCourses)
	assert.Equal(t, 1, progress.CompletedTrackElectives)
	assert.Zero(t, progress.RemainingTrackElectives)
	assert.True(t, progress.EligibleToGraduate)

	assert.Equal(t, "On track: already eligible to graduate.", svc.RiskSummary("S1001", 1))
}

func TestRiskSummaryUnknownStudent(t *testing.T) {
	f := newGraduationFixture(t)

	assert.Equal(t, "Student not found.", f.svc.RiskSummary("S9999", 4))
}

func TestRiskSummaryRiskAndOK(t *testing.T) {
	f := newGraduationFixture(t)
	track := models.TrackSoftwareEngineering
	f.addStudent(t, "S1001", &track, 18, "CS101")

	assert.Equal(t,
		"RISK: Remaining credits (117) exceed max possible before target (36).",
		f.svc.RiskSummary("S1001", 2))

	assert.Equal(t,
		"OK: Remaining credits (117) are feasible within 7 semester(s) at max 18 credits/semester.",
		f.svc.RiskSummary("S1001", 7))
}
