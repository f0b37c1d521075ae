package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uni-registrar-api/internal/models"
)

func mustOffering(t *testing.T, semester, code string, seatLimit int) *models.CourseOffering {
	t.Helper()
	offering, err := models.NewCourseOffering(semester, mustCourse(t, code, code+" title", 3), seatLimit, nil)
	require.NoError(t, err)
	return offering
}

func TestOfferingRepositoryFindByKeyTrims(t *testing.T) {
	repo := NewOfferingRepository()
	repo.Save(mustOffering(t, "Spring-2026", "CS101", 30))

	found, err := repo.FindByKey(" Spring-2026:CS101 ")
	require.NoError(t, err)
	assert.Equal(t, "Spring-2026:CS101", found.Key())

	_, err = repo.FindByKey("Fall-2026:CS101")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOfferingRepositoryListBySemester(t *testing.T) {
	repo := NewOfferingRepository()
	repo.Save(mustOffering(t, "Spring-2026", "MA101", 40))
	repo.Save(mustOffering(t, "Spring-2026", "CS101", 30))
	repo.Save(mustOffering(t, "Fall-2026", "CS102", 25))

	spring := repo.ListBySemester(" Spring-2026 ")
	require.Len(t, spring, 2)
	assert.Equal(t, "Spring-2026:CS101", spring[0].Key())
	assert.Equal(t, "Spring-2026:MA101", spring[1].Key())

	assert.Empty(t, repo.ListBySemester("Summer-2026"))
	assert.Len(t, repo.List(), 3)
}

func TestOfferingRepositoryTotalEnrollments(t *testing.T) {
	repo := NewOfferingRepository()
	a := mustOffering(t, "Spring-2026", "CS101", 30)
	b := mustOffering(t, "Spring-2026", "MA101", 40)
	repo.Save(a)
	repo.Save(b)

	assert.Equal(t, 0, repo.TotalEnrollments())

	a.Enroll("S1001")
	a.Enroll("S1002")
	b.Enroll("S1001")
	assert.Equal(t, 3, repo.TotalEnrollments())
}
