package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uni-registrar-api/internal/models"
)

func mustStudent(t *testing.T, id, name string) *models.Student {
	t.Helper()
	student, err := models.NewStudent(id, name, nil, 18)
	require.NoError(t, err)
	return student
}

func TestStudentRepositoryFindByIDTrims(t *testing.T) {
	repo := NewStudentRepository()
	repo.Save(mustStudent(t, "S1001", "Amina"))

	found, err := repo.FindByID(" S1001 ")
	require.NoError(t, err)
	assert.Equal(t, "Amina", found.Name)

	_, err = repo.FindByID("S9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentRepositoryListSorted(t *testing.T) {
	repo := NewStudentRepository()
	repo.Save(mustStudent(t, "S1002", "Omar"))
	repo.Save(mustStudent(t, "S1001", "Amina"))

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "S1001", list[0].ID)
	assert.Equal(t, "S1002", list[1].ID)
}
