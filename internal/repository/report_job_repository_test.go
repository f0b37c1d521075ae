package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uni-registrar-api/internal/models"
)

func TestReportJobRepositoryCreateAssignsID(t *testing.T) {
	repo := NewReportJobRepository()
	job := &models.ReportJob{Type: models.ReportTypeTranscript, Status: models.ReportStatusQueued}

	require.NoError(t, repo.Create(job))
	assert.NotEmpty(t, job.ID)
	assert.False(t, job.CreatedAt.IsZero())

	stored, err := repo.GetByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusQueued, stored.Status)
}

func TestReportJobRepositoryGetReturnsCopy(t *testing.T) {
	repo := NewReportJobRepository()
	job := &models.ReportJob{Type: models.ReportTypeTranscript, Status: models.ReportStatusQueued}
	require.NoError(t, repo.Create(job))

	first, err := repo.GetByID(job.ID)
	require.NoError(t, err)
	first.Status = models.ReportStatusFailed

	second, err := repo.GetByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusQueued, second.Status)
}

func TestReportJobRepositoryUpdateAppliesNonNilFields(t *testing.T) {
	repo := NewReportJobRepository()
	job := &models.ReportJob{Type: models.ReportTypeTranscript, Status: models.ReportStatusQueued}
	require.NoError(t, repo.Create(job))

	processing := models.ReportStatusProcessing
	progress := 10
	require.NoError(t, repo.Update(job.ID, UpdateReportJobParams{Status: &processing, Progress: &progress}))

	stored, err := repo.GetByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusProcessing, stored.Status)
	assert.Equal(t, 10, stored.Progress)
	assert.Nil(t, stored.ErrorMessage)

	msg := "boom"
	require.NoError(t, repo.Update(job.ID, UpdateReportJobParams{ErrorMessage: &msg}))
	clear := ""
	require.NoError(t, repo.Update(job.ID, UpdateReportJobParams{ErrorMessage: &clear}))

	stored, err = repo.GetByID(job.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ErrorMessage)

	assert.ErrorIs(t, repo.Update("missing", UpdateReportJobParams{}), ErrNotFound)
}

func TestReportJobRepositoryListFinishedBefore(t *testing.T) {
	repo := NewReportJobRepository()
	finished := models.ReportStatusFinished

	old := &models.ReportJob{Type: models.ReportTypeTranscript}
	require.NoError(t, repo.Create(old))
	oldDone := time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Update(old.ID, UpdateReportJobParams{Status: &finished, FinishedAt: &oldDone}))

	recent := &models.ReportJob{Type: models.ReportTypeTranscript}
	require.NoError(t, repo.Create(recent))
	recentDone := time.Now()
	require.NoError(t, repo.Update(recent.ID, UpdateReportJobParams{Status: &finished, FinishedAt: &recentDone}))

	queued := &models.ReportJob{Type: models.ReportTypeTranscript}
	require.NoError(t, repo.Create(queued))

	expired := repo.ListFinishedBefore(time.Now().Add(-24*time.Hour), 10)
	require.Len(t, expired, 1)
	assert.Equal(t, old.ID, expired[0].ID)

	repo.Delete(old.ID)
	_, err := repo.GetByID(old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
