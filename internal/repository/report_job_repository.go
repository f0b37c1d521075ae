package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/uni-registrar-api/internal/models"
)

// UpdateReportJobParams carries the mutable slice of a report job; nil fields
// are left untouched.
type UpdateReportJobParams struct {
	Status       *models.ReportStatus
	Progress     *int
	ResultURL    *string
	ErrorMessage *string
	FinishedAt   *time.Time
}

// ReportJobRepository stores report jobs for the process lifetime. Finished
// jobs are pruned together with their export files by the cleanup loop.
type ReportJobRepository struct {
	mu   sync.RWMutex
	jobs map[string]*models.ReportJob
}

// NewReportJobRepository constructs an empty job store.
func NewReportJobRepository() *ReportJobRepository {
	return &ReportJobRepository{jobs: make(map[string]*models.ReportJob)}
}

// Create assigns an id and stores the job.
func (r *ReportJobRepository) Create(job *models.ReportJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	stored := *job
	r.jobs[job.ID] = &stored
	return nil
}

// GetByID returns a copy of the stored job.
func (r *ReportJobRepository) GetByID(id string) (*models.ReportJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *job
	return &copied, nil
}

// Update applies the non-nil fields to the stored job.
func (r *ReportJobRepository) Update(id string, params UpdateReportJobParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return ErrNotFound
	}
	if params.Status != nil {
		job.Status = *params.Status
	}
	if params.Progress != nil {
		job.Progress = *params.Progress
	}
	if params.ResultURL != nil {
		job.ResultURL = params.ResultURL
	}
	if params.ErrorMessage != nil {
		if *params.ErrorMessage == "" {
			job.ErrorMessage = nil
		} else {
			job.ErrorMessage = params.ErrorMessage
		}
	}
	if params.FinishedAt != nil {
		job.FinishedAt = params.FinishedAt
	}
	return nil
}

// ListFinishedBefore returns finished jobs whose completion predates the
// cutoff, up to limit.
func (r *ReportJobRepository) ListFinishedBefore(cutoff time.Time, limit int) []models.ReportJob {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ReportJob, 0)
	for _, job := range r.jobs {
		if job.Status != models.ReportStatusFinished || job.FinishedAt == nil {
			continue
		}
		if job.FinishedAt.After(cutoff) {
			continue
		}
		out = append(out, *job)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Delete removes a job record.
func (r *ReportJobRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
}
