package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/noah-isme/uni-registrar-api/internal/models"
)

// OfferingRepository stores scheduled course offerings keyed by
// "<semester>:<courseCode>".
type OfferingRepository struct {
	mu        sync.RWMutex
	offerings map[string]*models.CourseOffering
}

// NewOfferingRepository constructs an empty offering store.
func NewOfferingRepository() *OfferingRepository {
	return &OfferingRepository{offerings: make(map[string]*models.CourseOffering)}
}

// Save inserts or replaces an offering under its composite key.
func (r *OfferingRepository) Save(offering *models.CourseOffering) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offerings[offering.Key()] = offering
}

// FindByKey looks up an offering by its composite key. The key is trimmed;
// the course-code half is matched as stored (already normalized at creation).
func (r *OfferingRepository) FindByKey(key string) (*models.CourseOffering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	offering, ok := r.offerings[strings.TrimSpace(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return offering, nil
}

// List returns all offerings sorted by key.
func (r *OfferingRepository) List() []*models.CourseOffering {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.CourseOffering, 0, len(r.offerings))
	for _, offering := range r.offerings {
		out = append(out, offering)
	}
	sortOfferings(out)
	return out
}

// ListBySemester returns the offerings of one semester sorted by key.
func (r *OfferingRepository) ListBySemester(semester string) []*models.CourseOffering {
	r.mu.RLock()
	defer r.mu.RUnlock()
	semester = strings.TrimSpace(semester)
	out := make([]*models.CourseOffering, 0)
	for _, offering := range r.offerings {
		if offering.Semester == semester {
			out = append(out, offering)
		}
	}
	sortOfferings(out)
	return out
}

// TotalEnrollments sums enrolled counts across all offerings.
func (r *OfferingRepository) TotalEnrollments() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sum := 0
	for _, offering := range r.offerings {
		sum += offering.EnrolledCount()
	}
	return sum
}

func sortOfferings(offerings []*models.CourseOffering) {
	sort.Slice(offerings, func(i, j int) bool {
		return offerings[i].Key() < offerings[j].Key()
	})
}
