package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/noah-isme/uni-registrar-api/internal/models"
)

// CourseRepository stores the course catalog keyed by normalized code.
type CourseRepository struct {
	mu      sync.RWMutex
	courses map[string]*models.Course
}

// NewCourseRepository constructs an empty catalog.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{courses: make(map[string]*models.Course)}
}

// Save inserts or replaces a course under its normalized code.
func (r *CourseRepository) Save(course *models.Course) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses[course.Code] = course
}

// FindByCode looks up a course; the code is normalized before comparison, so
// lookups are case and whitespace insensitive.
func (r *CourseRepository) FindByCode(code string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	course, ok := r.courses[models.NormalizeCourseCode(code)]
	if !ok {
		return nil, ErrNotFound
	}
	return course, nil
}

// Delete removes a course from the catalog. Existing offerings keep their
// own course snapshot, so removal does not cascade.
func (r *CourseRepository) Delete(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	normalized := models.NormalizeCourseCode(code)
	if _, ok := r.courses[normalized]; !ok {
		return ErrNotFound
	}
	delete(r.courses, normalized)
	return nil
}

// List returns all courses sorted by code.
func (r *CourseRepository) List() []*models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Course, 0, len(r.courses))
	for _, course := range r.courses {
		out = append(out, course)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].Code, out[j].Code) < 0
	})
	return out
}
