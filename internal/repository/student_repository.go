package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/noah-isme/uni-registrar-api/internal/models"
)

// StudentRepository stores students keyed by trimmed id.
type StudentRepository struct {
	mu       sync.RWMutex
	students map[string]*models.Student
}

// NewStudentRepository constructs an empty student store.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{students: make(map[string]*models.Student)}
}

// Save inserts or replaces a student under their id.
func (r *StudentRepository) Save(student *models.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students[student.ID] = student
}

// FindByID looks up a student by trimmed id.
func (r *StudentRepository) FindByID(id string) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	student, ok := r.students[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrNotFound
	}
	return student, nil
}

// List returns all students sorted by id.
func (r *StudentRepository) List() []*models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Student, 0, len(r.students))
	for _, student := range r.students {
		out = append(out, student)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
