package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uni-registrar-api/internal/models"
	"github.com/noah-isme/uni-registrar-api/internal/repository"
	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
)

type courseStore interface {
	Save(course *models.Course)
	FindByCode(code string) (*models.Course, error)
	Delete(code string) error
	List() []*models.Course
}

// CreateCourseRequest describes a catalog addition.
type CreateCourseRequest struct {
	Code          string   `json:"code" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Credits       int      `json:"credits" validate:"required,gt=0"`
	Prerequisites []string `json:"prerequisites"`
}

// UpdateCourseRequest describes a catalog edit; nil fields stay unchanged.
type UpdateCourseRequest struct {
	Title   *string `json:"title,omitempty"`
	Credits *int    `json:"credits,omitempty"`
}

// CourseService manages the course catalog.
type CourseService struct {
	courses   courseStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs CourseService.
func NewCourseService(courses courseStore, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{courses: courses, validator: validate, logger: logger}
}

// List returns the catalog sorted by code.
func (s *CourseService) List() []*models.Course {
	return s.courses.List()
}

// Get resolves one course by code.
func (s *CourseService) Get(code string) (*models.Course, error) {
	course, err := s.courses.FindByCode(code)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// Create validates and adds a course to the catalog.
func (s *CourseService) Create(req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	if _, err := s.courses.FindByCode(req.Code); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "course code already exists")
	}
	course, err := models.NewCourse(req.Code, req.Title, req.Credits, req.Prerequisites)
	if err != nil {
		return nil, err
	}
	s.courses.Save(course)
	s.logger.Sugar().Infow("course created", "code", course.Code)
	return course, nil
}

// Update edits title and/or credits of an existing course.
func (s *CourseService) Update(code string, req UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courses.FindByCode(code)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if req.Title != nil {
		if err := course.SetTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Credits != nil {
		if err := course.SetCredits(*req.Credits); err != nil {
			return nil, err
		}
	}
	return course, nil
}

// Delete removes a course from the catalog. Offerings that reference the
// course keep their snapshot; removal never cascades.
func (s *CourseService) Delete(code string) error {
	if err := s.courses.Delete(code); err != nil {
		if err == repository.ErrNotFound {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	s.logger.Sugar().Infow("course deleted", "code", models.NormalizeCourseCode(code))
	return nil
}
