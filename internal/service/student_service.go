package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uni-registrar-api/internal/dto"
	"github.com/noah-isme/uni-registrar-api/internal/models"
	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
)

type studentStore interface {
	Save(student *models.Student)
	FindByID(id string) (*models.Student, error)
	List() []*models.Student
}

// CreateStudentRequest describes a new student record. Track is the enum
// name and is optional.
type CreateStudentRequest struct {
	ID                    string `json:"id" validate:"required"`
	Name                  string `json:"name" validate:"required"`
	Track                 string `json:"track"`
	MaxCreditsPerSemester int    `json:"max_credits_per_semester" validate:"required,gt=0"`
}

// UpdateStudentRequest edits student attributes; nil fields stay unchanged.
// Setting Track to an empty string clears the declaration.
type UpdateStudentRequest struct {
	Name                  *string `json:"name,omitempty"`
	Track                 *string `json:"track,omitempty"`
	MaxCreditsPerSemester *int    `json:"max_credits_per_semester,omitempty"`
}

// CompleteCourseRequest records a finished course on the transcript.
type CompleteCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required"`
	Grade      string `json:"grade"`
}

// StudentService manages student records.
type StudentService struct {
	students  studentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(students studentStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, validator: validate, logger: logger}
}

// List returns all students sorted by id.
func (s *StudentService) List() []dto.StudentSummary {
	students := s.students.List()
	out := make([]dto.StudentSummary, 0, len(students))
	for _, student := range students {
		out = append(out, dto.NewStudentSummary(student))
	}
	return out
}

// Get resolves one student with full academic state.
func (s *StudentService) Get(id string) (*dto.StudentDetail, error) {
	student, err := s.students.FindByID(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	detail := dto.NewStudentDetail(student)
	return &detail, nil
}

// Create validates and stores a new student.
func (s *StudentService) Create(req CreateStudentRequest) (*dto.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	var track *models.MajorTrack
	if req.Track != "" {
		track = models.ParseTrack(req.Track)
		if track == nil {
			return nil, appErrors.Validation("unknown major track")
		}
	}
	if _, err := s.students.FindByID(req.ID); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "student id already exists")
	}
	student, err := models.NewStudent(req.ID, req.Name, track, req.MaxCreditsPerSemester)
	if err != nil {
		return nil, err
	}
	s.students.Save(student)
	s.logger.Sugar().Infow("student created", "student_id", student.ID)
	detail := dto.NewStudentDetail(student)
	return &detail, nil
}

// Update edits name, track and/or credit cap.
func (s *StudentService) Update(id string, req UpdateStudentRequest) (*dto.StudentDetail, error) {
	student, err := s.students.FindByID(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	if req.Name != nil {
		if err := student.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Track != nil {
		if *req.Track == "" {
			_ = student.SetTrack(nil)
		} else {
			track := models.ParseTrack(*req.Track)
			if track == nil {
				return nil, appErrors.Validation("unknown major track")
			}
			if err := student.SetTrack(track); err != nil {
				return nil, err
			}
		}
	}
	if req.MaxCreditsPerSemester != nil {
		if err := student.SetMaxCreditsPerSemester(*req.MaxCreditsPerSemester); err != nil {
			return nil, err
		}
	}
	detail := dto.NewStudentDetail(student)
	return &detail, nil
}

// CompleteCourse records a completed course with its grade. The code need
// not exist in the catalog; dangling codes are tolerated and simply carry no
// credits until the course (re)appears.
func (s *StudentService) CompleteCourse(id string, req CompleteCourseRequest) (*dto.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid completion payload")
	}
	student, err := s.students.FindByID(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	student.AddCompletedCourse(req.CourseCode, req.Grade)
	detail := dto.NewStudentDetail(student)
	return &detail, nil
}
