package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uni-registrar-api/internal/dto"
	"github.com/noah-isme/uni-registrar-api/internal/models"
	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
)

type offeringStore interface {
	Save(offering *models.CourseOffering)
	FindByKey(key string) (*models.CourseOffering, error)
	List() []*models.CourseOffering
	ListBySemester(semester string) []*models.CourseOffering
}

// TimeSlotRequest is one meeting time in an offering payload.
type TimeSlotRequest struct {
	Day          string `json:"day" validate:"required"`
	StartMinutes int    `json:"start_minutes" validate:"gte=0"`
	EndMinutes   int    `json:"end_minutes" validate:"gt=0"`
}

// CreateOfferingRequest schedules a course into a semester.
type CreateOfferingRequest struct {
	Semester   string            `json:"semester" validate:"required"`
	CourseCode string            `json:"course_code" validate:"required"`
	SeatLimit  int               `json:"seat_limit" validate:"gte=0"`
	TimeSlots  []TimeSlotRequest `json:"time_slots"`
}

// UpdateOfferingRequest edits offering state; nil fields stay unchanged.
type UpdateOfferingRequest struct {
	Open      *bool `json:"open,omitempty"`
	SeatLimit *int  `json:"seat_limit,omitempty"`
}

// OfferingService manages scheduled course offerings.
type OfferingService struct {
	offerings offeringStore
	courses   courseStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewOfferingService constructs OfferingService.
func NewOfferingService(offerings offeringStore, courses courseStore, validate *validator.Validate, logger *zap.Logger) *OfferingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OfferingService{offerings: offerings, courses: courses, validator: validate, logger: logger}
}

// List returns offering summaries, optionally filtered to one semester.
func (s *OfferingService) List(semester string) []dto.OfferingSummary {
	var offerings []*models.CourseOffering
	if semester == "" {
		offerings = s.offerings.List()
	} else {
		offerings = s.offerings.ListBySemester(semester)
	}
	out := make([]dto.OfferingSummary, 0, len(offerings))
	for _, offering := range offerings {
		out = append(out, dto.NewOfferingSummary(offering))
	}
	return out
}

// Get resolves one offering by composite key.
func (s *OfferingService) Get(key string) (*dto.OfferingDetail, error) {
	offering, err := s.offerings.FindByKey(key)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course offering not found")
	}
	detail := dto.NewOfferingDetail(offering)
	return &detail, nil
}

// Create validates and schedules an offering. The offering snapshots the
// course object at creation time; later catalog edits do not reach it.
func (s *OfferingService) Create(req CreateOfferingRequest) (*dto.OfferingDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid offering payload")
	}
	course, err := s.courses.FindByCode(req.CourseCode)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	slots := make([]models.TimeSlot, 0, len(req.TimeSlots))
	for _, sr := range req.TimeSlots {
		day, err := models.ParseWeekday(sr.Day)
		if err != nil {
			return nil, err
		}
		slot, err := models.NewTimeSlot(day, sr.StartMinutes, sr.EndMinutes)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	offering, err := models.NewCourseOffering(req.Semester, course, req.SeatLimit, slots)
	if err != nil {
		return nil, err
	}
	if _, err := s.offerings.FindByKey(offering.Key()); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "offering already scheduled for this semester")
	}
	s.offerings.Save(offering)
	s.logger.Sugar().Infow("offering created", "key", offering.Key())
	detail := dto.NewOfferingDetail(offering)
	return &detail, nil
}

// Update toggles the open flag and/or seat limit.
func (s *OfferingService) Update(key string, req UpdateOfferingRequest) (*dto.OfferingDetail, error) {
	offering, err := s.offerings.FindByKey(key)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course offering not found")
	}
	if req.Open != nil {
		offering.Open = *req.Open
	}
	if req.SeatLimit != nil {
		if err := offering.SetSeatLimit(*req.SeatLimit); err != nil {
			return nil, err
		}
	}
	detail := dto.NewOfferingDetail(offering)
	return &detail, nil
}
