package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uni-registrar-api/internal/dto"
	"github.com/noah-isme/uni-registrar-api/internal/models"
	"github.com/noah-isme/uni-registrar-api/internal/service"
	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
	"github.com/noah-isme/uni-registrar-api/pkg/response"
)

type registrationEngine interface {
	Register(studentID, offeringKey string) service.Result
	Withdraw(studentID, offeringKey string) service.Result
	RegisteredOfferingsForSemester(student *models.Student, semester string) []*models.CourseOffering
	RegisteredCreditsForSemester(student *models.Student, semester string) int
}

type studentResolver interface {
	FindByID(id string) (*models.Student, error)
}

type registrationRecorder interface {
	RecordRegistration(accepted bool)
	RecordWithdrawal(accepted bool)
}

// RegistrationRequest is the payload for register/withdraw calls.
type RegistrationRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	OfferingKey string `json:"offering_key" binding:"required"`
}

// RegistrationHandler exposes the registration engine. Business-rule
// rejections are 200 responses carrying the result payload; only malformed
// requests produce error envelopes.
type RegistrationHandler struct {
	engine   registrationEngine
	students studentResolver
	metrics  registrationRecorder
}

// NewRegistrationHandler constructs RegistrationHandler.
func NewRegistrationHandler(engine registrationEngine, students studentResolver, metrics registrationRecorder) *RegistrationHandler {
	return &RegistrationHandler{engine: engine, students: students, metrics: metrics}
}

// Register godoc
// @Summary Register a student into a course offering
// @Tags Registrations
// @Accept json
// @Produce json
// @Param payload body RegistrationRequest true "Registration payload"
// @Success 200 {object} response.Envelope
// @Router /registrations [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result := h.engine.Register(req.StudentID, req.OfferingKey)
	if h.metrics != nil {
		h.metrics.RecordRegistration(result.Success)
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Withdraw godoc
// @Summary Withdraw a student from a course offering
// @Tags Registrations
// @Accept json
// @Produce json
// @Param payload body RegistrationRequest true "Withdrawal payload"
// @Success 200 {object} response.Envelope
// @Router /registrations/withdraw [post]
func (h *RegistrationHandler) Withdraw(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result := h.engine.Withdraw(req.StudentID, req.OfferingKey)
	if h.metrics != nil {
		h.metrics.RecordWithdrawal(result.Success)
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// ScheduleResponse lists a student's registrations for one semester.
type ScheduleResponse struct {
	StudentID    string                `json:"student_id"`
	Semester     string                `json:"semester"`
	Offerings    []dto.OfferingSummary `json:"offerings"`
	TotalCredits int                   `json:"total_credits"`
}

// Schedule godoc
// @Summary Show a student's registered offerings for a semester
// @Tags Registrations
// @Produce json
// @Param id path string true "Student ID"
// @Param semester query string true "Semester label"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/schedule [get]
func (h *RegistrationHandler) Schedule(c *gin.Context) {
	student, err := h.students.FindByID(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "student not found"))
		return
	}
	semester := c.Query("semester")
	if semester == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "semester is required"))
		return
	}
	offerings := h.engine.RegisteredOfferingsForSemester(student, semester)
	summaries := make([]dto.OfferingSummary, 0, len(offerings))
	for _, offering := range offerings {
		summaries = append(summaries, dto.NewOfferingSummary(offering))
	}
	resp := ScheduleResponse{
		StudentID:    student.ID,
		Semester:     semester,
		Offerings:    summaries,
		TotalCredits: h.engine.RegisteredCreditsForSemester(student, semester),
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
