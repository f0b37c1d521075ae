package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uni-registrar-api/internal/service"
	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
	"github.com/noah-isme/uni-registrar-api/pkg/response"
)

type graduationEngine interface {
	ComputeProgress(studentID string) service.Progress
	RiskSummary(studentID string, semestersRemaining int) string
}

// GraduationHandler exposes degree-progress endpoints.
type GraduationHandler struct {
	engine graduationEngine
}

// NewGraduationHandler constructs GraduationHandler.
func NewGraduationHandler(engine graduationEngine) *GraduationHandler {
	return &GraduationHandler{engine: engine}
}

// Progress godoc
// @Summary Compute graduation progress for a student
// @Tags Graduation
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/progress [get]
func (h *GraduationHandler) Progress(c *gin.Context) {
	// Unknown students yield a zeroed snapshot rather than a 404; the engine
	// treats the miss as "nothing to report".
	progress := h.engine.ComputeProgress(c.Param("id"))
	response.JSON(c, http.StatusOK, progress, nil)
}

// RiskSummary godoc
// @Summary Project graduation feasibility against a semester budget
// @Tags Graduation
// @Produce json
// @Param id path string true "Student ID"
// @Param semesters query int true "Semesters remaining"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/graduation-risk [get]
func (h *GraduationHandler) RiskSummary(c *gin.Context) {
	semesters, err := strconv.Atoi(c.DefaultQuery("semesters", "0"))
	if err != nil || semesters < 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "semesters must be a non-negative integer"))
		return
	}
	summary := h.engine.RiskSummary(c.Param("id"), semesters)
	if summary == "Student not found." {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "student not found"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"summary": summary}, nil)
}
