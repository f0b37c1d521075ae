package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uni-registrar-api/internal/service"
	appErrors "github.com/noah-isme/uni-registrar-api/pkg/errors"
	"github.com/noah-isme/uni-registrar-api/pkg/response"
)

// OfferingHandler exposes course-offering endpoints.
type OfferingHandler struct {
	offerings *service.OfferingService
}

// NewOfferingHandler constructs OfferingHandler.
func NewOfferingHandler(offerings *service.OfferingService) *OfferingHandler {
	return &OfferingHandler{offerings: offerings}
}

// List godoc
// @Summary List offerings, optionally filtered by semester
// @Tags Offerings
// @Produce json
// @Param semester query string false "Semester label"
// @Success 200 {object} response.Envelope
// @Router /offerings [get]
func (h *OfferingHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.offerings.List(c.Query("semester")), nil)
}

// Get godoc
// @Summary Fetch one offering by its composite key
// @Tags Offerings
// @Produce json
// @Param key path string true "Offering key (semester:courseCode)"
// @Success 200 {object} response.Envelope
// @Router /offerings/{key} [get]
func (h *OfferingHandler) Get(c *gin.Context) {
	offering, err := h.offerings.Get(c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, offering, nil)
}

// Create godoc
// @Summary Schedule a course offering
// @Tags Offerings
// @Accept json
// @Produce json
// @Param payload body service.CreateOfferingRequest true "Offering payload"
// @Success 201 {object} response.Envelope
// @Router /offerings [post]
func (h *OfferingHandler) Create(c *gin.Context) {
	var req service.CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	offering, err := h.offerings.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, offering)
}

// Update godoc
// @Summary Open/close an offering or change its seat limit
// @Tags Offerings
// @Accept json
// @Produce json
// @Param key path string true "Offering key (semester:courseCode)"
// @Param payload body service.UpdateOfferingRequest true "Update payload"
// @Success 200 {object} response.Envelope
// @Router /offerings/{key} [patch]
func (h *OfferingHandler) Update(c *gin.Context) {
	var req service.UpdateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	offering, err := h.offerings.Update(c.Param("key"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, offering, nil)
}
