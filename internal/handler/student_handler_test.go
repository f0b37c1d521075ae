package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uni-registrar-api/internal/dto"
	"github.com/noah-isme/uni-registrar-api/internal/repository"
	"github.com/noah-isme/uni-registrar-api/internal/service"
)

func newStudentHandler() *StudentHandler {
	return NewStudentHandler(service.NewStudentService(repository.NewStudentRepository(), nil, nil))
}

func TestStudentHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newStudentHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/students",
		strings.NewReader(`{"id":"S1001","name":"Amina","track":"SOFTWARE_ENGINEERING","max_credits_per_semester":18}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var envelope struct {
		Data dto.StudentDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "S1001", envelope.Data.ID)
	assert.Equal(t, "Software Engineering", envelope.Data.TrackDisplay)
}

func TestStudentHandlerCreateRejectsBadPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newStudentHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(`{not json`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newStudentHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: "S9999"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/students/S9999", nil)

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentHandlerCompleteCourse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	students := repository.NewStudentRepository()
	svc := service.NewStudentService(students, nil, nil)
	_, err := svc.Create(service.CreateStudentRequest{ID: "S1001", Name: "Amina", MaxCreditsPerSemester: 18})
	require.NoError(t, err)
	h := NewStudentHandler(svc)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: "S1001"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/students/S1001/completions",
		strings.NewReader(`{"course_code":"cs101","grade":"A"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CompleteCourse(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data dto.StudentDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, map[string]string{"CS101": "A"}, envelope.Data.CompletedCourses)
}
