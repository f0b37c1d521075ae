package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/uni-registrar-api/internal/models"
)

type courseDirectory interface {
	FindByCode(code string) (*models.Course, error)
}

// Progress is an immutable snapshot of a student's standing against the
// curriculum.
type Progress struct {
	CompletedCredits         int      `json:"completed_credits"`
	RemainingCredits         int      `json:"remaining_credits"`
	RemainingRequiredCourses []string `json:"remaining_required_courses"`
	CompletedTrackElectives  int      `json:"completed_track_electives"`
	RemainingTrackElectives  int      `json:"remaining_track_electives"`
	EligibleToGraduate       bool     `json:"eligible_to_graduate"`
}

// GraduationService computes degree progress and a coarse feasibility
// projection against a target timeline.
type GraduationService struct {
	students   studentDirectory
	courses    courseDirectory
	curriculum *models.Curriculum
	logger     *zap.Logger
}

// NewGraduationService constructs a GraduationService.
func NewGraduationService(students studentDirectory, courses courseDirectory, curriculum *models.Curriculum, logger *zap.Logger) *GraduationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GraduationService{
		students:   students,
		courses:    courses,
		curriculum: curriculum,
		logger:     logger,
	}
}

// ComputeProgress returns the progress snapshot for a student. An unknown
// student yields a zeroed, ineligible snapshot: there is nothing to report,
// which is not an error here.
func (s *GraduationService) ComputeProgress(studentID string) Progress {
	student, err := s.students.FindByID(studentID)
	if err != nil {
		return Progress{RemainingRequiredCourses: []string{}}
	}

	// Completed codes whose course no longer resolves contribute no credits.
	completedCredits := 0
	for code := range student.CompletedCourses() {
		course, err := s.courses.FindByCode(code)
		if err != nil {
			continue
		}
		completedCredits += course.Credits
	}

	remainingRequired := make([]string, 0)
	for _, required := range s.curriculum.RequiredCourseCodes() {
		if !student.HasCompleted(required) {
			remainingRequired = append(remainingRequired, required)
		}
	}

	completedElectives := 0
	if student.Track != nil {
		for _, elective := range s.curriculum.TrackElectiveCourseCodes(*student.Track) {
			if student.HasCompleted(elective) {
				completedElectives++
			}
		}
	}

	remainingElectives := s.curriculum.MinTrackElectives - completedElectives
	if remainingElectives < 0 {
		remainingElectives = 0
	}

	remainingCredits := s.curriculum.TotalCreditsToGraduate - completedCredits
	if remainingCredits < 0 {
		remainingCredits = 0
	}

	eligible := len(remainingRequired) == 0 && remainingElectives == 0 && remainingCredits == 0

	return Progress{
		CompletedCredits:         completedCredits,
		RemainingCredits:         remainingCredits,
		RemainingRequiredCourses: remainingRequired,
		CompletedTrackElectives:  completedElectives,
		RemainingTrackElectives:  remainingElectives,
		EligibleToGraduate:       eligible,
	}
}

// RiskSummary projects whether the remaining credits fit into the given
// number of semesters at the student's credit cap. It is a coarse capacity
// check: prerequisite chains, per-course credit granularity and future
// offering availability are deliberately not modeled.
func (s *GraduationService) RiskSummary(studentID string, semestersRemaining int) string {
	student, err := s.students.FindByID(studentID)
	if err != nil {
		return "Student not found."
	}

	progress := s.ComputeProgress(studentID)
	if progress.EligibleToGraduate {
		return "On track: already eligible to graduate."
	}

	maxPossibleCredits := semestersRemaining * student.MaxCreditsPerSemester
	if progress.RemainingCredits > maxPossibleCredits {
		return fmt.Sprintf("RISK: Remaining credits (%d) exceed max possible before target (%d).",
			progress.RemainingCredits, maxPossibleCredits)
	}

	return fmt.Sprintf("OK: Remaining credits (%d) are feasible within %d semester(s) at max %d credits/semester.",
		progress.RemainingCredits, semestersRemaining, student.MaxCreditsPerSemester)
}
