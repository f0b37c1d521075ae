package service

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/uni-registrar-api/internal/models"
)

type studentDirectory interface {
	FindByID(id string) (*models.Student, error)
}

type offeringDirectory interface {
	FindByKey(key string) (*models.CourseOffering, error)
}

// Result is the outcome of a registration or withdrawal attempt. Business
// rule failures are results, never errors: the caller inspects Success and
// relays Message verbatim.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func failure(message string) Result {
	return Result{Success: false, Message: message}
}

func success(message string) Result {
	return Result{Success: true, Message: message}
}

// RegistrationService validates and applies a student's enrollment into a
// course offering. The rule chain below is ordered and short-circuits on the
// first failure; the order decides which single message the caller sees when
// several rules would fail at once, so it is part of the contract.
type RegistrationService struct {
	students   studentDirectory
	offerings  offeringDirectory
	curriculum *models.Curriculum
	logger     *zap.Logger

	// mu serializes register/withdraw so the offering's enrolled set and the
	// student's registered set always change together.
	mu sync.Mutex
}

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(students studentDirectory, offerings offeringDirectory, curriculum *models.Curriculum, logger *zap.Logger) *RegistrationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{
		students:   students,
		offerings:  offerings,
		curriculum: curriculum,
		logger:     logger,
	}
}

// Register runs the rule chain and, only if every rule passes, performs the
// dual-set enrollment. A failing chain writes nothing.
func (s *RegistrationService) Register(studentID, offeringKey string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.students.FindByID(studentID)
	if err != nil {
		return failure("Student not found.")
	}

	offering, err := s.offerings.FindByKey(offeringKey)
	if err != nil {
		return failure("Course offering not found.")
	}

	course := offering.Course

	if !offering.Open {
		return failure("Course is closed for registration.")
	}

	if student.HasCompleted(course.Code) {
		return failure("Course already completed.")
	}

	if student.IsRegisteredForOffering(offering.Key()) {
		return failure("Already registered for this course.")
	}

	if !s.curriculum.InCurriculum(student.Track, course.Code) {
		return failure("Course is not in the student's curriculum/track.")
	}

	// First missing prerequisite wins; the rest are not aggregated.
	for _, pre := range course.Prerequisites {
		if !student.HasCompleted(pre) {
			return failure("Missing prerequisite: " + pre)
		}
	}

	currentCredits := s.RegisteredCreditsForSemester(student, offering.Semester)
	if currentCredits+course.Credits > student.MaxCreditsPerSemester {
		return failure(fmt.Sprintf("Credit limit exceeded (%d + %d > %d).",
			currentCredits, course.Credits, student.MaxCreditsPerSemester))
	}

	if len(offering.TimeSlots) > 0 {
		for _, existing := range s.RegisteredOfferingsForSemester(student, offering.Semester) {
			for _, a := range existing.TimeSlots {
				for _, b := range offering.TimeSlots {
					if a.ConflictsWith(b) {
						return failure(fmt.Sprintf("Time conflict with %s (%s).",
							existing.Course.Code, a.Display()))
					}
				}
			}
		}
	}

	if !offering.HasSeatAvailable() {
		return failure("No seats available.")
	}

	// Sole mutation point: both sides of the dual-set invariant change here.
	if !offering.Enroll(student.ID) {
		return failure("Could not enroll (course may be closed or full).")
	}
	student.RegisterOffering(offering.Key())

	s.logger.Sugar().Infow("registered", "student_id", student.ID, "offering", offering.Key())
	return success("Registered for " + offering.Key())
}

// Withdraw reverses a registration, updating both sets.
func (s *RegistrationService) Withdraw(studentID, offeringKey string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.students.FindByID(studentID)
	if err != nil {
		return failure("Student not found.")
	}

	offering, err := s.offerings.FindByKey(offeringKey)
	if err != nil {
		return failure("Course offering not found.")
	}

	if !student.IsRegisteredForOffering(offering.Key()) {
		return failure("Student is not registered for this offering.")
	}

	offering.Withdraw(student.ID)
	student.WithdrawOffering(offering.Key())

	s.logger.Sugar().Infow("withdrawn", "student_id", student.ID, "offering", offering.Key())
	return success("Withdrawn from " + offering.Key())
}

// RegisteredCreditsForSemester sums the credits of the student's current
// registrations in the given semester.
func (s *RegistrationService) RegisteredCreditsForSemester(student *models.Student, semester string) int {
	sum := 0
	for _, offering := range s.RegisteredOfferingsForSemester(student, semester) {
		sum += offering.Course.Credits
	}
	return sum
}

// RegisteredOfferingsForSemester resolves the student's registered offering
// keys and filters them to the given semester. Keys that no longer resolve
// are skipped.
func (s *RegistrationService) RegisteredOfferingsForSemester(student *models.Student, semester string) []*models.CourseOffering {
	out := make([]*models.CourseOffering, 0)
	for _, key := range student.RegisteredOfferingKeys() {
		offering, err := s.offerings.FindByKey(key)
		if err != nil {
			continue
		}
		if offering.Semester == semester {
			out = append(out, offering)
		}
	}
	return out
}
