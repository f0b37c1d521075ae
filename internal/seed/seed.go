// Package seed loads a small demo dataset so a fresh instance is usable
// without any setup calls.
package seed

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/uni-registrar-api/internal/models"
	"github.com/noah-isme/uni-registrar-api/internal/repository"
)

type courseSeed struct {
	code          string
	title         string
	credits       int
	prerequisites []string
}

type offeringSeed struct {
	courseCode string
	seatLimit  int
	slots      []models.TimeSlot
}

type studentSeed struct {
	id         string
	name       string
	track      models.MajorTrack
	maxCredits int
	completed  map[string]string
}

// Load populates the repositories with the demo catalog, the Spring-2026
// schedule and two students. It is idempotent only in the sense that saving
// the same records twice overwrites them.
func Load(courses *repository.CourseRepository, offerings *repository.OfferingRepository, students *repository.StudentRepository, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	courseSeeds := []courseSeed{
		{code: "CS101", title: "Programming I", credits: 3},
		{code: "CS102", title: "Programming II", credits: 3, prerequisites: []string{"CS101"}},
		{code: "CS201", title: "Data Structures", credits: 3, prerequisites: []string{"CS102"}},
		{code: "MA101", title: "Calculus I", credits: 3},
		{code: "SE210", title: "Software Requirements", credits: 3, prerequisites: []string{"CS102"}},
		{code: "DA220", title: "Intro to Data Analytics", credits: 3, prerequisites: []string{"CS102"}},
		{code: "NS230", title: "Network Fundamentals", credits: 3, prerequisites: []string{"CS101"}},
		{code: "EC240", title: "E-Commerce Systems", credits: 3, prerequisites: []string{"CS101"}},
	}
	for _, cs := range courseSeeds {
		course, err := models.NewCourse(cs.code, cs.title, cs.credits, cs.prerequisites)
		if err != nil {
			return fmt.Errorf("seed course %s: %w", cs.code, err)
		}
		courses.Save(course)
	}

	const semester = "Spring-2026"
	offeringSeeds := []offeringSeed{
		{courseCode: "CS101", seatLimit: 30, slots: []models.TimeSlot{
			slot(models.Monday, 9*60, 10*60+15),
			slot(models.Wednesday, 9*60, 10*60+15),
		}},
		{courseCode: "CS102", seatLimit: 25, slots: []models.TimeSlot{
			slot(models.Tuesday, 11*60, 12*60+15),
			slot(models.Thursday, 11*60, 12*60+15),
		}},
		{courseCode: "CS201", seatLimit: 20, slots: []models.TimeSlot{
			slot(models.Monday, 10*60+30, 11*60+45),
			slot(models.Wednesday, 10*60+30, 11*60+45),
		}},
		{courseCode: "MA101", seatLimit: 40, slots: []models.TimeSlot{
			slot(models.Tuesday, 9*60, 10*60+15),
			slot(models.Thursday, 9*60, 10*60+15),
		}},
		{courseCode: "SE210", seatLimit: 15, slots: []models.TimeSlot{slot(models.Friday, 9*60, 11*60)}},
		{courseCode: "DA220", seatLimit: 15, slots: []models.TimeSlot{slot(models.Friday, 11*60+15, 13*60+15)}},
		{courseCode: "NS230", seatLimit: 15, slots: []models.TimeSlot{slot(models.Friday, 13*60+30, 15*60)}},
		{courseCode: "EC240", seatLimit: 15, slots: []models.TimeSlot{slot(models.Friday, 15*60+15, 17*60)}},
	}
	for _, ofs := range offeringSeeds {
		course, err := courses.FindByCode(ofs.courseCode)
		if err != nil {
			return fmt.Errorf("seed offering %s: %w", ofs.courseCode, err)
		}
		offering, err := models.NewCourseOffering(semester, course, ofs.seatLimit, ofs.slots)
		if err != nil {
			return fmt.Errorf("seed offering %s: %w", ofs.courseCode, err)
		}
		offerings.Save(offering)
	}

	se := models.TrackSoftwareEngineering
	da := models.TrackDataAnalytics
	studentSeeds := []studentSeed{
		{id: "S1001", name: "Amina", track: se, maxCredits: 18, completed: map[string]string{"CS101": "A"}},
		{id: "S1002", name: "Omar", track: da, maxCredits: 15, completed: map[string]string{"CS101": "B", "CS102": "B+"}},
	}
	for i := range studentSeeds {
		ss := studentSeeds[i]
		student, err := models.NewStudent(ss.id, ss.name, &ss.track, ss.maxCredits)
		if err != nil {
			return fmt.Errorf("seed student %s: %w", ss.id, err)
		}
		for code, grade := range ss.completed {
			student.AddCompletedCourse(code, grade)
		}
		students.Save(student)
	}

	logger.Sugar().Infow("sample data loaded",
		"courses", len(courseSeeds),
		"offerings", len(offeringSeeds),
		"students", len(studentSeeds),
	)
	return nil
}

func slot(day models.Weekday, start, end int) models.TimeSlot {
	ts, err := models.NewTimeSlot(day, start, end)
	if err != nil {
		panic(err)
	}
	return ts
}
