package service

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/uni-registrar-api/internal/models"
	"github.com/noah-isme/uni-registrar-api/pkg/export"
	"github.com/noah-isme/uni-registrar-api/pkg/storage"
)

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	RelativePath string
	Token        string
	URL          string
	Format       models.ReportFormat
	ExpiresAt    time.Time
}

// ExportService builds report datasets from the registry and persists the
// rendered files.
type ExportService struct {
	students   studentDirectory
	courses    courseDirectory
	offerings  offeringDirectory
	graduation *GraduationService
	storage    fileStorage
	csv        csvRenderer
	pdf        pdfRenderer
	signer     *storage.SignedURLSigner
	logger     *zap.Logger
	cfg        ExportConfig
}

// NewExportService constructs an ExportService.
func NewExportService(students studentDirectory, courses courseDirectory, offerings offeringDirectory, graduation *GraduationService, store fileStorage, signer *storage.SignedURLSigner, cfg ExportConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		students:   students,
		courses:    courses,
		offerings:  offerings,
		graduation: graduation,
		storage:    store,
		csv:        csv,
		pdf:        pdf,
		signer:     signer,
		logger:     logger,
		cfg:        cfg,
	}
}

// Generate builds the dataset for the job and stores the rendered export.
func (s *ExportService) Generate(ctx context.Context, job *models.ReportJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}
	dataset, title, err := s.buildDataset(job)
	if err != nil {
		return nil, err
	}

	var payload []byte
	switch job.Params.Format {
	case models.ReportFormatCSV:
		payload, err = s.csv.Render(dataset)
	case models.ReportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
	default:
		err = fmt.Errorf("unsupported format %s", job.Params.Format)
	}
	if err != nil {
		return nil, err
	}

	relPath, err := s.storage.Save(s.buildFilename(job), payload)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.signer.Generate(job.ID, relPath)
	if err != nil {
		return nil, err
	}
	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}

	return &ExportResult{
		RelativePath: relPath,
		Token:        token,
		URL:          fmt.Sprintf("%s/reports/download/%s", prefix, token),
		Format:       job.Params.Format,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseToken validates download token metadata.
func (s *ExportService) ParseToken(token string, allowExpired bool) (jobID, relPath string, expiresAt time.Time, err error) {
	return s.signer.Parse(token, allowExpired)
}

// Open returns a read handle on a stored export file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Delete removes a stored export file.
func (s *ExportService) Delete(relPath string) error {
	return s.storage.Delete(relPath)
}

// Cleanup removes export files older than the TTL.
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) buildDataset(job *models.ReportJob) (export.Dataset, string, error) {
	switch job.Type {
	case models.ReportTypeTranscript:
		return s.transcriptDataset(job.Params.StudentID)
	case models.ReportTypeProgress:
		return s.progressDataset(job.Params.StudentID)
	case models.ReportTypeRoster:
		return s.rosterDataset(job.Params.OfferingKey)
	default:
		return export.Dataset{}, "", fmt.Errorf("unsupported report type %s", job.Type)
	}
}

func (s *ExportService) transcriptDataset(studentID string) (export.Dataset, string, error) {
	student, err := s.students.FindByID(studentID)
	if err != nil {
		return export.Dataset{}, "", fmt.Errorf("student %s not found", studentID)
	}

	completed := student.CompletedCourses()
	codes := make([]string, 0, len(completed))
	for code := range completed {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := make([]map[string]string, 0, len(codes))
	totalCredits := 0
	for _, code := range codes {
		row := map[string]string{
			"Course":  code,
			"Title":   "",
			"Credits": "",
			"Grade":   completed[code],
		}
		if course, err := s.courses.FindByCode(code); err == nil {
			row["Title"] = course.Title
			row["Credits"] = fmt.Sprintf("%d", course.Credits)
			totalCredits += course.Credits
		}
		rows = append(rows, row)
	}
	rows = append(rows, map[string]string{
		"Course":  "TOTAL",
		"Credits": fmt.Sprintf("%d", totalCredits),
	})

	dataset := export.Dataset{
		Headers:  []string{"Course", "Title", "Credits", "Grade"},
		Rows:     rows,
		Subtitle: fmt.Sprintf("%s - %s - %s", student.ID, student.Name, student.TrackDisplay()),
	}
	return dataset, "Transcript", nil
}

func (s *ExportService) progressDataset(studentID string) (export.Dataset, string, error) {
	student, err := s.students.FindByID(studentID)
	if err != nil {
		return export.Dataset{}, "", fmt.Errorf("student %s not found", studentID)
	}
	progress := s.graduation.ComputeProgress(student.ID)

	rows := []map[string]string{
		{"Item": "Completed credits", "Value": fmt.Sprintf("%d", progress.CompletedCredits)},
		{"Item": "Remaining credits", "Value": fmt.Sprintf("%d", progress.RemainingCredits)},
		{"Item": "Remaining required courses", "Value": strings.Join(progress.RemainingRequiredCourses, ", ")},
		{"Item": "Completed track electives", "Value": fmt.Sprintf("%d", progress.CompletedTrackElectives)},
		{"Item": "Remaining track electives", "Value": fmt.Sprintf("%d", progress.RemainingTrackElectives)},
		{"Item": "Eligible to graduate", "Value": fmt.Sprintf("%t", progress.EligibleToGraduate)},
	}

	dataset := export.Dataset{
		Headers:  []string{"Item", "Value"},
		Rows:     rows,
		Subtitle: fmt.Sprintf("%s - %s - %s", student.ID, student.Name, student.TrackDisplay()),
	}
	return dataset, "Graduation Progress", nil
}

func (s *ExportService) rosterDataset(offeringKey string) (export.Dataset, string, error) {
	offering, err := s.offerings.FindByKey(offeringKey)
	if err != nil {
		return export.Dataset{}, "", fmt.Errorf("offering %s not found", offeringKey)
	}

	ids := offering.EnrolledStudentIDs()
	sort.Strings(ids)
	rows := make([]map[string]string, 0, len(ids))
	for _, id := range ids {
		row := map[string]string{"Student ID": id, "Name": ""}
		if student, err := s.students.FindByID(id); err == nil {
			row["Name"] = student.Name
		}
		rows = append(rows, row)
	}

	dataset := export.Dataset{
		Headers:  []string{"Student ID", "Name"},
		Rows:     rows,
		Subtitle: fmt.Sprintf("%s | seats %s | %s", offering.Key(), offering.SeatsDisplay(), offering.TimeSlotsDisplay()),
	}
	return dataset, "Enrollment Roster", nil
}

func (s *ExportService) buildFilename(job *models.ReportJob) string {
	ext := "csv"
	if job.Params.Format == models.ReportFormatPDF {
		ext = "pdf"
	}
	return fmt.Sprintf("%s/%s.%s", strings.ToLower(string(job.Type)), job.ID, ext)
}
