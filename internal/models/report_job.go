package models

import "time"

// ReportType enumerates supported report kinds.
type ReportType string

const (
	ReportTypeTranscript ReportType = "TRANSCRIPT"
	ReportTypeProgress   ReportType = "PROGRESS"
	ReportTypeRoster     ReportType = "ROSTER"
)

// ReportFormat enumerates supported output encodings.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "CSV"
	ReportFormatPDF ReportFormat = "PDF"
)

// ReportStatus tracks job lifecycle.
type ReportStatus string

const (
	ReportStatusQueued     ReportStatus = "QUEUED"
	ReportStatusProcessing ReportStatus = "PROCESSING"
	ReportStatusFinished   ReportStatus = "FINISHED"
	ReportStatusFailed     ReportStatus = "FAILED"
)

// ReportJobParams captures the subject of a report. Transcript and progress
// reports address a student; roster reports address an offering.
type ReportJobParams struct {
	StudentID   string       `json:"student_id,omitempty"`
	OfferingKey string       `json:"offering_key,omitempty"`
	Format      ReportFormat `json:"format"`
}

// ReportJob is an asynchronous report generation request.
type ReportJob struct {
	ID           string          `json:"id"`
	Type         ReportType      `json:"type"`
	Params       ReportJobParams `json:"params"`
	Status       ReportStatus    `json:"status"`
	Progress     int             `json:"progress"`
	ResultURL    *string         `json:"result_url,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	FinishedAt   *time.Time      `json:"finished_at,omitempty"`
}

// Pagination conveys list paging metadata in response envelopes.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
