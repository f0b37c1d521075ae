package dto

import "github.com/noah-isme/uni-registrar-api/internal/models"

// ReportRequest captures POST /reports payload. Transcript and progress
// reports take a student id, roster reports an offering key.
type ReportRequest struct {
	Type        models.ReportType   `json:"type"`
	StudentID   string              `json:"student_id,omitempty"`
	OfferingKey string              `json:"offering_key,omitempty"`
	Format      models.ReportFormat `json:"format"`
}

// ReportJobResponse is returned after enqueueing a report.
type ReportJobResponse struct {
	ID       string              `json:"id"`
	Status   models.ReportStatus `json:"status"`
	Progress int                 `json:"progress"`
}

// ReportStatusResponse exposes job progress metadata.
type ReportStatusResponse struct {
	ID        string              `json:"id"`
	Status    models.ReportStatus `json:"status"`
	Progress  int                 `json:"progress"`
	ResultURL *string             `json:"result_url,omitempty"`
	Error     *string             `json:"error,omitempty"`
}
