package dto

import (
	"time"

	"quiz-forge/internal/domain"
)

// UploadResponse is returned after an uploaded topics file has been processed.
type UploadResponse struct {
	Message    string            `json:"message"`
	JobID      string            `json:"job_id"`
	Filename   string            `json:"filename"`
	OutputFile string            `json:"output_file"`
	RowsRead   int               `json:"rows_read"`
	Generated  int               `json:"generated"`
	Failed     []domain.RowError `json:"failed"`
}

// NewUploadResponse summarizes result for the stored file filename.
func NewUploadResponse(filename string, result *domain.RunResult) UploadResponse {
	failed := result.Failed
	if failed == nil {
		failed = []domain.RowError{}
	}
	return UploadResponse{
		Message:    "File uploaded and processed successfully: " + filename,
		JobID:      result.JobID,
		Filename:   filename,
		OutputFile: result.OutputFile,
		RowsRead:   result.RowsRead,
		Generated:  len(result.Succeeded),
		Failed:     failed,
	}
}

// JobResponse is the persisted record of one run.
type JobResponse struct {
	ID             string            `json:"id"`
	InputFile      string            `json:"input_file"`
	OutputFile     string            `json:"output_file"`
	Status         string            `json:"status"`
	RowsRead       int               `json:"rows_read"`
	QuestionsCount int               `json:"questions_count"`
	FailedCount    int               `json:"failed_count"`
	ErrorMessage   string            `json:"error_message,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	FinishedAt     *time.Time        `json:"finished_at,omitempty"`
	Failures       []domain.RowError `json:"failures"`
}

// NewJobResponse converts a domain job.
func NewJobResponse(job *domain.Job) JobResponse {
	failures := job.Failures
	if failures == nil {
		failures = []domain.RowError{}
	}
	return JobResponse{
		ID:             job.ID,
		InputFile:      job.InputFile,
		OutputFile:     job.OutputFile,
		Status:         string(job.Status),
		RowsRead:       job.RowsRead,
		QuestionsCount: job.QuestionsCount,
		FailedCount:    job.FailedCount,
		ErrorMessage:   job.ErrorMessage,
		CreatedAt:      job.CreatedAt,
		FinishedAt:     job.FinishedAt,
		Failures:       failures,
	}
}

// HealthResponse reports service and dependency status.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
