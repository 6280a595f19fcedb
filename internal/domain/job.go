package domain

import (
	"context"
	"time"
)

// JobStatus is the lifecycle state of a generation run.
type JobStatus string

const (
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Job is the persisted record of one pipeline run.
type Job struct {
	ID             string     `json:"id"`
	InputFile      string     `json:"input_file"`
	OutputFile     string     `json:"output_file"`
	Status         JobStatus  `json:"status"`
	RowsRead       int        `json:"rows_read"`
	QuestionsCount int        `json:"questions_count"`
	FailedCount    int        `json:"failed_count"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
	Failures       []RowError `json:"failures,omitempty"`
}

// JobRepository persists generation runs and their per-row failures.
type JobRepository interface {
	CreateJob(ctx context.Context, job *Job) error
	// FinishJob stores the final counters and status of a job together with its row failures.
	FinishJob(ctx context.Context, job *Job) error
	// GetJobByID returns the job with its failures, or a NOT_FOUND DomainError.
	GetJobByID(ctx context.Context, id string) (*Job, error)
}
