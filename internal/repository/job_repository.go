package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/repository/models"
	"quiz-forge/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxJobRepository implements domain.JobRepository using sqlx.
type sqlxJobRepository struct {
	db *sqlx.DB
}

// NewJobRepository creates a new instance of sqlxJobRepository.
func NewJobRepository(db *sqlx.DB) domain.JobRepository {
	return &sqlxJobRepository{db: db}
}

const (
	insertJobQuery = `INSERT INTO jobs (id, input_file, output_file, status, rows_read, questions_count, failed_count, error_message, created_at, finished_at)
	          VALUES (:id, :input_file, :output_file, :status, :rows_read, :questions_count, :failed_count, :error_message, :created_at, :finished_at)`

	finishJobQuery = `UPDATE jobs SET status = :status, rows_read = :rows_read, questions_count = :questions_count,
	          failed_count = :failed_count, error_message = :error_message, finished_at = :finished_at
	          WHERE id = :id`

	insertFailureQuery = `INSERT INTO job_failures (job_id, line, subject, subtopic, code, message, raw_text)
	          VALUES (:job_id, :line, :subject, :subtopic, :code, :message, :raw_text)`

	selectJobQuery = `SELECT id, input_file, output_file, status, rows_read, questions_count, failed_count, error_message, created_at, finished_at
	          FROM jobs WHERE id = ?`

	selectFailuresQuery = `SELECT job_id, line, subject, subtopic, code, message, raw_text
	          FROM job_failures WHERE job_id = ? ORDER BY line`
)

// CreateJob inserts a new job row.
func (r *sqlxJobRepository) CreateJob(ctx context.Context, job *domain.Job) error {
	if _, err := r.db.NamedExecContext(ctx, insertJobQuery, toModelJob(job)); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FinishJob updates the job's final state and replaces its failures in one transaction.
func (r *sqlxJobRepository) FinishJob(ctx context.Context, job *domain.Job) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.NamedExecContext(ctx, finishJobQuery, toModelJob(job))
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for job update: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("job %s not found", job.ID))
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM job_failures WHERE job_id = ?`, job.ID); err != nil {
		return fmt.Errorf("failed to clear job failures: %w", err)
	}
	for _, f := range job.Failures {
		if _, err = tx.NamedExecContext(ctx, insertFailureQuery, toModelFailure(job.ID, f)); err != nil {
			return fmt.Errorf("failed to insert job failure for line %d: %w", f.Line, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit job update: %w", err)
	}
	return nil
}

// GetJobByID retrieves a job and its failures.
func (r *sqlxJobRepository) GetJobByID(ctx context.Context, id string) (*domain.Job, error) {
	var job models.Job
	if err := r.db.GetContext(ctx, &job, selectJobQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("job %s not found", id))
		}
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}

	var failures []models.JobFailure
	if err := r.db.SelectContext(ctx, &failures, selectFailuresQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get failures for job %s: %w", id, err)
	}

	return toDomainJob(&job, failures), nil
}

func toModelJob(job *domain.Job) *models.Job {
	return &models.Job{
		ID:             job.ID,
		InputFile:      job.InputFile,
		OutputFile:     job.OutputFile,
		Status:         string(job.Status),
		RowsRead:       job.RowsRead,
		QuestionsCount: job.QuestionsCount,
		FailedCount:    job.FailedCount,
		ErrorMessage:   job.ErrorMessage,
		CreatedAt:      job.CreatedAt,
		FinishedAt:     util.TimePtrToNullTime(job.FinishedAt),
	}
}

func toModelFailure(jobID string, f domain.RowError) *models.JobFailure {
	return &models.JobFailure{
		JobID:    jobID,
		Line:     f.Line,
		Subject:  f.Subject,
		Subtopic: f.Subtopic,
		Code:     string(f.Code),
		Message:  f.Message,
		RawText:  f.RawText,
	}
}

func toDomainJob(m *models.Job, failures []models.JobFailure) *domain.Job {
	job := &domain.Job{
		ID:             m.ID,
		InputFile:      m.InputFile,
		OutputFile:     m.OutputFile,
		Status:         domain.JobStatus(m.Status),
		RowsRead:       m.RowsRead,
		QuestionsCount: m.QuestionsCount,
		FailedCount:    m.FailedCount,
		ErrorMessage:   m.ErrorMessage,
		CreatedAt:      m.CreatedAt,
		FinishedAt:     util.NullTimeToPtr(m.FinishedAt),
		Failures:       make([]domain.RowError, 0, len(failures)),
	}
	for _, f := range failures {
		job.Failures = append(job.Failures, domain.RowError{
			Line:     f.Line,
			Subject:  f.Subject,
			Subtopic: f.Subtopic,
			Code:     domain.ErrorCode(f.Code),
			Message:  f.Message,
			RawText:  f.RawText,
		})
	}
	return job
}
