package models

import (
	"database/sql"
	"time"
)

// Job represents one pipeline run in the jobs table.
type Job struct {
	ID             string       `db:"id"`
	InputFile      string       `db:"input_file"`
	OutputFile     string       `db:"output_file"`
	Status         string       `db:"status"`
	RowsRead       int          `db:"rows_read"`
	QuestionsCount int          `db:"questions_count"`
	FailedCount    int          `db:"failed_count"`
	ErrorMessage   string       `db:"error_message"`
	CreatedAt      time.Time    `db:"created_at"`
	FinishedAt     sql.NullTime `db:"finished_at"`
}

// JobFailure represents one skipped input row of a job.
type JobFailure struct {
	JobID    string `db:"job_id"`
	Line     int    `db:"line"`
	Subject  string `db:"subject"`
	Subtopic string `db:"subtopic"`
	Code     string `db:"code"`
	Message  string `db:"message"`
	RawText  string `db:"raw_text"`
}
