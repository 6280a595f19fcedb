package domain

import (
	"context"
	"errors"
)

// QuestionGenerator turns one topic row into zero or more generated questions.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, row InputRow) ([]GeneratedQuestion, error)
}

// RowError records why a single input row produced no output.
type RowError struct {
	Line     int       `json:"line"`
	Subject  string    `json:"subject"`
	Subtopic string    `json:"subtopic"`
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	RawText  string    `json:"raw_text,omitempty"`
}

// NewRowError builds a RowError from the error returned while processing row.
func NewRowError(row InputRow, err error) RowError {
	rowErr := RowError{
		Line:     row.Line,
		Subject:  row.Subject,
		Subtopic: row.Subtopic,
		Code:     CodeOf(err),
		Message:  err.Error(),
	}
	var de *DomainError
	if errors.As(err, &de) && de.Context != nil {
		if raw, ok := de.Context["raw_text"].(string); ok {
			rowErr.RawText = raw
		}
	}
	return rowErr
}

// RunResult is the outcome of processing one input file.
type RunResult struct {
	JobID      string      `json:"job_id"`
	InputFile  string      `json:"input_file"`
	OutputFile string      `json:"output_file"`
	RowsRead   int         `json:"rows_read"`
	Succeeded  []OutputRow `json:"succeeded"`
	Failed     []RowError  `json:"failed"`
}

// PipelineService turns an uploaded topics file into a generated questions file.
type PipelineService interface {
	// Process reads inputPath, generates questions for every row and writes
	// them to outputFilename in the configured output directory.
	Process(ctx context.Context, inputPath, outputFilename string) (*RunResult, error)
}
