package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"quiz-forge/internal/config"
	"quiz-forge/internal/csvio"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/util"

	"go.uber.org/zap"
)

// pipelineService implements the domain.PipelineService interface.
type pipelineService struct {
	generator domain.QuestionGenerator
	jobRepo   domain.JobRepository
	cfg       *config.Config
	logger    *zap.Logger
}

// NewPipelineService creates a new instance of pipelineService.
// jobRepo may be nil, in which case runs are not recorded.
func NewPipelineService(
	generator domain.QuestionGenerator,
	jobRepo domain.JobRepository,
	cfg *config.Config,
	logger *zap.Logger,
) domain.PipelineService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pipelineService{
		generator: generator,
		jobRepo:   jobRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// Process runs every input row through the generator in file order. Rows that
// fail are reported in RunResult.Failed and do not stop the run. An error is
// returned only when the input cannot be read, the output cannot be written,
// or ctx is done; no output file is written in the first and last cases.
func (s *pipelineService) Process(ctx context.Context, inputPath, outputFilename string) (*domain.RunResult, error) {
	result := &domain.RunResult{
		JobID:      util.NewULID(),
		InputFile:  filepath.Base(inputPath),
		OutputFile: s.cfg.OutputPath(outputFilename),
		Succeeded:  []domain.OutputRow{},
		Failed:     []domain.RowError{},
	}
	log := s.logger.With(zap.String("job_id", result.JobID))
	log.Info("Starting question generation",
		zap.String("input_file", inputPath),
		zap.String("output_file", result.OutputFile),
	)

	job := &domain.Job{
		ID:         result.JobID,
		InputFile:  result.InputFile,
		OutputFile: result.OutputFile,
		Status:     domain.JobStatusRunning,
		CreatedAt:  time.Now(),
	}
	s.recordStart(ctx, job)

	if err := s.generateAll(ctx, inputPath, result, log); err != nil {
		log.Error("Question generation aborted", zap.Error(err))
		s.recordFinish(job, result, err)
		return nil, err
	}

	if err := csvio.WriteQuestions(result.OutputFile, result.Succeeded); err != nil {
		log.Error("Failed to write generated questions", zap.Error(err))
		s.recordFinish(job, result, err)
		return nil, err
	}

	log.Info("Question generation finished",
		zap.Int("rows_read", result.RowsRead),
		zap.Int("questions", len(result.Succeeded)),
		zap.Int("failed_rows", len(result.Failed)),
	)
	s.recordFinish(job, result, nil)
	return result, nil
}

// generateAll reads the input to the end, appending to result. The input file
// is closed before it returns.
func (s *pipelineService) generateAll(ctx context.Context, inputPath string, result *domain.RunResult, log *zap.Logger) error {
	reader, err := csvio.OpenTopics(inputPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("generation canceled after %d rows: %w", result.RowsRead, err)
		}

		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var recErr *csvio.RecordError
		if errors.As(err, &recErr) {
			result.RowsRead++
			log.Warn("Skipping malformed input record", zap.Int("line", recErr.Line), zap.Error(recErr.Err))
			result.Failed = append(result.Failed, domain.RowError{
				Line:    recErr.Line,
				Code:    domain.CodeInvalidInput,
				Message: recErr.Error(),
			})
			continue
		}
		if err != nil {
			return err
		}
		result.RowsRead++

		questions, err := s.generator.GenerateQuestions(ctx, row)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("generation canceled at line %d: %w", row.Line, ctxErr)
			}
			rowErr := domain.NewRowError(row, err)
			log.Error("Skipping row after generation failure",
				zap.Int("line", row.Line),
				zap.String("subject", row.Subject),
				zap.String("subtopic", row.Subtopic),
				zap.String("code", string(rowErr.Code)),
				zap.String("raw_text", rowErr.RawText),
				zap.Error(err),
			)
			result.Failed = append(result.Failed, rowErr)
			continue
		}

		if len(questions) == 0 {
			log.Warn("Model returned no questions for row",
				zap.Int("line", row.Line),
				zap.String("subject", row.Subject),
				zap.String("subtopic", row.Subtopic),
			)
		}
		for _, q := range questions {
			result.Succeeded = append(result.Succeeded, domain.NewOutputRow(row.Subject, row.Subtopic, q))
		}
	}
}

func (s *pipelineService) recordStart(ctx context.Context, job *domain.Job) {
	if s.jobRepo == nil {
		return
	}
	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		s.logger.Warn("Failed to record job start", zap.String("job_id", job.ID), zap.Error(err))
	}
}

// recordFinish uses a fresh context so a canceled run is still recorded.
func (s *pipelineService) recordFinish(job *domain.Job, result *domain.RunResult, runErr error) {
	if s.jobRepo == nil {
		return
	}

	now := time.Now()
	job.FinishedAt = &now
	job.RowsRead = result.RowsRead
	job.QuestionsCount = len(result.Succeeded)
	job.FailedCount = len(result.Failed)
	job.Failures = result.Failed
	job.Status = domain.JobStatusCompleted
	if runErr != nil {
		job.Status = domain.JobStatusFailed
		job.ErrorMessage = runErr.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.jobRepo.FinishJob(ctx, job); err != nil {
		s.logger.Warn("Failed to record job result", zap.String("job_id", job.ID), zap.Error(err))
	}
}

var _ domain.PipelineService = (*pipelineService)(nil)
