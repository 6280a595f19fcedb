package handler

import (
	"os"
	"path/filepath"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/util"
	"quiz-forge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerationHandler handles topic uploads and job lookups
type GenerationHandler struct {
	pipeline  domain.PipelineService
	jobs      domain.JobRepository
	validator *validation.Validator
	uploadDir string
}

// NewGenerationHandler creates a new GenerationHandler instance.
// jobs may be nil when the job store is disabled.
func NewGenerationHandler(pipeline domain.PipelineService, jobs domain.JobRepository, uploadDir string) *GenerationHandler {
	return &GenerationHandler{
		pipeline:  pipeline,
		jobs:      jobs,
		validator: validation.NewValidator(),
		uploadDir: uploadDir,
	}
}

// UploadTopics godoc
// @Summary Upload a topics CSV and generate questions
// @Description Stores the uploaded CSV, generates multiple-choice questions for every row and writes them to the output CSV
// @Tags generation
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Topics CSV with Subject, Subtopic and Description columns"
// @Param output formData string false "Output file name (default generated_questions.csv)"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /upload [post]
func (h *GenerationHandler) UploadTopics(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}
	outputName := c.FormValue("output")
	if errs := h.validator.ValidateUploadRequest(fileHeader.Filename, outputName); len(errs) > 0 {
		return errs
	}

	filename := filepath.Base(fileHeader.Filename)
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return domain.NewIOError("failed to create upload directory", err)
	}
	// Each upload gets its own file so concurrent uploads with the same name
	// never read each other's input.
	dest := filepath.Join(h.uploadDir, util.NewULID()+"_"+filename)
	if err := c.SaveFile(fileHeader, dest); err != nil {
		return domain.NewIOError("failed to store uploaded file", err)
	}
	logger.Get().Info("Stored uploaded topics file",
		zap.String("filename", filename),
		zap.String("stored_as", dest),
		zap.Int64("size", fileHeader.Size),
	)

	result, err := h.pipeline.Process(c.UserContext(), dest, outputName)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewUploadResponse(filename, result))
}

// GetJob godoc
// @Summary Get a generation job
// @Description Returns the status, counters and row failures of a generation run
// @Tags generation
// @Produce json
// @Param id path string true "Job ID (ULID)"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /jobs/{id} [get]
func (h *GenerationHandler) GetJob(c *fiber.Ctx) error {
	if h.jobs == nil {
		return domain.NewNotFoundError("job store is disabled")
	}

	id, ok := c.Locals("validated_job_id").(string)
	if !ok {
		id = c.Params("id")
	}
	job, err := h.jobs.GetJobByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}
