package validation

import (
	"path/filepath"
	"regexp"
	"strings"

	"quiz-forge/internal/domain"
)

const (
	csvExtension     = ".csv"
	maxFilenameBytes = 255
)

var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUploadRequest validates the uploaded file name and the optional
// output file name. An empty output name selects the configured default.
func (v *Validator) ValidateUploadRequest(uploadName, outputName string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(uploadName) == "" {
		errors = append(errors, domain.NewMissingFieldError("file"))
	} else if !hasCSVExtension(uploadName) {
		errors = append(errors, domain.NewInvalidExtensionError("file", uploadName, csvExtension))
	}

	if outputName != "" {
		switch {
		case !isPlainFilename(outputName):
			errors = append(errors, domain.NewInvalidFormatError("output", outputName))
		case !hasCSVExtension(outputName):
			errors = append(errors, domain.NewInvalidExtensionError("output", outputName, csvExtension))
		}
	}

	return errors
}

// ValidateJobID validates a job identifier.
func (v *Validator) ValidateJobID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	return validULID.MatchString(s)
}

func hasCSVExtension(name string) bool {
	return strings.EqualFold(filepath.Ext(name), csvExtension)
}

// isPlainFilename rejects names that carry a directory component.
func isPlainFilename(name string) bool {
	if len(name) > maxFilenameBytes || strings.ContainsAny(name, `/\`) {
		return false
	}
	return name != "." && name != ".."
}
