package quizgen

import (
	"strings"
	"testing"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	row := domain.InputRow{Subject: "Math", Subtopic: "Algebra", Description: "Linear equations"}

	prompt := BuildPrompt(row, 3)

	assert.Contains(t, prompt, "Write 3 multiple-choice questions")
	assert.Contains(t, prompt, "Subject: Math")
	assert.Contains(t, prompt, "Subtopic: Algebra")
	assert.Contains(t, prompt, "Description: Linear equations")
	assert.Contains(t, prompt, "JSON array of 3 objects")
	assert.Contains(t, prompt, `"justification"`)
}

func TestBuildPrompt_DefaultCount(t *testing.T) {
	prompt := BuildPrompt(domain.InputRow{Subject: "History"}, 0)
	assert.Contains(t, prompt, "Write 3 multiple-choice questions")
}

func TestBuildPrompt_EmptyFields(t *testing.T) {
	prompt := BuildPrompt(domain.InputRow{}, 2)

	assert.Contains(t, prompt, "Subject: \n")
	assert.Contains(t, prompt, "Subtopic: \n")
	assert.True(t, strings.Contains(prompt, "Description: \n"))
}
