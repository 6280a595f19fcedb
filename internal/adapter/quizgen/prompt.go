package quizgen

import (
	"fmt"

	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
)

const questionPrompt = `You are an expert exam author. Write %d multiple-choice questions for the topic below.

Subject: %s
Subtopic: %s
Description: %s

Rules:
1. Every question must be answerable from standard knowledge of the subject and subtopic, scoped by the description.
2. Every question has exactly five options labelled "A", "B", "C", "D" and "E". Exactly one option is correct.
3. "answer" is the label of the correct option.
4. "explanation" explains in one or two sentences why the answer is correct.
5. "justification" has one entry per option label explaining why that option is right or wrong.

Respond with ONLY a JSON array of %d objects and no other text. Each object must look like:
{
  "question": "What is 2 + 2?",
  "options": {"A": "3", "B": "4", "C": "5", "D": "22", "E": "0"},
  "answer": "B",
  "explanation": "Adding two and two gives four.",
  "justification": {"A": "One short.", "B": "Correct sum.", "C": "One too many.", "D": "Concatenation, not addition.", "E": "Not a sum of positives."}
}
`

// BuildPrompt renders the generation prompt for one topic row. Empty fields are
// passed through as-is; numQuestions <= 0 falls back to the default count.
func BuildPrompt(row domain.InputRow, numQuestions int) string {
	if numQuestions <= 0 {
		numQuestions = config.DefaultQuestionsPerRow
	}
	return fmt.Sprintf(questionPrompt, numQuestions, row.Subject, row.Subtopic, row.Description, numQuestions)
}
