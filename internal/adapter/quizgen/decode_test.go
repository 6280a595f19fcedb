package quizgen

import (
	"testing"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneQuestion = `[{
  "question": "2+2?",
  "options": {"A": "3", "B": "4", "C": "5", "D": "6", "E": "7"},
  "answer": "B",
  "explanation": "basic",
  "justification": {"A": "no", "B": "yes"}
}]`

func TestDecodeQuestions(t *testing.T) {
	questions, err := DecodeQuestions(oneQuestion)
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, "2+2?", q.Question)
	assert.Equal(t, "4", q.Options["B"])
	assert.Equal(t, "B", q.Answer)
	assert.Equal(t, "basic", q.Explanation)
	assert.Equal(t, map[string]string{"A": "no", "B": "yes"}, q.Justification)
}

func TestDecodeQuestions_EmptyList(t *testing.T) {
	questions, err := DecodeQuestions("[]")
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}

func TestDecodeQuestions_MissingOptionIsAccepted(t *testing.T) {
	questions, err := DecodeQuestions(`[{"question":"q","options":{"A":"a","B":"b","C":"c","D":"d"},"answer":"A","explanation":"e","justification":{}}]`)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	_, ok := questions[0].Options["E"]
	assert.False(t, ok)
}

func TestDecodeQuestions_ScalarValuesBecomeText(t *testing.T) {
	questions, err := DecodeQuestions(`[{"question":"Solve x+1=2","options":{"A":0,"B":1,"C":2,"D":3.50,"E":true},"answer":"B","explanation":"x=1","justification":{"A":"wrong","B":1}}]`)
	require.NoError(t, err)
	require.Len(t, questions, 1)

	assert.Equal(t, map[string]string{"A": "0", "B": "1", "C": "2", "D": "3.50", "E": "true"}, questions[0].Options)
	assert.Equal(t, map[string]string{"A": "wrong", "B": "1"}, questions[0].Justification)

	row := domain.NewOutputRow("Math", "Algebra", questions[0])
	assert.Equal(t, "0", row.OptionA)
	assert.Equal(t, "A: wrong B: 1", row.Justification)
}

func TestDecodeQuestions_Errors(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
	}{
		{"not json", "not json"},
		{"empty text", ""},
		{"object instead of array", `{"question":"q"}`},
		{"missing field", `[{"question":"q","options":{},"answer":"A","explanation":"e"}]`},
		{"wrong field type", `[{"question":1,"options":{},"answer":"A","explanation":"e","justification":{}}]`},
		{"null option", `[{"question":"q","options":{"A":null},"answer":"A","explanation":"e","justification":{}}]`},
		{"object option", `[{"question":"q","options":{"A":{"x":1}},"answer":"A","explanation":"e","justification":{}}]`},
		{"one bad element rejects the list", `[` + oneQuestion[1:len(oneQuestion)-1] + `,{"question":"q"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := DecodeQuestions(tt.candidate)
			require.Error(t, err)
			assert.Nil(t, questions)
			assert.True(t, domain.HasCode(err, domain.CodeDecode))

			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.candidate, domainErr.Context["raw_text"])
		})
	}
}
