package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeContentGenerator struct {
	response string
	err      error
	calls    int
	lastBody []byte
}

func (f *fakeContentGenerator) Generate(ctx context.Context, body []byte) (string, error) {
	f.calls++
	f.lastBody = body
	return f.response, f.err
}

func envelope(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
		},
	})
	return string(body)
}

func TestGeminiQuizGenerator_GenerateQuestions(t *testing.T) {
	client := &fakeContentGenerator{response: envelope("```json" + oneQuestion + "```")}
	gen := NewGeminiQuizGenerator(client, 2, zap.NewNop())

	row := domain.InputRow{Subject: "Math", Subtopic: "Arithmetic", Description: "Sums"}
	questions, err := gen.GenerateQuestions(context.Background(), row)

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "2+2?", questions[0].Question)
	assert.Equal(t, 1, client.calls)
	assert.Contains(t, string(client.lastBody), "Subject: Math")
	assert.Contains(t, string(client.lastBody), "Write 2 multiple-choice questions")
}

func TestGeminiQuizGenerator_Errors(t *testing.T) {
	tests := []struct {
		name     string
		client   *fakeContentGenerator
		wantCode domain.ErrorCode
	}{
		{
			name:     "transport failure",
			client:   &fakeContentGenerator{err: domain.NewTransportError(errors.New("connection refused"))},
			wantCode: domain.CodeTransport,
		},
		{
			name:     "body is not JSON",
			client:   &fakeContentGenerator{response: "<html>oops</html>"},
			wantCode: domain.CodeMalformedResponse,
		},
		{
			name:     "error envelope without candidates",
			client:   &fakeContentGenerator{response: `{"error":{"code":400,"message":"bad key"}}`},
			wantCode: domain.CodeDecode,
		},
		{
			name:     "model text is not JSON",
			client:   &fakeContentGenerator{response: envelope("Sorry, I cannot help with that.")},
			wantCode: domain.CodeDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGeminiQuizGenerator(tt.client, 3, nil)
			questions, err := gen.GenerateQuestions(context.Background(), domain.InputRow{Subject: "S"})
			require.Error(t, err)
			assert.Nil(t, questions)
			assert.Equal(t, tt.wantCode, domain.CodeOf(err))
		})
	}
}
