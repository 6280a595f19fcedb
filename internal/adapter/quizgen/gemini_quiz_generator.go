package quizgen

import (
	"context"

	"quiz-forge/internal/domain"

	"go.uber.org/zap"
)

// ContentGenerator sends an encoded generateContent request and returns the raw body.
type ContentGenerator interface {
	Generate(ctx context.Context, body []byte) (string, error)
}

// GeminiQuizGenerator implements domain.QuestionGenerator on top of the
// generateContent API: prompt, encode, call, extract, decode.
type GeminiQuizGenerator struct {
	client       ContentGenerator
	numQuestions int
	logger       *zap.Logger
}

// NewGeminiQuizGenerator creates a new instance of GeminiQuizGenerator.
func NewGeminiQuizGenerator(client ContentGenerator, numQuestions int, logger *zap.Logger) *GeminiQuizGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiQuizGenerator{
		client:       client,
		numQuestions: numQuestions,
		logger:       logger,
	}
}

// GenerateQuestions runs one topic row through the generation API.
func (g *GeminiQuizGenerator) GenerateQuestions(ctx context.Context, row domain.InputRow) ([]domain.GeneratedQuestion, error) {
	prompt := BuildPrompt(row, g.numQuestions)
	g.logger.Debug("Built generation prompt",
		zap.String("subject", row.Subject),
		zap.String("subtopic", row.Subtopic),
		zap.Int("prompt_length", len(prompt)),
	)

	raw, err := g.client.Generate(ctx, EncodeRequest(prompt))
	if err != nil {
		return nil, err
	}

	text, err := ExtractText(raw)
	if err != nil {
		g.logger.Error("Generation API response is not JSON",
			zap.String("subject", row.Subject),
			zap.String("subtopic", row.Subtopic),
			zap.String("raw_response", raw),
		)
		return nil, err
	}
	if text == "" {
		g.logger.Warn("No candidate text in generation response",
			zap.String("subject", row.Subject),
			zap.String("subtopic", row.Subtopic),
			zap.String("raw_response", raw),
		)
	}

	questions, err := DecodeQuestions(text)
	if err != nil {
		g.logger.Error("Failed to decode generated questions",
			zap.String("subject", row.Subject),
			zap.String("subtopic", row.Subtopic),
			zap.String("raw_text", text),
			zap.Error(err),
		)
		return nil, err
	}

	g.logger.Info("Decoded generated questions",
		zap.String("subject", row.Subject),
		zap.String("subtopic", row.Subtopic),
		zap.Int("count", len(questions)),
	)
	return questions, nil
}

// Static assertion to ensure GeminiQuizGenerator implements QuestionGenerator
var _ domain.QuestionGenerator = (*GeminiQuizGenerator)(nil)
var _ ContentGenerator = (*GeminiClient)(nil)
