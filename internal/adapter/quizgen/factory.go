package quizgen

import (
	"fmt"
	"time"

	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"

	"go.uber.org/zap"
)

const defaultGenerationTTL = 24 * time.Hour

// NewFromConfig builds the question generator described by cfg. When c is
// non-nil, results are cached for cache_ttls.generation.
func NewFromConfig(cfg *config.Config, c domain.Cache, logger *zap.Logger) (domain.QuestionGenerator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := NewGeminiClient(cfg.Gemini, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	numQuestions := cfg.Generation.QuestionsPerRow
	var generator domain.QuestionGenerator = NewGeminiQuizGenerator(client, numQuestions, logger)

	if c == nil {
		logger.Info("Generation cache disabled")
		return generator, nil
	}

	ttl := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Generation, defaultGenerationTTL)
	cached, err := NewCachedQuizGenerator(generator, c, ttl, cfg.Gemini.Model, numQuestions, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cached generator: %w", err)
	}
	logger.Info("Generation cache enabled", zap.Duration("ttl", ttl), zap.String("model", cfg.Gemini.Model))
	return cached, nil
}
