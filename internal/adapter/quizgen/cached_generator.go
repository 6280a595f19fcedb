package quizgen

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"quiz-forge/internal/cache"
	"quiz-forge/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedQuizGenerator memoizes generated questions per model and prompt.
// Identical rows, within one upload or across uploads, reuse the first
// successful answer until the TTL expires. Failures are never cached.
type CachedQuizGenerator struct {
	next         domain.QuestionGenerator
	cache        domain.Cache
	ttl          time.Duration
	model        string
	numQuestions int
	sfGroup      singleflight.Group
	logger       *zap.Logger
}

// NewCachedQuizGenerator wraps next with cache. model and numQuestions must
// match the wrapped generator; both feed the cache key.
func NewCachedQuizGenerator(next domain.QuestionGenerator, c domain.Cache, ttl time.Duration, model string, numQuestions int, logger *zap.Logger) (*CachedQuizGenerator, error) {
	if next == nil {
		return nil, fmt.Errorf("question generator cannot be nil")
	}
	if c == nil {
		return nil, fmt.Errorf("cache instance cannot be nil for CachedQuizGenerator")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedQuizGenerator{
		next:         next,
		cache:        c,
		ttl:          ttl,
		model:        model,
		numQuestions: numQuestions,
		logger:       logger,
	}, nil
}

// GenerateQuestions returns cached questions for row or delegates to the wrapped generator.
func (g *CachedQuizGenerator) GenerateQuestions(ctx context.Context, row domain.InputRow) ([]domain.GeneratedQuestion, error) {
	cacheKey := cache.GenerateCacheKey("quizgen", "questions", promptHash(g.model, BuildPrompt(row, g.numQuestions)))

	cached, err := g.cache.Get(ctx, cacheKey)
	switch {
	case err == nil:
		var questions []domain.GeneratedQuestion
		errDecode := gob.NewDecoder(bytes.NewReader([]byte(cached))).Decode(&questions)
		if errDecode == nil {
			g.logger.Debug("Generated questions cache hit", zap.String("cache_key", cacheKey))
			return questions, nil
		}
		g.logger.Warn("Failed to decode cached questions, evicting", zap.String("cache_key", cacheKey), zap.Error(errDecode))
		if errDel := g.cache.Delete(ctx, cacheKey); errDel != nil {
			g.logger.Warn("Failed to evict corrupt cache entry", zap.String("cache_key", cacheKey), zap.Error(errDel))
		}
	case errors.Is(err, domain.ErrCacheMiss):
		g.logger.Debug("Generated questions cache miss", zap.String("cache_key", cacheKey))
	default:
		g.logger.Warn("Cache lookup failed, generating without cache", zap.String("cache_key", cacheKey), zap.Error(err))
	}

	res, err, _ := g.sfGroup.Do(cacheKey, func() (interface{}, error) {
		questions, genErr := g.next.GenerateQuestions(ctx, row)
		if genErr != nil {
			return nil, genErr
		}

		var buffer bytes.Buffer
		if errEncode := gob.NewEncoder(&buffer).Encode(questions); errEncode != nil {
			g.logger.Warn("Failed to encode questions for caching", zap.String("cache_key", cacheKey), zap.Error(errEncode))
			return questions, nil
		}
		if errSet := g.cache.Set(ctx, cacheKey, buffer.String(), g.ttl); errSet != nil {
			g.logger.Warn("Failed to cache generated questions", zap.String("cache_key", cacheKey), zap.Error(errSet))
		}
		return questions, nil
	})
	if err != nil {
		return nil, err
	}

	questions, ok := res.([]domain.GeneratedQuestion)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight.Do for generated questions: %T", res)
	}
	return questions, nil
}

// promptHash identifies a request by model and rendered prompt, so a new
// model or prompt template never hits an older entry.
func promptHash(model, prompt string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	return hex.EncodeToString(h.Sum(nil))
}

var _ domain.QuestionGenerator = (*CachedQuizGenerator)(nil)
