package quizgen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"

	"go.uber.org/zap"
)

const defaultClientTimeout = 60 * time.Second

// GeminiClient posts encoded requests to the generateContent endpoint.
type GeminiClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGeminiClient creates a client for cfg. The API key is held by the client
// and appended to every request as the "key" query parameter.
func NewGeminiClient(cfg config.GeminiConfig, logger *zap.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("Gemini model name cannot be empty")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultGeminiBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &GeminiClient{
		endpoint: fmt.Sprintf("%s/models/%s:generateContent", baseURL, url.PathEscape(cfg.Model)),
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// Generate sends body and returns the raw response body for any HTTP status.
// Only failures to complete the exchange are reported, as TRANSPORT_ERROR.
func (c *GeminiClient) Generate(ctx context.Context, body []byte) (string, error) {
	reqURL := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", domain.NewTransportError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL, which includes the key.
		return "", domain.NewTransportError(redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewTransportError(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Generation API returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.Int("body_bytes", len(raw)),
		)
	}
	c.logger.Debug("Generation API call finished",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return string(raw), nil
}

type redactedError struct {
	msg   string
	cause error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.cause }

func redactKey(err error, key string) error {
	if key == "" {
		return err
	}
	msg := strings.ReplaceAll(err.Error(), url.QueryEscape(key), "REDACTED")
	return &redactedError{msg: msg, cause: err}
}
