package quizgen

import (
	"errors"
	"strings"

	"quiz-forge/internal/domain"

	"github.com/tidwall/gjson"
)

const (
	textPath   = "candidates.0.content.parts.0.text"
	fenceOpen  = "```json"
	fenceClose = "```"
)

// ExtractText returns the model text embedded in a generateContent response,
// with Markdown fences stripped. The body must be valid JSON; a missing path
// yields an empty string so that the failure surfaces when decoding.
func ExtractText(raw string) (string, error) {
	if !gjson.Valid(raw) {
		return "", domain.NewMalformedResponseError(errors.New("response body is not valid JSON"))
	}

	text, ok := lookupText(raw)
	if !ok {
		return "", nil
	}
	return StripFence(text), nil
}

// lookupText reports whether every segment of textPath exists.
func lookupText(raw string) (string, bool) {
	node := gjson.Get(raw, textPath)
	if !node.Exists() {
		return "", false
	}
	return node.String(), true
}

// StripFence removes a leading "```json" and a trailing "```". Nothing else is
// trimmed.
func StripFence(s string) string {
	s = strings.TrimPrefix(s, fenceOpen)
	s = strings.TrimSuffix(s, fenceClose)
	return s
}
