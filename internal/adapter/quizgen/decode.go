package quizgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"quiz-forge/internal/domain"
)

// scalarText accepts a JSON string, number or boolean and keeps its text.
// Numbers keep their literal form, so 0 stays "0" and 1.50 stays "1.50".
type scalarText string

func (s *scalarText) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = scalarText(str)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case json.Number:
		*s = scalarText(t.String())
	case bool:
		*s = scalarText(strconv.FormatBool(t))
	default:
		return fmt.Errorf("expected a string, number or boolean, got %s", data)
	}
	return nil
}

// questionRecord is the wire form of domain.GeneratedQuestion.
type questionRecord struct {
	Question      string                `json:"question"`
	Options       map[string]scalarText `json:"options"`
	Answer        string                `json:"answer"`
	Explanation   string                `json:"explanation"`
	Justification map[string]scalarText `json:"justification"`
}

func (r questionRecord) toDomain() domain.GeneratedQuestion {
	return domain.GeneratedQuestion{
		Question:      r.Question,
		Options:       textMap(r.Options),
		Answer:        r.Answer,
		Explanation:   r.Explanation,
		Justification: textMap(r.Justification),
	}
}

func textMap(m map[string]scalarText) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = string(v)
	}
	return out
}

// DecodeQuestions parses the cleaned model text as a list of generated
// questions. The whole list is rejected with a DECODE_ERROR if the text is not
// JSON, is not an array, or any element lacks a required field.
func DecodeQuestions(candidate string) ([]domain.GeneratedQuestion, error) {
	var parsed any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, domain.NewDecodeError(candidate, fmt.Errorf("invalid JSON: %w", err))
	}

	schema, err := questionSchema()
	if err != nil {
		return nil, domain.NewInternalError("question schema unavailable", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, domain.NewDecodeError(candidate, fmt.Errorf("schema validation failed: %w", err))
	}

	var records []questionRecord
	if err := json.Unmarshal([]byte(candidate), &records); err != nil {
		return nil, domain.NewDecodeError(candidate, err)
	}
	questions := make([]domain.GeneratedQuestion, 0, len(records))
	for _, r := range records {
		questions = append(questions, r.toDomain())
	}
	return questions, nil
}
