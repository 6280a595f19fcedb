package domain

import (
	"sort"
	"strings"
)

// OptionLabels are the option keys copied into the Option A..E columns, in order.
var OptionLabels = []string{"A", "B", "C", "D", "E"}

// OutputHeader is the fixed header row of the generated CSV.
var OutputHeader = []string{
	"Subject",
	"Subtopic",
	"Question",
	"Option A",
	"Option B",
	"Option C",
	"Option D",
	"Option E",
	"Answer",
	"Explanation",
	"Justification",
}

// InputRow is one data line of the uploaded topics CSV.
type InputRow struct {
	Subject     string
	Subtopic    string
	Description string
	// Line is the 1-based line number in the source file.
	Line int
}

// GeneratedQuestion is the structured record the model returns for a topic.
type GeneratedQuestion struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	Answer        string            `json:"answer"`
	Explanation   string            `json:"explanation"`
	Justification map[string]string `json:"justification"`
}

// OutputRow is one flattened line of the generated CSV.
type OutputRow struct {
	Subject       string `json:"subject"`
	Subtopic      string `json:"subtopic"`
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	OptionE       string `json:"option_e"`
	Answer        string `json:"answer"`
	Explanation   string `json:"explanation"`
	Justification string `json:"justification"`
}

// NewOutputRow flattens a generated question together with the subject and
// subtopic of the row it was generated for. A missing option label leaves
// its cell empty.
func NewOutputRow(subject, subtopic string, q GeneratedQuestion) OutputRow {
	options := make([]string, len(OptionLabels))
	for i, label := range OptionLabels {
		options[i] = q.Options[label]
	}
	return OutputRow{
		Subject:       subject,
		Subtopic:      subtopic,
		Question:      q.Question,
		OptionA:       options[0],
		OptionB:       options[1],
		OptionC:       options[2],
		OptionD:       options[3],
		OptionE:       options[4],
		Answer:        q.Answer,
		Explanation:   q.Explanation,
		Justification: JoinJustification(q.Justification),
	}
}

// JoinJustification renders the justification map as "key: value" pairs
// separated by single spaces, ordered by key.
func JoinJustification(justification map[string]string) string {
	keys := make([]string, 0, len(justification))
	for k := range justification {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(justification[k])
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}

// Record returns the row's cells in OutputHeader order.
func (r OutputRow) Record() []string {
	return []string{
		r.Subject,
		r.Subtopic,
		r.Question,
		r.OptionA,
		r.OptionB,
		r.OptionC,
		r.OptionD,
		r.OptionE,
		r.Answer,
		r.Explanation,
		r.Justification,
	}
}
