package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"quiz-forge/internal/domain"
)

// Input column names, matched exactly.
const (
	ColumnSubject     = "Subject"
	ColumnSubtopic    = "Subtopic"
	ColumnDescription = "Description"
)

const utf8BOM = "\ufeff"

// TopicReader reads InputRows from a topics CSV file.
type TopicReader struct {
	file *os.File
	csv  *csv.Reader

	subjectIdx     int
	subtopicIdx    int
	descriptionIdx int
	width          int
}

// OpenTopics opens path and validates its header. The caller must Close the reader.
func OpenTopics(path string) (*TopicReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewIOError("failed to open input file", err).WithContext("path", path)
	}

	r, err := newTopicReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

func newTopicReader(src io.Reader) (*TopicReader, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewInvalidInputError("input file is empty; expected a header row")
	}
	if err != nil {
		return nil, domain.NewIOError("failed to read input header", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range []string{ColumnSubject, ColumnSubtopic, ColumnDescription} {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("input header is missing required columns: %s", strings.Join(missing, ", "))).
			WithContext("header", header)
	}

	r := &TopicReader{
		csv:            cr,
		subjectIdx:     idx[ColumnSubject],
		subtopicIdx:    idx[ColumnSubtopic],
		descriptionIdx: idx[ColumnDescription],
	}
	r.width = max(r.subjectIdx, r.subtopicIdx, r.descriptionIdx) + 1
	return r, nil
}

// Next returns the next data row, or io.EOF when the input is exhausted.
//
// A malformed record is reported as a *RecordError; reading may continue
// after it. Any other error means the input cannot be read further.
func (r *TopicReader) Next() (domain.InputRow, error) {
	record, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.InputRow{}, io.EOF
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return domain.InputRow{}, &RecordError{Line: parseErr.StartLine, Err: parseErr.Err}
		}
		return domain.InputRow{}, domain.NewIOError("failed to read input row", err)
	}

	line, _ := r.csv.FieldPos(0)
	if len(record) < r.width {
		return domain.InputRow{}, &RecordError{
			Line: line,
			Err:  fmt.Errorf("record has %d fields, need at least %d", len(record), r.width),
		}
	}

	return domain.InputRow{
		Subject:     record[r.subjectIdx],
		Subtopic:    record[r.subtopicIdx],
		Description: record[r.descriptionIdx],
		Line:        line,
	}, nil
}

// Close releases the underlying file.
func (r *TopicReader) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// RecordError is a single unusable input record.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
