package csvio

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"quiz-forge/internal/domain"
)

// WriteQuestions writes the output header followed by rows to path, replacing
// any existing file. Parent directories are created as needed. The rows are
// written to a temporary file in the same directory and renamed into place, so
// readers and concurrent writers only ever see a complete file.
func WriteQuestions(path string, rows []domain.OutputRow) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.NewIOError("failed to create output directory", err).WithContext("path", path)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return domain.NewIOError("failed to create output file", err).WithContext("path", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(domain.OutputHeader); err != nil {
		return domain.NewIOError("failed to write output header", err).WithContext("path", path)
	}
	for _, row := range rows {
		if err := w.Write(row.Record()); err != nil {
			return domain.NewIOError("failed to write output row", err).WithContext("path", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return domain.NewIOError("failed to flush output file", err).WithContext("path", path)
	}
	if err := f.Close(); err != nil {
		return domain.NewIOError("failed to close output file", err).WithContext("path", path)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return domain.NewIOError("failed to set output file mode", err).WithContext("path", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return domain.NewIOError("failed to move output file into place", err).WithContext("path", path)
	}
	return nil
}
