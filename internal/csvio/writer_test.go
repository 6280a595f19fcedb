package csvio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteQuestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	rows := []domain.OutputRow{
		domain.NewOutputRow("Math", "Algebra", domain.GeneratedQuestion{
			Question:      "Solve x+1=2",
			Options:       map[string]string{"A": "0", "B": "1", "C": "2", "D": "3", "E": "4"},
			Answer:        "B",
			Explanation:   "x=1",
			Justification: map[string]string{"A": "wrong"},
		}),
	}

	require.NoError(t, WriteQuestions(path, rows))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Subject,Subtopic,Question,Option A,Option B,Option C,Option D,Option E,Answer,Explanation,Justification\n"+
			"Math,Algebra,Solve x+1=2,0,1,2,3,4,B,x=1,A: wrong\n",
		string(content))
}

func TestWriteQuestions_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteQuestions(path, nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Subject,Subtopic,Question,Option A,Option B,Option C,Option D,Option E,Answer,Explanation,Justification\n", string(content))
}

func TestWriteQuestions_QuotesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	row := domain.NewOutputRow("Lit", "Poetry", domain.GeneratedQuestion{
		Question: "Who wrote \"Ode\", and when?",
		Options:  map[string]string{"A": "Keats,\n1819"},
	})

	require.NoError(t, WriteQuestions(path, []domain.OutputRow{row}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, row.Record(), records[1])
}

func TestWriteQuestions_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := WriteQuestions(filepath.Join(blocker, "out.csv"), nil)

	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.CodeIO))
}

func TestWriteQuestions_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the new file\n"), 0o644))

	require.NoError(t, WriteQuestions(path, nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Subject,Subtopic,Question,Option A,Option B,Option C,Option D,Option E,Answer,Explanation,Justification\n", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.csv", entries[0].Name())
}

func TestWriteQuestions_ConcurrentWritersLeaveOneCompleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated_questions.csv")
	runs := [][]domain.OutputRow{
		{domain.NewOutputRow("Math", "Algebra", domain.GeneratedQuestion{Question: "Solve x+1=2"})},
		{
			domain.NewOutputRow("Physics", "Optics", domain.GeneratedQuestion{Question: "What bends light?"}),
			domain.NewOutputRow("Physics", "Optics", domain.GeneratedQuestion{Question: "What is a focal point?"}),
		},
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		for _, rows := range runs {
			wg.Add(1)
			go func(rows []domain.OutputRow) {
				defer wg.Done()
				assert.NoError(t, WriteQuestions(path, rows))
			}(rows)
		}
	}
	wg.Wait()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.GreaterOrEqual(t, len(records), 2)

	var want [][]string
	switch records[1][0] {
	case "Math":
		want = [][]string{domain.OutputHeader, runs[0][0].Record()}
	default:
		want = [][]string{domain.OutputHeader, runs[1][0].Record(), runs[1][1].Record()}
	}
	assert.Equal(t, want, records)
}
