package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patr/internal/runner"
)

var (
	_ runner.Reporter          = (*Reporter)(nil)
	_ runner.TestStartReporter = (*Reporter)(nil)
)

func TestReporter_WritesBothSinks(t *testing.T) {
	text.DisableColors()
	t.Cleanup(text.EnableColors)

	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "run.log")
	r := New(NewConsole(&buf), NewLogFile(path))

	r.LogLine("Run Tests!")
	r.ReportTestStart("a")
	r.RecordSuccess("a")
	r.RecordFailure("b")

	want := "LOG: Run Tests!\n[ OK ] a\n[FAIL] b\n"
	assert.Equal(t, want, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
	assert.True(t, r.HasFailures())
	assert.NoError(t, r.Err())
}

func TestReporter_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	r := New(NewConsole(&buf), nil)

	r.RecordSuccess("a")
	assert.False(t, r.HasFailures())
	assert.Contains(t, buf.String(), "a")
}

func TestReporter_KeepsFirstWriteError(t *testing.T) {
	var buf bytes.Buffer
	r := New(NewConsole(&buf), NewLogFile(filepath.Join(t.TempDir(), "nope", "run.log")))

	r.LogLine("one")
	first := r.Err()
	r.RecordSuccess("two")

	require.Error(t, first)
	assert.Same(t, first, r.Err())
	// the console is unaffected
	assert.Contains(t, buf.String(), "two")
}
