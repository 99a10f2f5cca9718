package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSummary(t *testing.T, dir, name, content string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func TestNewestSummaryFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeSummary(t, dir, "old_summary.json", `{"a": 1}`, now.Add(-time.Hour))
	newest := writeSummary(t, dir, "new_summary.json", `{"a": 2}`, now)
	// Files not matching the pattern are ignored
	writeSummary(t, dir, "individual_responses.json", `{}`, now.Add(time.Hour))

	path, err := newestSummaryFile(dir)
	require.NoError(t, err)
	assert.Equal(t, newest, path)
}

func TestNewestSummaryFileEmptyDir(t *testing.T) {
	_, err := newestSummaryFile(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no summary files")
}

func TestDisplaySummary(t *testing.T) {
	dir := t.TempDir()
	writeSummary(t, dir, "run_summary.json",
		`{"results_ttft_s_mean": 0.42, "model": "meta.llama3-1-8b-instruct-v1:0", "num_completed_requests": 100}`,
		time.Now())

	assert.NoError(t, DisplaySummary(dir))
}

func TestDisplaySummaryMalformed(t *testing.T) {
	dir := t.TempDir()
	writeSummary(t, dir, "run_summary.json", `{broken`, time.Now())

	err := DisplaySummary(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
