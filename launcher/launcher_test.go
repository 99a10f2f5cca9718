//go:build linux
// +build linux

package launcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"llmbenchlauncher/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops a shell script the tests launch in place of the
// external benchmark tool.
func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "fake_benchmark.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

// chdirTemp moves the test into a temp dir so per-run log files land there.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestRunInjectsEnvAndPassesArgs(t *testing.T) {
	dir := chdirTemp(t)
	capture := filepath.Join(dir, "capture.txt")
	t.Setenv("CAPTURE_FILE", capture)

	script := writeScript(t, dir,
		`printf '%s\n%s\n%s\n' "$AWS_ACCESS_KEY_ID" "$AWS_SECRET_ACCESS_KEY" "$AWS_REGION_NAME" > "$CAPTURE_FILE"
echo "$@" >> "$CAPTURE_FILE"
`)

	creds := config.Credentials{
		AccessKeyID:     "AKIAEXAMPLE",
		SecretAccessKey: "secret-example",
		Region:          "us-east-1",
	}
	scenario := defaultScenario()

	code, err := Run(LaunchParams{Python: "/bin/sh", Script: script}, scenario, creds)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	data, err := os.ReadFile(capture)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "AKIAEXAMPLE", lines[0])
	assert.Equal(t, "secret-example", lines[1])
	assert.Equal(t, "us-east-1", lines[2])
	assert.Contains(t, lines[3], "--mean-input-tokens 550")
	assert.Contains(t, lines[3], "--num-concurrent-requests 1")
	assert.Contains(t, lines[3], `--additional-sampling-params {"temperature": 0.9, "stream": true}`)
}

func TestRunInjectsEmptyCredentials(t *testing.T) {
	dir := chdirTemp(t)
	capture := filepath.Join(dir, "capture.txt")
	t.Setenv("CAPTURE_FILE", capture)
	// Inherited values must be overridden by the configured (empty) ones
	t.Setenv("AWS_ACCESS_KEY_ID", "inherited-key")

	script := writeScript(t, dir,
		`printf '[%s][%s][%s]' "$AWS_ACCESS_KEY_ID" "$AWS_SECRET_ACCESS_KEY" "$AWS_REGION_NAME" > "$CAPTURE_FILE"
`)

	code, err := Run(LaunchParams{Python: "/bin/sh", Script: script}, defaultScenario(), config.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	data, err := os.ReadFile(capture)
	require.NoError(t, err)
	assert.Equal(t, "[][][]", string(data))
}

func TestRunPropagatesExitCode(t *testing.T) {
	dir := chdirTemp(t)
	script := writeScript(t, dir, "exit 7\n")

	code, err := Run(LaunchParams{Python: "/bin/sh", Script: script}, defaultScenario(), config.Credentials{})
	assert.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestRunStartFailure(t *testing.T) {
	chdirTemp(t)

	code, err := Run(LaunchParams{Python: "/nonexistent/python", Script: "token_benchmark_ray.py"},
		defaultScenario(), config.Credentials{})
	assert.Error(t, err)
	assert.Equal(t, 1, code)
}

func TestRunRejectsInvalidJSONBeforeSpawn(t *testing.T) {
	dir := chdirTemp(t)
	capture := filepath.Join(dir, "capture.txt")
	t.Setenv("CAPTURE_FILE", capture)
	script := writeScript(t, dir, `touch "$CAPTURE_FILE"`+"\n")

	scenario := defaultScenario()
	scenario.SamplingParams = `{"temperature":`

	code, err := Run(LaunchParams{Python: "/bin/sh", Script: script}, scenario, config.Credentials{})
	assert.Error(t, err)
	assert.Equal(t, 1, code)
	assert.NoFileExists(t, capture)
}
