package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calvinalkan/task-tracker/internal/store"
	"github.com/calvinalkan/task-tracker/internal/task"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp directory that acts as the working directory.
type CLI struct {
	t   *testing.T
	Dir string
}

// NewCLI creates a new test CLI with a temp directory.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:   t,
		Dir: t.TempDir(),
	}
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include the program name or "--cwd" - those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{programName, "--cwd", r.Dir}, args...)
	code := Run(context.Background(), &outBuf, &errBuf, fullArgs)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command exits non-zero
// or writes to stderr. Returns trimmed stdout.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	if stderr != "" {
		r.t.Fatalf("command %v wrote to stderr:\n%s", args, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command exits zero.
// Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// DataPath returns the path to the task data file.
func (r *CLI) DataPath() string {
	return filepath.Join(r.Dir, store.FileName)
}

// DataExists reports whether the task data file exists.
func (r *CLI) DataExists() bool {
	r.t.Helper()

	_, err := os.Stat(r.DataPath())
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}

	if err != nil {
		r.t.Fatalf("stat data file: %v", err)
	}

	return true
}

// ReadData returns the raw content of the task data file.
func (r *CLI) ReadData() string {
	r.t.Helper()

	content, err := os.ReadFile(r.DataPath())
	if err != nil {
		r.t.Fatalf("failed to read data file: %v", err)
	}

	return string(content)
}

// ReadTasks decodes the task data file as written, without any recovery.
func (r *CLI) ReadTasks() []task.Task {
	r.t.Helper()

	var tasks []task.Task

	err := json.Unmarshal([]byte(r.ReadData()), &tasks)
	if err != nil {
		r.t.Fatalf("data file is not a task array: %v", err)
	}

	return tasks
}

// WriteData writes raw content to the task data file.
func (r *CLI) WriteData(content string) {
	r.t.Helper()

	err := os.WriteFile(r.DataPath(), []byte(content), 0o600)
	if err != nil {
		r.t.Fatalf("failed to write data file: %v", err)
	}
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}
