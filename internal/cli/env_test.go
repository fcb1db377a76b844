package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEnv is an isolated config and data directory for running nest commands.
type TestEnv struct {
	t       *testing.T
	Config  string
	DataDir string
}

// NewTestEnv creates a TestEnv whose config.yaml adds extraConfig to the
// defaults.
func NewTestEnv(t *testing.T, extraConfig string) *TestEnv {
	t.Helper()

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	dataDir := filepath.Join(tempDir, "data")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := "log_level: error\n" + extraConfig
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))

	return &TestEnv{t: t, Config: configDir, DataDir: dataDir}
}

// CmdResult holds the outcome of one command.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes nest in-process with the given arguments.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...))

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(&stderr, "nest:", err)
	}
	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode(err)}
}

// MustRun executes nest and fails the test on a non-zero exit code.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(args...)
	require.Equal(e.t, exitSuccess, result.ExitCode, "nest %v\nstderr: %s", args, result.Stderr)
	return result
}

// ParseJSON decodes command output into T.
func ParseJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(s), &v), "output: %s", s)
	return v
}
