package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonci/internal/adapters/shell"
	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports"
	"go.trai.ch/mesonci/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newExecutor(t *testing.T, stdout, stderr io.Writer) *shell.Executor {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	return shell.NewExecutor(mockLogger).WithOutput(stdout, stderr)
}

func TestExecutor_Run_MultiLineOutput(t *testing.T) {
	var stdout bytes.Buffer
	executor := newExecutor(t, &stdout, io.Discard)

	err := executor.Run(context.Background(), domain.NewCommand("sh", "-c", "echo line1; echo line2"))
	require.NoError(t, err)

	assert.Equal(t, "line1\nline2\n", stdout.String())
}

func TestExecutor_Run_SeparatesStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := newExecutor(t, &stdout, &stderr)

	err := executor.Run(context.Background(), domain.NewCommand("sh", "-c", "echo out; echo err >&2"))
	require.NoError(t, err)

	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Run_UnterminatedLine(t *testing.T) {
	var stdout bytes.Buffer
	executor := newExecutor(t, &stdout, io.Discard)

	err := executor.Run(context.Background(), domain.NewCommand("sh", "-c", "printf part1; sleep 0.1; printf part2"))
	require.NoError(t, err)

	assert.Equal(t, "part1part2", stdout.String())
}

func TestExecutor_Run_EnvironmentVariables(t *testing.T) {
	var stdout bytes.Buffer
	executor := newExecutor(t, &stdout, io.Discard)

	cmd := domain.NewCommand("sh", "-c", "echo $MY_TEST_VAR")
	cmd.Env = []string{"MY_TEST_VAR=test-value-123"}

	require.NoError(t, executor.Run(context.Background(), cmd))
	assert.Equal(t, "test-value-123\n", stdout.String())
}

func TestExecutor_Run_WorkingDirectory(t *testing.T) {
	var stdout bytes.Buffer
	executor := newExecutor(t, &stdout, io.Discard)
	tmpDir := t.TempDir()

	cmd := domain.NewCommand("sh", "-c", "pwd")
	cmd.Dir = tmpDir

	require.NoError(t, executor.Run(context.Background(), cmd))
	resolved, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)
	assert.Contains(t, []string{tmpDir, resolved}, strings.TrimSpace(stdout.String()))
}

func TestExecutor_Run_InvalidCommand(t *testing.T) {
	executor := newExecutor(t, io.Discard, io.Discard)

	err := executor.Run(context.Background(), domain.NewCommand("nonexistent-command-xyz123"))

	require.Error(t, err)
	assert.Equal(t, 1, domain.ExitCode(err))
}

func TestExecutor_Run_CommandFailure(t *testing.T) {
	executor := newExecutor(t, io.Discard, io.Discard)

	err := executor.Run(context.Background(), domain.NewCommand("sh", "-c", "exit 42"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
	assert.Equal(t, 42, domain.ExitCode(err))
}

func TestExecutor_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	assert.NoError(t, executor.Run(context.Background(), domain.Command{}))
}

func TestExecutor_Run_AbsolutePath(t *testing.T) {
	var stdout bytes.Buffer
	executor := newExecutor(t, &stdout, io.Discard)

	require.NoError(t, executor.Run(context.Background(), domain.NewCommand("/bin/sh", "-c", "echo test")))
	assert.Equal(t, "test\n", stdout.String())
}

func TestExecutor_Run_ResolvesAgainstCommandPath(t *testing.T) {
	var stdout bytes.Buffer
	executor := newExecutor(t, &stdout, io.Discard)

	binDir := t.TempDir()
	toolPath := filepath.Join(binDir, "my-ci-tool")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(toolPath, []byte("#!/bin/sh\necho success\n"), 0o700))

	cmd := domain.NewCommand("my-ci-tool")
	cmd.Env = []string{"PATH=" + binDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	require.NoError(t, executor.Run(context.Background(), cmd))
	assert.Equal(t, "success\n", stdout.String())
}

func TestExecutor_Run_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("[dry-run] sh -c 'exit 1'").Times(1)

	var stdout bytes.Buffer
	executor := shell.NewExecutor(mockLogger).WithOutput(&stdout, io.Discard)

	ctx := ports.ContextWithDryRun(context.Background())
	require.NoError(t, executor.Run(ctx, domain.NewCommand("sh", "-c", "exit 1")))
	assert.Empty(t, stdout.String())
}

func TestExecutor_Run_QuietSkipsAnnouncement(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(0)

	var stdout bytes.Buffer
	executor := shell.NewExecutor(mockLogger).WithOutput(&stdout, io.Discard)

	cmd := domain.NewCommand("sh", "-c", "echo quiet")
	cmd.Quiet = true

	require.NoError(t, executor.Run(context.Background(), cmd))
	assert.Equal(t, "quiet\n", stdout.String())
}

func TestExecutor_Run_WithVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockVertex := mocks.NewMockVertex(ctrl)

	var vertexOut, vertexErr bytes.Buffer
	mockVertex.EXPECT().Stdout().Return(&vertexOut).AnyTimes()
	mockVertex.EXPECT().Stderr().Return(&vertexErr).AnyTimes()

	var stdout bytes.Buffer
	executor := shell.NewExecutor(mockLogger).WithOutput(&stdout, io.Discard)

	ctx := ports.ContextWithVertex(context.Background(), mockVertex)
	err := executor.Run(ctx, domain.NewCommand("sh", "-c", "echo hello to stdout; echo hello to stderr >&2"))
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "hello to stdout")
	assert.Contains(t, vertexOut.String(), "hello to stdout")
	assert.Contains(t, vertexErr.String(), "hello to stderr")
}

func TestExecutor_LookPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	binDir := t.TempDir()
	toolPath := filepath.Join(binDir, "ninja")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(toolPath, []byte("#!/bin/sh\n"), 0o700))
	t.Setenv("PATH", binDir)

	got, err := executor.LookPath("ninja")
	require.NoError(t, err)
	assert.Equal(t, toolPath, got)

	_, err = executor.LookPath("definitely-not-installed-xyz")
	assert.Error(t, err)
}
