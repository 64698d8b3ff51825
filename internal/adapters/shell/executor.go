// Package shell provides the executor adapter for external programs.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor streaming command output to the process stdout and stderr.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects command output.
func (e *Executor) WithOutput(stdout, stderr io.Writer) *Executor {
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Run executes the command and waits for it.
// The environment is os.Environ() overlaid with cmd.Env, and the executable is
// resolved against the resulting PATH.
//
// Output is copied line by line to the configured writers and, when the context
// carries a vertex, to the vertex as well.
func (e *Executor) Run(ctx context.Context, c domain.Command) error {
	if c.Name == "" {
		return nil
	}

	if ports.IsDryRun(ctx) {
		e.logger.Info("[dry-run] " + c.String())
		return nil
	}
	if !c.Quiet {
		e.logger.Info("Running: " + c.String())
	}

	cmdEnv := resolveEnvironment(os.Environ(), c.Env)

	executable := c.Name
	if !filepath.IsAbs(c.Name) {
		if lp, err := lookPath(c.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, c.Args...) //nolint:gosec // commands come from the build plan

	// Keep the name as invoked in Args[0].
	if len(cmd.Args) > 0 {
		cmd.Args[0] = c.Name
	}
	cmd.Dir = c.Dir
	cmd.Env = cmdEnv

	stdout, stderr := e.stdout, e.stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(stdout, v.Stdout())
		stderr = io.MultiWriter(stderr, v.Stderr())
	}

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stdout pipe")
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", c.String())
	}

	// Both pipes must be drained before Wait.
	var g errgroup.Group
	g.Go(func() error { return copyLines(stdout, outPipe) })
	g.Go(func() error { return copyLines(stderr, errPipe) })
	copyErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		failure := zerr.Wrap(&domain.ExitError{Command: c.Name, Code: exitCode}, "command failed")
		failure = zerr.With(failure, "command", c.String())
		return zerr.With(failure, "exit_code", exitCode)
	}

	if copyErr != nil {
		return zerr.With(zerr.Wrap(copyErr, "failed to stream command output"), "command", c.String())
	}
	return nil
}

// LookPath resolves name against the process PATH.
func (e *Executor) LookPath(name string) (string, error) {
	return lookPath(name, os.Environ())
}

// copyLines forwards r to w one complete line per Write.
// After a write error r is still drained so the child never blocks on a full pipe.
func copyLines(w io.Writer, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if _, werr := io.WriteString(w, line); werr != nil {
				_, _ = io.Copy(io.Discard, br)
				return werr
			}
		}
		if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// resolveEnvironment overlays cmdEnv on sysEnv. Later entries win.
func resolveEnvironment(sysEnv, cmdEnv []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(cmdEnv))
	order := make([]string, 0, len(sysEnv)+len(cmdEnv))

	for _, entries := range [][]string{sysEnv, cmdEnv} {
		for _, entry := range entries {
			k, v, ok := strings.Cut(entry, "=")
			if !ok {
				continue
			}
			if _, seen := envMap[k]; !seen {
				order = append(order, k)
			}
			envMap[k] = v
		}
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	if strings.Contains(file, "/") {
		if err := findExecutable(file); err != nil {
			return "", err
		}
		return file, nil
	}

	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
