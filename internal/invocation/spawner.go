package invocation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Spawner runs an external process to completion and returns its exit code.
// An error means the process could not be launched or waited for; the exit code is then -1.
type Spawner interface {
	Spawn(ctx context.Context, name string, args []string, stdout io.Writer) (int, error)
}

// ExecSpawner runs processes with os/exec. Stdin and stderr are inherited from the
// parent unless overridden.
type ExecSpawner struct {
	Stdin  io.Reader
	Stderr io.Writer
}

// NewExecSpawner creates a spawner wired to the parent's stdin and stderr.
func NewExecSpawner() *ExecSpawner {
	return &ExecSpawner{Stdin: os.Stdin, Stderr: os.Stderr}
}

// Spawn implements Spawner. When stdout is an *os.File the child writes to it directly.
func (s *ExecSpawner) Spawn(ctx context.Context, name string, args []string, stdout io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("failed to start %s: %w", name, err)
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed waiting for %s: %w", name, err)
}
