package inventory

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// commandOutput runs a command and returns its stdout. Stderr is folded into the error.
type commandOutput func(ctx context.Context, name string, args ...string) ([]byte, error)

// CLIQuerier queries the function inventory through the cloud CLI.
type CLIQuerier struct {
	bin string
	run commandOutput
}

// NewCLIQuerier creates a querier invoking bin (usually "aws").
func NewCLIQuerier(bin string) *CLIQuerier {
	return &CLIQuerier{bin: bin, run: execOutput}
}

// Args returns the CLI arguments selecting the first function starting with prefix.
func (q *CLIQuerier) Args(prefix string) []string {
	return []string{
		"lambda", "list-functions",
		"--query", fmt.Sprintf("Functions[?starts_with(FunctionName, '%s')].FunctionName | [0]", prefix),
		"--output", "text",
	}
}

// Query implements Querier.
func (q *CLIQuerier) Query(ctx context.Context, prefix string) (string, error) {
	out, err := q.run(ctx, q.bin, q.Args(prefix)...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func execOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
