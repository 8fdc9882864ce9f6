package invocation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lambdatest/internal/descriptor"
	"lambdatest/pkg/logging"
)

const subsystem = "Invocation"

// NameLookup finds the deployed name of a declared function.
type NameLookup interface {
	Lookup(ctx context.Context, declaredName, prefix string) (string, error)
}

// Options configures a Runner.
type Options struct {
	Mode Mode
	// EventsDir holds <fixture>.json event files.
	EventsDir string
	// OutputDir receives <fixture>.json responses. It must exist.
	OutputDir    string
	TemplatePath string
	// StackName prefixes deployed function names in remote mode.
	StackName string
	LocalBin  string
	RemoteBin string
	Verbose   bool
}

// Runner invokes one fixture at a time and judges the outcome. A Runner is safe for
// concurrent use as long as its collaborators are.
type Runner struct {
	opts     Options
	resolver *descriptor.Resolver
	lookup   NameLookup
	spawner  Spawner
	reporter Reporter
}

// NewRunner creates a new runner. lookup may be nil in local mode.
func NewRunner(opts Options, resolver *descriptor.Resolver, lookup NameLookup, spawner Spawner, reporter Reporter) *Runner {
	if resolver == nil {
		resolver = descriptor.NewResolver()
	}
	return &Runner{
		opts:     opts,
		resolver: resolver,
		lookup:   lookup,
		spawner:  spawner,
		reporter: reporter,
	}
}

// Mode returns the mode this runner invokes in.
func (r *Runner) Mode() Mode {
	return r.opts.Mode
}

// EventPath returns the event file of a fixture.
func (r *Runner) EventPath(fixture string) string {
	return filepath.Join(r.opts.EventsDir, fixture+".json")
}

// OutputPath returns the response file of a fixture.
func (r *Runner) OutputPath(fixture string) string {
	return filepath.Join(r.opts.OutputDir, fixture+".json")
}

// Run invokes fixture against the function declared in root and reports the settled
// result. Run never fails: every problem is folded into the result.
func (r *Runner) Run(ctx context.Context, fixture string, root *descriptor.Node) Result {
	start := time.Now()

	result := r.run(ctx, fixture, root)
	result.Fixture = fixture
	result.Mode = r.opts.Mode
	result.Verbose = r.opts.Verbose
	result.StartTime = start
	result.Duration = time.Since(start)
	if result.Err != nil {
		result.Error = result.Err.Error()
	}

	if r.reporter != nil {
		r.reporter.Report(result)
	}
	return result
}

func (r *Runner) run(ctx context.Context, fixture string, root *descriptor.Node) Result {
	names := r.resolver.Matches(root, fixture)
	if len(names) == 0 {
		return Result{
			Kind: KindNotFound,
			Err:  fmt.Errorf("%w for %s", descriptor.ErrNotFound, fixture),
		}
	}
	if len(names) > 1 {
		logging.Warn(subsystem, "fixture %s matches %d functions (%s), using %s",
			fixture, len(names), strings.Join(names, ", "), names[0])
	}

	result := Result{FunctionName: names[0], OutputPath: r.OutputPath(fixture)}

	cmd, out, err := r.prepare(ctx, fixture, &result)
	if err != nil {
		result.Kind = KindErrored
		result.Err = err
		return result
	}

	closed := false
	closeOutput := func() {
		if closed {
			return
		}
		closed = true
		if err := out.Close(); err != nil {
			logging.Warn(subsystem, "failed to close output of %s: %v", fixture, err)
		}
	}
	defer closeOutput()

	logging.Debug(subsystem, "invoking %s: %s %s", fixture, cmd.Name, strings.Join(cmd.Args, " "))

	exitCode, err := r.spawner.Spawn(ctx, cmd.Name, cmd.Args, out)
	if err != nil {
		logging.Error(subsystem, err, "failed to launch invocation of %s", fixture)
	}
	closeOutput()

	result.ExitCode = exitCode
	if exitCode != 0 {
		result.Kind = KindProcessFailed
		return result
	}

	r.judge(&result)
	return result
}

// prepare builds the command and opens the channel receiving the process stdout.
func (r *Runner) prepare(ctx context.Context, fixture string, result *Result) (Command, io.WriteCloser, error) {
	eventPath := r.EventPath(fixture)

	switch r.opts.Mode {
	case ModeLocal:
		cmd := LocalCommand(r.opts.LocalBin, result.FunctionName, eventPath, r.opts.TemplatePath)
		file, err := os.Create(result.OutputPath)
		if err != nil {
			return Command{}, nil, fmt.Errorf("failed to create output file: %w", err)
		}
		return cmd, file, nil

	case ModeRemote:
		if r.lookup == nil {
			return Command{}, nil, errors.New("no deployed name lookup configured")
		}
		target, err := r.lookup.Lookup(ctx, result.FunctionName, r.opts.StackName)
		if err != nil {
			return Command{}, nil, err
		}
		result.Target = target
		cmd := RemoteCommand(r.opts.RemoteBin, target, eventPath, result.OutputPath)
		// the CLI writes the response file itself; its own stdout is invoke metadata
		return cmd, nopWriteCloser{io.Discard}, nil

	default:
		return Command{}, nil, fmt.Errorf("unknown mode %q", r.opts.Mode)
	}
}

// judge reads the output file and classifies the response.
func (r *Runner) judge(result *Result) {
	data, err := os.ReadFile(result.OutputPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		result.Kind = KindErrored
		result.Err = fmt.Errorf("failed to read output: %w", err)
		return
	}
	if len(data) == 0 {
		result.Kind = KindEmptyResponse
		return
	}

	resp, err := ParseResponse(data)
	result.Response = resp
	if err != nil {
		result.Kind = KindFailure
		result.Note = err.Error()
		return
	}

	if resp.Successful() {
		result.Kind = KindSuccess
	} else {
		result.Kind = KindFailure
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
