package batch

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"lambdatest/internal/descriptor"
	"lambdatest/internal/invocation"
	"lambdatest/pkg/logging"
)

const subsystem = "Batch"

type job struct {
	index   int
	fixture string
}

// Run invokes every selected fixture concurrently and waits until all have settled.
// One fixture failing never affects the others. Caller misuse is reported as *InputError
// before anything is invoked.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	mode, ok := invocation.ParseMode(opts.Mode)
	if !ok {
		return nil, &InputError{Message: "second argument must be 'remote' or 'local'"}
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	fixtures, err := Discover(opts.EventsDir)
	if err != nil {
		return nil, err
	}
	fixtures = Filter(fixtures, opts.Fixture)
	if len(fixtures) == 0 {
		return nil, &InputError{Message: "no lambdas specified; args: " + strings.Join(opts.Args, ",")}
	}

	templatePath := opts.TemplatePath
	if templatePath == "" {
		templatePath = DefaultTemplate
	}
	root, err := descriptor.Load(templatePath)
	if err != nil {
		return nil, err
	}

	spawner := opts.Spawner
	if spawner == nil {
		spawner = invocation.NewExecSpawner()
	}
	runner := invocation.NewRunner(invocation.Options{
		Mode:         mode,
		EventsDir:    opts.EventsDir,
		OutputDir:    opts.OutputDir,
		TemplatePath: opts.TemplatePath,
		StackName:    opts.StackName,
		LocalBin:     opts.LocalBin,
		RemoteBin:    opts.RemoteBin,
		Verbose:      opts.Verbose || opts.Fixture != "",
	}, opts.Resolver, opts.Lookup, spawner, opts.Reporter)

	summary := &Summary{
		RunID:     uuid.New().String(),
		Mode:      mode,
		StartTime: time.Now(),
	}
	logging.Info(subsystem, "run %s: invoking %d fixture(s) in %s mode", summary.RunID, len(fixtures), mode)

	summary.Results = runParallel(ctx, runner, root, fixtures, opts)
	summary.EndTime = time.Now()
	summary.Duration = summary.EndTime.Sub(summary.StartTime)
	summary.tally()

	logging.Info(subsystem, "run %s: %d passed, %d failed in %v", summary.RunID, summary.Passed, summary.Failed, summary.Duration)
	return summary, nil
}

// runParallel fans the fixtures out over a worker pool. Results keep fixture order.
func runParallel(ctx context.Context, runner *invocation.Runner, root *descriptor.Node, fixtures []string, opts Options) []invocation.Result {
	jobs := make(chan job, len(fixtures))
	for i, fixture := range fixtures {
		jobs <- job{index: i, fixture: fixture}
	}
	close(jobs)

	numWorkers := opts.Parallel
	if numWorkers <= 0 || numWorkers > len(fixtures) {
		numWorkers = len(fixtures)
	}

	results := make([]invocation.Result, len(fixtures))
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range jobs {
				logging.Debug(subsystem, "worker %d invoking %s", workerID, j.fixture)
				results[j.index] = runOne(ctx, runner, root, j.fixture, opts.Reporter)
			}
		}(i)
	}
	wg.Wait()

	return results
}

// runOne shields the batch from a panicking invocation by turning it into an Errored result.
func runOne(ctx context.Context, runner *invocation.Runner, root *descriptor.Node, fixture string, reporter invocation.Reporter) (result invocation.Result) {
	defer func() {
		if p := recover(); p != nil {
			err := fmt.Errorf("invocation of %s panicked: %v", fixture, p)
			logging.Error(subsystem, err, "recovered from panic\n%s", debug.Stack())
			result = invocation.Result{
				Fixture: fixture,
				Mode:    runner.Mode(),
				Kind:    invocation.KindErrored,
				Err:     err,
				Error:   err.Error(),
			}
			if reporter != nil {
				reporter.Report(result)
			}
		}
	}()
	return runner.Run(ctx, fixture, root)
}
