package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lambdatest/internal/batch"
	"lambdatest/internal/config"
	"lambdatest/internal/invocation"
	"lambdatest/internal/report"
)

var (
	runOutputDir string
	runParallel  int
	runVerbose   bool
	runReportDir string
)

// spawner is replaced in tests.
var spawner invocation.Spawner = invocation.NewExecSpawner()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <local|remote> [fixture]",
		Short: "Invoke functions with their event fixtures",
		Long: `Invoke every function that has an event fixture, or only the given fixture,
and report the outcome of each invocation.

Modes:
  local   runs "sam local invoke <function> --event <fixture>" and stores the
          response in <output-dir>/<fixture>.json
  remote  looks up the deployed function by stack name prefix and runs
          "aws lambda invoke", which writes <output-dir>/<fixture>.json

An invocation succeeds when the response has statusCode 200 and carries no
errors, neither at the top level nor in the decoded body.

Example usage:
  lambdatest run local                       # Invoke every fixture locally
  lambdatest run local create-order          # Invoke one fixture, print the response
  lambdatest run remote --stack-name orders  # Invoke the deployed functions
  lambdatest run remote --inventory sdk      # Look up functions with the AWS SDK`,
		Args: cobra.MaximumNArgs(2),
		RunE: runRun,
	}

	cmd.Flags().StringVar(&runOutputDir, "output-dir", "", "Directory receiving <fixture>.json responses (env OUTPUT_DIR)")
	cmd.Flags().IntVar(&runParallel, "parallel", 0, "Maximum concurrent invocations, 0 for all at once (env PARALLEL)")
	cmd.Flags().BoolVar(&runVerbose, "verbose", false, "Print every response")
	cmd.Flags().StringVar(&runReportDir, "report", "", "Directory to save a detailed JSON report in (env REPORT_DIR)")

	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return []string{string(invocation.ModeLocal), string(invocation.ModeRemote)}, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(cmd.ErrOrStderr(), "\nReceived interrupt signal, stopping invocations...")
			cancel()
		case <-ctx.Done():
		}
	}()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var mode, fixture string
	if len(args) > 0 {
		mode = args[0]
	}
	if len(args) > 1 {
		fixture = args[1]
	}

	opts := batch.Options{
		Mode:         mode,
		Fixture:      fixture,
		Args:         args,
		EventsDir:    cfg.EventsDir,
		OutputDir:    cfg.OutputDir,
		TemplatePath: cfg.TemplatePath,
		LocalBin:     cfg.LocalBin,
		RemoteBin:    cfg.RemoteBin,
		Parallel:     cfg.Parallel,
		Verbose:      runVerbose,
		Resolver:     newResolver(cfg),
		Spawner:      spawner,
	}

	if mode == string(invocation.ModeRemote) {
		stackName, err := config.ResolveStackName(cfg)
		if err != nil {
			return err
		}
		opts.StackName = stackName

		lookup, err := newInventory(ctx, cfg)
		if err != nil {
			return err
		}
		opts.Lookup = lookup
	}

	console := report.NewConsole(cmd.OutOrStdout())
	opts.Reporter = console

	summary, err := batch.Run(ctx, opts)
	if err != nil {
		return err
	}

	console.Summary(summary)

	if cfg.ReportDir != "" {
		path, err := report.SaveJSON(cfg.ReportDir, summary)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "⚠️  Failed to save detailed report: %v\n", err)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "📄 Detailed report saved to: %s\n", path)
		}
	}

	if !summary.Succeeded() {
		return errFixturesFailed
	}
	return nil
}
