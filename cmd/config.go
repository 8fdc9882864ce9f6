package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lambdatest/internal/config"
	"lambdatest/internal/descriptor"
	"lambdatest/internal/inventory"
	"lambdatest/pkg/logging"
)

// Values of the flags shared by all commands. They only override the environment
// when set explicitly.
var (
	flagEventsDir      string
	flagTemplate       string
	flagStackName      string
	flagUsePackageName bool
	flagInventory      string
	flagLocatorKey     string
	flagLogLevel       string
	flagDebug          bool
)

func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&flagEventsDir, "events-dir", "", "Directory holding <fixture>.json event files (env EVENTS_DIR, default events)")
	flags.StringVar(&flagTemplate, "template", "", "Deployment template declaring the functions (env TEMPLATE, default template.yaml)")
	flags.StringVar(&flagStackName, "stack-name", "", "Prefix of deployed function names (env STACK_NAME)")
	flags.BoolVar(&flagUsePackageName, "use-package-name", false, "Use the package.json name as stack name when none is set")
	flags.StringVar(&flagInventory, "inventory", "", "How deployed functions are looked up: cli or sdk (env INVENTORY, default cli)")
	flags.StringVar(&flagLocatorKey, "locator-key", "", "Template attribute matched against fixture names (env LOCATOR_KEY, default CodeUri)")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error (env LOG_LEVEL, default info)")
	flags.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	_ = cmd.RegisterFlagCompletionFunc("inventory", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{config.InventoryCLI, config.InventorySDK}, cobra.ShellCompDirectiveDefault
	})
}

// loadConfig reads the environment, applies explicitly set flags, validates the result
// and initializes logging.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("events-dir") {
		cfg.EventsDir = flagEventsDir
	}
	if flags.Changed("template") {
		cfg.TemplatePath = flagTemplate
	}
	if flags.Changed("stack-name") {
		cfg.StackName = flagStackName
	}
	if flags.Changed("use-package-name") {
		cfg.UsePackageName = flagUsePackageName
	}
	if flags.Changed("inventory") {
		cfg.Inventory = flagInventory
	}
	if flags.Changed("locator-key") {
		cfg.LocatorKey = flagLocatorKey
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	// run only
	if flags.Changed("output-dir") {
		cfg.OutputDir = runOutputDir
	}
	if flags.Changed("parallel") {
		cfg.Parallel = runParallel
	}
	if flags.Changed("report") {
		cfg.ReportDir = runReportDir
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if flagDebug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)

	return cfg, nil
}

func newResolver(cfg config.Config) *descriptor.Resolver {
	return descriptor.NewResolver(descriptor.WithLocatorKey(cfg.LocatorKey))
}

// newInventory creates the deployed name lookup selected by the configuration.
func newInventory(ctx context.Context, cfg config.Config) (*inventory.Inventory, error) {
	var querier inventory.Querier
	switch cfg.Inventory {
	case config.InventorySDK:
		q, err := inventory.NewSDKQuerier(ctx, "")
		if err != nil {
			return nil, err
		}
		querier = q
	default:
		querier = inventory.NewCLIQuerier(cfg.RemoteBin)
	}
	return inventory.New(querier), nil
}
