package cmd

import (
	"github.com/spf13/cobra"

	"lambdatest/internal/batch"
	"lambdatest/internal/descriptor"
	"lambdatest/internal/report"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List event fixtures and the functions they resolve to",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fixtures, err := batch.Discover(cfg.EventsDir)
	if err != nil {
		return err
	}

	templatePath := cfg.TemplatePath
	if templatePath == "" {
		templatePath = batch.DefaultTemplate
	}
	root, err := descriptor.Load(templatePath)
	if err != nil {
		return err
	}

	resolver := newResolver(cfg)
	rows := make([]report.FixtureRow, 0, len(fixtures))
	for _, fixture := range fixtures {
		rows = append(rows, report.FixtureRow{
			Fixture:   fixture,
			Functions: resolver.Matches(root, fixture),
		})
	}

	report.NewConsole(cmd.OutOrStdout()).Fixtures(rows)
	return nil
}
