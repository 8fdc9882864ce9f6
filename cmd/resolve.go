package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lambdatest/internal/batch"
	"lambdatest/internal/config"
	"lambdatest/internal/descriptor"
)

var resolveRemote bool

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <fixture>",
		Short: "Print the function a fixture is invoked against",
		Long: `Print the declared name of the function a fixture resolves to. With --remote
the deployed name found under the stack name prefix is printed as well.`,
		Args: cobra.ExactArgs(1),
		RunE: runResolve,
	}
	cmd.Flags().BoolVar(&resolveRemote, "remote", false, "Also look up the deployed function name")
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
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

	name, err := newResolver(cfg).Resolve(root, args[0])
	if err != nil {
		return err
	}

	if !resolveRemote {
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	}

	stackName, err := config.ResolveStackName(cfg)
	if err != nil {
		return err
	}
	inv, err := newInventory(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	target, err := inv.Lookup(cmd.Context(), name, stackName)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, target)
	return nil
}
