package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lambdatest/internal/batch"
)

// errFixturesFailed is returned by run when at least one fixture did not pass. The
// outcome has already been reported, so Execute only sets the exit code.
var errFixturesFailed = errors.New("one or more fixtures failed")

const versionTemplate = `{{printf "lambdatest version %s\n" .Version}}`

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lambdatest",
	Short: "Invoke serverless functions with recorded test events",
	Long: `lambdatest invokes the functions declared in a deployment template with the
event fixtures found in an events directory, either in the local emulator
(sam local invoke) or against the deployed stack (aws lambda invoke), and
reports which invocations succeeded.

A fixture events/<name>.json is matched to the function whose CodeUri ends
with <name>.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unknown mode, missing fixtures)
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var inputErr *batch.InputError
	switch {
	case errors.Is(err, errFixturesFailed):
	case errors.As(err, &inputErr):
		fmt.Fprintln(os.Stderr, inputErr.Message)
	default:
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

func init() {
	rootCmd.SetVersionTemplate(versionTemplate)
	addConfigFlags(rootCmd)

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newVersionCmd())
}
