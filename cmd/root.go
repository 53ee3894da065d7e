package cmd

import (
	"io"
	"os"

	"github.com/Luis23345432/Ingesta-Hotel2/actions"
	"github.com/Luis23345432/Ingesta-Hotel2/config"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
)

var (
	// Default values may be set at compile time.
	version          = "0.1.0"
	buildDate        = "2026-10-18T00:00+0000"
	stackDumpOnPanic bool
)

// Hooks replaced by tests.
var (
	newMainConfig           = config.NewMainFile
	newClients    func(region string) (actions.Clients, error) // nil means real AWS clients
	stdout        io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "ingesta",
	Short: "Export hotel DynamoDB tables to S3 as CSV and register them in the Glue catalog",
	Long: `Ingesta exports the hotel platform's DynamoDB tables for one stage.

Each entity job scans <stage>-hotel-<table>, writes a flat CSV file,
uploads it to s3://<bucket>/<folder>/ and registers an external CSV
table in the Glue database <stage>-glue-database so it can be queried
with Athena. Use "all" to run every job in sequence.`,
	SilenceUsage: true,
}

func init() {
	// General setup.
	cobra.EnableCommandSorting = false
	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&stackDumpOnPanic, "print-stack", false, "Print a stack dump if there is a panic")
	_ = rootCmd.PersistentFlags().MarkHidden("print-stack")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if twelveFactorMode { // if we are running based on environment variables...
		if lambdaMode { // if we should handle lambda execution...
			lambda.Start(func() error { return execute12FactorMode(twelveFactorActions) })
		} else {
			if err := execute12FactorMode(twelveFactorActions); err != nil {
				// execute12FactorMode logs the error.
				os.Exit(1)
			}
		}
	} else { // else we're using CLI args and flags via Cobra...
		if err := rootCmd.Execute(); err != nil {
			// Execute() prints the error.
			os.Exit(1)
		}
	}
}
