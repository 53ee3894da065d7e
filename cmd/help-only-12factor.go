package cmd

import (
	"fmt"
	"strings"

	"github.com/Luis23345432/Ingesta-Hotel2/constants"
	"github.com/spf13/cobra"
)

var twelveFactorCmd = &cobra.Command{
	Use:   "12f",
	Short: `View help notes for running in Twelve-Factor mode`,
	Long: fmt.Sprintf(`
Ingesta can be controlled by environment variables and runs well as a
scheduled container task or an AWS Lambda function.

To enable Twelve-Factor mode, set environment variable %[1]v_12FACTOR_MODE=1
(or %[1]v_12FACTOR_MODE=lambda to start the Lambda handler). Flags documented by
the regular command-line usage are supplied as:

%[1]v_<flag long-name in upper case>

For example, this will export the dev users table:

export %[1]v_12FACTOR_MODE=1
export %[1]v_COMMAND=users
export %[1]v_STAGE=dev
export %[1]v_BUCKET=hotel-exports

Then execute the CLI tool without any arguments or flags to start the job.
Use %[1]v_COMMAND=all to run every job.

Settings are read from: %[2]v
`, constants.EnvVarPrefix, strings.Join(twelveFactorSettingVars(), ", ")),
}

func init() {
	rootCmd.AddCommand(twelveFactorCmd)
}
