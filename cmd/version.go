package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information for Ingesta",
	Long:  `Show version information for Ingesta`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(stdout, `Ingesta
  Version:	%v
  Build date:	%v
`, version, buildDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
