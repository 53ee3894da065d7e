package cmd

import (
	"fmt"
	"strings"

	"github.com/Luis23345432/Ingesta-Hotel2/actions"
	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	"github.com/spf13/cobra"
)

var describeCfg = actions.DescribeConfig{}

var describeCmd = &cobra.Command{
	Use:   "describe <entity>",
	Short: "Print the export definition of an entity",
	Long: fmt.Sprintf(`Print the columns, rules and derived names used to export an entity.
Supply stage and bucket to include the resolved table, file and S3 names.

Entities: %v`, strings.Join(entity.Names(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		describeCfg.Entity = args[0]
		return actions.RunDescribe(&describeCfg, stdout)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().SortFlags = false
	switches.addFlag(describeCmd, &describeCfg.Format, "output", "yaml", false, "")
	switches.addFlag(describeCmd, &describeCfg.Stage, "stage", "", false, "")
	switches.addFlag(describeCmd, &describeCfg.Bucket, "bucket", "", false, "")
}
