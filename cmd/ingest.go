package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/Luis23345432/Ingesta-Hotel2/actions"
	"github.com/Luis23345432/Ingesta-Hotel2/config"
	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	"github.com/spf13/cobra"
)

func init() {
	for _, s := range entity.All() { // for each entity job...
		rootCmd.AddCommand(newIngestCmd(s.Name,
			fmt.Sprintf("Export DynamoDB table <stage>-hotel-%v to S3 and register it in Glue", s.Table),
			entityAliases(s.Name)))
	}
	rootCmd.AddCommand(newIngestCmd(actions.EntityAll,
		"Run every entity job in sequence, continuing past failures", nil))
}

// newIngestCmd builds the command that runs the job for entityName.
func newIngestCmd(entityName string, short string, aliases []string) *cobra.Command {
	cfg := &actions.IngestConfig{Entity: entityName}
	c := &cobra.Command{
		Use:     entityName,
		Aliases: aliases,
		Short:   short,
		Long: short + `.

The job moves through these states and stops at the first failure:

  EnsureCatalogDatabase > ExportToFile > UploadFile > RegisterCatalogTable > Done

Settings such as region, output-dir and page-size come from environment
variables, then the config file (see "ingesta config"), then defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runIngest(context.Background(), cfg)
			return err
		},
	}
	c.Flags().SortFlags = false
	switches.addFlag(c, &cfg.Stage, "stage", "", true, "")
	switches.addFlag(c, &cfg.Bucket, "bucket", "", true, "")
	return c
}

// runIngest resolves settings and runs the job(s) described by cfg.
// A summary line per job is written to stdout.
func runIngest(ctx context.Context, cfg *actions.IngestConfig) ([]actions.JobResult, error) {
	settings, err := resolveSettings()
	if err != nil {
		return nil, err
	}
	cfg.Settings = settings
	cfg.StackDumpOnPanic = stackDumpOnPanic
	cfg.NewClients = newClients
	results, err := actions.RunIngestCommand(ctx, cfg)
	for _, r := range results { // for each job that ran...
		fmt.Fprintf(stdout, "%v: %v (%v) rows=%v location=%v\n", r.Entity, r.State, r, r.RowsWritten, r.Location)
	}
	return results, err
}

// resolveSettings reads the main config file when it can be found.
// Without a home directory only env vars and defaults apply.
func resolveSettings() (config.Settings, error) {
	f, err := newMainConfig()
	if err != nil {
		f = nil
	}
	return config.Resolve(f)
}

func entityAliases(name string) []string {
	var retval []string
	for alias, n := range entity.Aliases() {
		if n == name {
			retval = append(retval, alias)
		}
	}
	sort.Strings(retval)
	return retval
}
