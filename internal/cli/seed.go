package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/fabrik/fixtures/blog"
	"github.com/roach88/fabrik/seed"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	DBPath string
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{}

	cmd := &cobra.Command{
		Use:   "seed <plan.yaml>",
		Short: "Run a seed plan against the demo blog store",
		Long: `Validate a seed plan and execute it against a SQLite blog database.

The plan's entities resolve against the blog catalog (author, post,
comment). Associations fire as usual: seeding a comment also writes the
post and author it depends on. The database file is created if missing.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "blog.db", "path to the SQLite database")

	return cmd
}

func runSeed(rootOpts *RootOptions, opts *SeedOptions, planPath string, cmd *cobra.Command) error {
	plan, err := seed.LoadPlan(planPath)
	if err != nil {
		return err
	}

	store, err := blog.Open(opts.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	// Verbose logs go to stderr so they never corrupt JSON output.
	var logWriter io.Writer = io.Discard
	if rootOpts.Verbose {
		logWriter = cmd.ErrOrStderr()
	}
	logger := slog.New(slog.NewTextHandler(logWriter, nil))

	set := blog.NewSet()
	runner := seed.NewRunner(blog.Catalog(set), logger)

	report, err := runner.Run(cmd.Context(), store, plan)
	if err != nil {
		return err
	}

	return writeReport(rootOpts, cmd, report)
}

func writeReport(opts *RootOptions, cmd *cobra.Command, report *seed.Report) error {
	out := cmd.OutOrStdout()

	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(out, "seeded plan %q: %d entities (run %s)\n", report.Plan, report.Created, report.RunToken)
	for _, step := range report.Steps {
		fmt.Fprintf(out, "  %-10s %d\n", step.Entity, step.Created)
	}
	return nil
}
