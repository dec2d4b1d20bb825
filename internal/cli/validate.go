package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fabrik/seed"
)

// ValidationResult holds the outcome of validating one plan file.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Plan  string `json:"plan,omitempty"`
	Steps int    `json:"steps,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <plan.yaml>",
		Short: "Validate a seed plan without executing it",
		Long: `Validate a YAML seed plan against the plan schema.

Checks document structure only; entity names are resolved against the
catalog at seed time, not here.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	plan, err := seed.LoadPlan(path)
	if err != nil {
		result := ValidationResult{Valid: false, Error: err.Error()}
		var perr *seed.PlanError
		if errors.As(err, &perr) {
			result.Error = perr.Message
		}
		if outErr := writeResult(opts, cmd, result); outErr != nil {
			return outErr
		}
		return err
	}

	return writeResult(opts, cmd, ValidationResult{
		Valid: true,
		Plan:  plan.Name,
		Steps: len(plan.Steps),
	})
}

func writeResult(opts *RootOptions, cmd *cobra.Command, result ValidationResult) error {
	out := cmd.OutOrStdout()

	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.Valid {
		fmt.Fprintf(out, "plan %q is valid (%d steps)\n", result.Plan, result.Steps)
	} else {
		fmt.Fprintf(out, "plan is invalid: %s\n", result.Error)
	}
	return nil
}
