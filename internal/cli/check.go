package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/measura/measura/internal/harness"
)

// CheckSummary holds one scenario outcome for JSON output.
type CheckSummary struct {
	Scenario string `json:"scenario"`
	Pass     bool   `json:"pass"`
	Checks   int    `json:"checks"`
	Failed   int    `json:"failed"`
	Report   string `json:"report"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <scenario.yaml|dir>",
		Short: "Run conversion conformance scenarios",
		Long: `Run the checks in a YAML scenario file, or every scenario in a
directory, against the catalog. Each check converts a value between two
units and compares the result against an expectation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckCmd(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheckCmd(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	scenarios, err := loadScenarios(path)
	if err != nil {
		_ = formatter.Error(ErrCodeUsage, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeUsage, err)
	}

	cat, err := loadCatalog(opts)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeCatalog, err)
	}

	var summaries []CheckSummary
	failed := 0
	for _, s := range scenarios {
		res, err := harness.Run(s, cat)
		if err != nil {
			_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
			return WrapExitError(ExitCommandError, ErrCodeCatalog, err)
		}
		summary := CheckSummary{
			Scenario: s.Name,
			Pass:     res.Pass,
			Checks:   len(res.Checks),
			Report:   harness.RenderReport(res),
		}
		for _, cr := range res.Checks {
			if !cr.Pass {
				summary.Failed++
			}
		}
		if !res.Pass {
			failed++
		}
		summaries = append(summaries, summary)
	}

	if opts.Format == "json" {
		if err := formatter.Success(summaries); err != nil {
			return err
		}
	} else {
		for i, s := range summaries {
			if i > 0 {
				fmt.Fprintln(formatter.Writer)
			}
			fmt.Fprint(formatter.Writer, s.Report)
		}
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenario(s) failed", failed, len(scenarios)))
	}
	return nil
}

// loadScenarios accepts either a single scenario file or a directory of
// them.
func loadScenarios(path string) ([]*harness.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scenario path: %w", err)
	}
	if info.IsDir() {
		scenarios, err := harness.LoadScenarioDir(path)
		if err != nil {
			return nil, err
		}
		if len(scenarios) == 0 {
			return nil, fmt.Errorf("no scenarios found in %s", path)
		}
		return scenarios, nil
	}
	s, err := harness.LoadScenario(path)
	if err != nil {
		return nil, err
	}
	return []*harness.Scenario{s}, nil
}
