package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListResult holds the names for one catalog section.
type ListResult struct {
	Kind  string   `json:"kind"`
	Names []string `json:"names"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <units|specs|origins>",
		Short: "List catalog entries",
		Long: `List the unit symbols, quantity specs or point origins known to the
catalog, including any site catalog given with --catalog.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		ValidArgs:     []string{"units", "specs", "origins"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, kind string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cat, err := loadCatalog(opts)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeCatalog, err)
	}

	var names []string
	switch kind {
	case "units":
		names = cat.UnitSymbols()
	case "specs":
		names = cat.SpecNames()
	case "origins":
		names = cat.OriginNames()
	default:
		err := fmt.Errorf("unknown section %q: must be units, specs or origins", kind)
		_ = formatter.Error(ErrCodeUsage, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeUsage, err)
	}

	if opts.Format == "json" {
		return formatter.Success(ListResult{Kind: kind, Names: names})
	}
	for _, n := range names {
		fmt.Fprintln(formatter.Writer, n)
	}
	return nil
}
