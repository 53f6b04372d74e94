package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/measura/measura/internal/catalog"
	"github.com/measura/measura/internal/format"
	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/quantity"
)

// ConvertResult holds a completed conversion.
type ConvertResult struct {
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	Rendered string  `json:"rendered"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var specName string
	var exact bool

	cmd := &cobra.Command{
		Use:   "convert <value> <from-unit> <to-unit>",
		Short: "Convert a quantity between units",
		Long: `Convert a value from one unit to another.

Units are looked up by symbol in the built-in catalog plus any site
catalog given with --catalog. With --exact the value must be an integer
and the conversion fails instead of rounding.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], args[1], args[2], specName, exact, cmd)
		},
	}

	cmd.Flags().StringVar(&specName, "spec", "", "quantity spec to convert under (default: the unit's kind)")
	cmd.Flags().BoolVar(&exact, "exact", false, "integer conversion, failing on fractional results")

	return cmd
}

func runConvert(opts *RootOptions, valueArg, from, to, specName string, exact bool, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cat, err := loadCatalog(opts)
	if err != nil {
		return outputConvertError(formatter, ErrCodeCatalog, err)
	}
	fopts, err := formatOptions(opts)
	if err != nil {
		return outputConvertError(formatter, ErrCodeUsage, err)
	}

	ref, err := cat.Reference(specName, from)
	if err != nil {
		return outputConvertError(formatter, ErrCodeCatalog, err)
	}
	target, err := cat.Unit(to)
	if err != nil {
		return outputConvertError(formatter, ErrCodeCatalog, err)
	}
	formatter.VerboseLog("converting under spec %q", ref.Spec().Name())

	var result ConvertResult
	if exact {
		v, err := strconv.ParseInt(valueArg, 10, 64)
		if err != nil {
			return outputConvertError(formatter, ErrCodeUsage, errors.New("--exact requires an integer value"))
		}
		out, err := quantity.New(v, ref).In(target)
		if err != nil {
			return outputConversionFailure(formatter, err)
		}
		result = ConvertResult{
			Value:    float64(out.Value()),
			Unit:     out.Ref().Symbol(),
			Rendered: format.Quantity(out, fopts),
		}
	} else {
		v, err := strconv.ParseFloat(valueArg, 64)
		if err != nil {
			return outputConvertError(formatter, ErrCodeUsage, errors.New("value must be a number"))
		}
		out, err := quantity.New(v, ref).In(target)
		if err != nil {
			return outputConversionFailure(formatter, err)
		}
		result = ConvertResult{
			Value:    out.Value(),
			Unit:     out.Ref().Symbol(),
			Rendered: format.Quantity(out, fopts),
		}
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(result.Rendered)
}

// outputConvertError reports a command-level problem: bad arguments or
// names the catalog does not know.
func outputConvertError(formatter *OutputFormatter, code string, err error) error {
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(ExitCommandError, code, err)
}

// outputConversionFailure reports a conversion the engine refused:
// mismatched kinds or an inexact integer result.
func outputConversionFailure(formatter *OutputFormatter, err error) error {
	code := ErrCodeConversion
	if qspec.IsKindMismatch(err) {
		code = "KIND_MISMATCH"
	}
	var qErr *quantity.Error
	if errors.As(err, &qErr) {
		code = qErr.Code
	}
	var cErr *catalog.Error
	if errors.As(err, &cErr) {
		code = cErr.Code
	}
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(ExitFailure, code, err)
}
