package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/measura/measura/internal/catalog"
)

// ValidationIssue is one diagnostic from catalog validation.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Files  int               `json:"files"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog-dir>",
		Short: "Validate a CUE catalog directory",
		Long: `Validate the unit, spec and origin declarations in a CUE catalog
directory. All problems are collected and reported together.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, errs := catalog.LoadDir(dir, catalog.Builtin(), catalog.CollectAll)
	if result == nil && len(errs) > 0 {
		// Directory problems are command errors, not validation findings.
		var catErr *catalog.Error
		if errors.As(errs[0], &catErr) && catErr.Code != "" {
			if isLoadFailure(catErr.Code) {
				_ = formatter.Error(catErr.Code, catErr.Message, nil)
				return WrapExitError(ExitCommandError, catErr.Code, errs[0])
			}
		}
	}

	issues := make([]ValidationIssue, 0, len(errs))
	for _, err := range errs {
		issues = append(issues, toIssue(err))
	}

	files := 0
	if result != nil {
		files = result.FileCount
		formatter.VerboseLog("compiled %d CUE file(s) from %s", files, dir)
	}

	if len(issues) > 0 {
		return outputValidationIssues(formatter, files, issues)
	}
	return outputValidateSuccess(formatter, files)
}

// isLoadFailure reports whether a code describes the directory itself
// rather than its declarations.
func isLoadFailure(code string) bool {
	switch code {
	case catalog.ErrCodeNotFound, catalog.ErrCodeNoFiles, catalog.ErrCodeLoadFailed, catalog.ErrCodeBuildFailed:
		return true
	}
	return false
}

func toIssue(err error) ValidationIssue {
	var compileErr *catalog.CompileError
	if errors.As(err, &compileErr) {
		issue := ValidationIssue{
			Field:   compileErr.Field,
			Message: compileErr.Message,
		}
		if compileErr.Pos.IsValid() {
			issue.File = compileErr.Pos.Filename()
			issue.Line = compileErr.Pos.Line()
		}
		return issue
	}
	var catErr *catalog.Error
	if errors.As(err, &catErr) {
		return ValidationIssue{
			Field:   catErr.Name,
			Message: fmt.Sprintf("%s: %s", catErr.Code, catErr.Message),
		}
	}
	return ValidationIssue{Field: "catalog", Message: err.Error()}
}

func outputValidateSuccess(formatter *OutputFormatter, files int) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Files: files})
	}
	fmt.Fprintf(formatter.Writer, "✓ catalog valid (%d file(s))\n", files)
	return nil
}

func outputValidationIssues(formatter *OutputFormatter, files int, issues []ValidationIssue) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Files: files, Issues: issues},
			Error: &CLIError{
				Code:    "CATALOG_INVALID",
				Message: issues[0].Message,
			},
		}
		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(issues)))
	}

	fmt.Fprintln(formatter.Writer, "✗ catalog invalid")
	fmt.Fprintln(formatter.Writer)
	for _, issue := range issues {
		if issue.Line > 0 {
			fmt.Fprintf(formatter.Writer, "%s:%d\n", issue.File, issue.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", issue.Field, issue.Message)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(issues)))
}
