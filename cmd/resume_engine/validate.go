package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/config"
	"github.com/jonathan/resume-engine/internal/observability"
	"github.com/jonathan/resume-engine/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a profile snapshot and style config",
	Long:  "Checks the given files against the embedded JSON schemas and the field rules applied before rendering.",
	RunE:  runValidate,
}

var (
	validateSnapshotFile string
	validateStyleFile    string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSnapshotFile, "snapshot", "s", "", "Path to profile snapshot (JSON or YAML)")
	validateCmd.Flags().StringVar(&validateStyleFile, "style", "", "Path to style config (JSON or YAML)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	return validateFiles(cmd.OutOrStdout(), validateSnapshotFile, validateStyleFile, appConfig.Verbose)
}

// validateFiles reports on each given file and fails when any of them is invalid.
func validateFiles(out io.Writer, snapshotPath, stylePath string, verbose bool) error {
	if snapshotPath == "" && stylePath == "" {
		return fmt.Errorf("at least one of --snapshot or --style is required")
	}

	var failed []string
	check := func(name, path string, load func(string) error) {
		if path == "" {
			return
		}
		err := load(path)
		fields := fieldErrors(err)

		if verbose {
			observability.NewPrinter(out).PrintValidation(name, fields)
		}
		switch {
		case err == nil:
			fmt.Fprintf(out, "✅ %s is valid: %s\n", name, path)
		case len(fields) > 0:
			failed = append(failed, name)
			fmt.Fprintf(out, "❌ %s is invalid: %s\n", name, path)
			for _, f := range fields {
				fmt.Fprintf(out, "  - %s: %s\n", f.Field, f.Message)
			}
		default:
			failed = append(failed, name)
			fmt.Fprintf(out, "❌ %s could not be checked: %v\n", name, err)
		}
	}

	check("snapshot", snapshotPath, func(path string) error {
		_, err := config.LoadProfileSnapshot(path)
		return err
	})
	check("style", stylePath, func(path string) error {
		_, err := config.LoadStyleConfig(path)
		return err
	})

	if len(failed) > 0 {
		return fmt.Errorf("validation failed: %v", failed)
	}
	return nil
}

// fieldErrors flattens schema and struct rule failures
func fieldErrors(err error) []schemas.FieldError {
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return schemaErr.Errors
	}
	var structErrs validator.ValidationErrors
	if errors.As(err, &structErrs) {
		out := make([]schemas.FieldError, 0, len(structErrs))
		for _, fe := range structErrs {
			out = append(out, schemas.FieldError{Field: fe.Namespace(), Message: "failed " + fe.Tag()})
		}
		return out
	}
	return nil
}
