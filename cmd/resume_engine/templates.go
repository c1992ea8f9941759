package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/rendering"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	RunE:  runTemplates,
}

var templatesJSON bool

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Print as JSON")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	return printTemplates(cmd.OutOrStdout(), templatesJSON)
}

func printTemplates(out io.Writer, asJSON bool) error {
	templates := rendering.Templates()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(templates)
	}

	for _, t := range templates {
		desc := t.Description
		if t.AliasOf != "" {
			desc = fmt.Sprintf("%s (alias of %s)", desc, t.AliasOf)
		}
		fmt.Fprintf(out, "%-8s %s\n", t.ID, desc)
	}
	return nil
}
