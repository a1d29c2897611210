// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/travel-catalog/internal/correlate"
	"github.com/pdiddy/travel-catalog/internal/report"
	"github.com/pdiddy/travel-catalog/pkg/types"
)

var correlateCmd = &cobra.Command{
	Use:   "correlate <report>",
	Short: "Recompute the derived categories from an exported report",
	Long: `Correlate reads the section lists from a report written by
"extract --format yaml" or "extract --format json" and prints the derived
categories. Files ending in .json are read as JSON, everything else as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorrelate,
}

func runCorrelate(cmd *cobra.Command, args []string) error {
	lists, err := report.ReadSections(args[0])
	if err != nil {
		return err
	}
	derived := correlate.Correlate(lists)

	format, _ := cmd.Flags().GetString("format")
	noColor, _ := cmd.Flags().GetBool("no-color")
	w := cmd.OutOrStdout()

	switch types.OutputFormat(format) {
	case types.OutputText:
		return report.Derived(w, derived, report.Options{NoColor: noColor})
	case types.OutputYAML:
		return report.YAML(w, derived)
	case types.OutputJSON:
		return report.JSON(w, derived)
	default:
		return fmt.Errorf("%w %q: use text, yaml, or json", report.ErrUnknownFormat, format)
	}
}

func init() {
	correlateCmd.Flags().StringP("format", "f", "text", "output format: text, yaml, or json")
	correlateCmd.Flags().Bool("no-color", false, "disable terminal styling in the text output")

	rootCmd.AddCommand(correlateCmd)
}
