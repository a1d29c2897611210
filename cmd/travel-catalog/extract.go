// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/travel-catalog/internal/pipeline"
	"github.com/pdiddy/travel-catalog/internal/report"
)

var extractCmd = &cobra.Command{
	Use:   "extract [document]",
	Short: "Extract the section lists from a catalogue and derive new categories",
	Long: `Extract reads a catalogue document (.docx, .txt, or .md), collects the city
names listed under each recognised section title, and derives four categories
by intersecting the lists:

  capitais_praianas  capitals that are beach destinations
  praias_onibus      beach destinations with bus packages
  interior_aviao     inland towns with plane packages
  capitais_navio     ship routes that are also capitals

The report includes the time spent on each stage. With --format yaml or json
the report can be fed back into the correlate command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper(), args)
	if err != nil {
		return err
	}

	opts := pipeline.Options{Logger: log}
	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		opts.Trace = cmd.ErrOrStderr()
	}

	rep, err := pipeline.Run(cmd.Context(), cfg.Document, opts)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	noColor := cfg.NoColor
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", cfg.Output, err)
		}
		defer f.Close()
		w = f
		noColor = true
	}

	if err := report.Write(w, cfg.Format, rep, report.Options{NoColor: noColor}); err != nil {
		return err
	}
	if cfg.Output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", cfg.Output)
	}
	return nil
}

func init() {
	extractCmd.Flags().StringP("format", "f", "text", "report format: text, yaml, or json")
	extractCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	extractCmd.Flags().Bool("no-color", false, "disable terminal styling in the text report")
	extractCmd.Flags().Bool("trace", false, "print the extractor state transition for every paragraph to stderr")

	viper.BindPFlag("format", extractCmd.Flags().Lookup("format"))
	viper.BindPFlag("output", extractCmd.Flags().Lookup("output"))
	viper.BindPFlag("no_color", extractCmd.Flags().Lookup("no-color"))

	rootCmd.AddCommand(extractCmd)
}
