// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/travel-catalog/internal/catalog"
	"github.com/pdiddy/travel-catalog/internal/report"
)

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "List the section titles the extractor recognises",
	Long: `Titles prints each section key with the exact title text that opens the
section in a catalogue. A paragraph must match the title byte for byte after
surrounding whitespace is trimmed, including the leading emoji.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return report.JSON(cmd.OutOrStdout(), catalog.Titles())
		}
		w := cmd.OutOrStdout()
		for _, t := range catalog.Titles() {
			fmt.Fprintf(w, "%-9s  %s\n", t.Key, t.Text)
		}
		return nil
	},
}

func init() {
	titlesCmd.Flags().Bool("json", false, "output titles as JSON")

	rootCmd.AddCommand(titlesCmd)
}
