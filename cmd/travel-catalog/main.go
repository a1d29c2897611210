// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the travel-catalog CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the CLI logger. Diagnostics go to stderr so stdout carries only reports.
var log = logrus.New()

// rootCmd is the base command for the travel-catalog CLI.
var rootCmd = &cobra.Command{
	Use:   "travel-catalog",
	Short: "Extract destination lists from a travel catalogue and correlate them",
	Long: `travel-catalog reads a destination catalogue (DOCX or plain text) organised
into titled sections, extracts the six base city lists (beaches, capitals,
inland towns, plane, bus, and ship packages), and derives new categories by
intersecting them.

Use extract to process a document, correlate to recompute categories from an
exported report, and titles to list the section titles the extractor matches.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		configureLogger(viper.GetBool("verbose"))
		if used := viper.ConfigFileUsed(); used != "" {
			log.WithField("config", used).Debug("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./travel-catalog.yaml or ~/.config/travel-catalog/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("travel-catalog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "travel-catalog"))
		}
	}

	viper.SetEnvPrefix("TRAVEL_CATALOG")
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}
}

func configureLogger(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
