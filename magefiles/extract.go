//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract builds the CLI and runs it against a catalogue document.
func Extract(document string) error {
	mg.Deps(Build)
	if err := sh.RunV("./bin/travel-catalog", "extract", document); err != nil {
		return fmt.Errorf("extracting %s: %w", document, err)
	}
	return nil
}

// Titles lists the section titles the extractor recognises.
func Titles() error {
	mg.Deps(Build)
	return sh.RunV("./bin/travel-catalog", "titles")
}
