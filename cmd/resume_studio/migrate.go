package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/migration"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate a legacy resume to the dynamic format",
	Long:  "Converts a fixed-shape legacy resume JSON file into the dynamic sectioned document format. Documents already in the dynamic format pass through unchanged.",
	RunE:  runMigrate,
}

var (
	migrateInputFile  string
	migrateOutputFile string
)

func init() {
	migrateCmd.Flags().StringVarP(&migrateInputFile, "in", "i", "", "Path to legacy resume JSON file (required)")
	migrateCmd.Flags().StringVarP(&migrateOutputFile, "out", "o", "", "Path to output document JSON file (required)")

	if err := migrateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := migrateCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(migrateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	wasLegacy := migration.IsLegacy(content)

	doc, err := migration.Load(content)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	if err := writeDocument(migrateOutputFile, doc); err != nil {
		return err
	}

	if wasLegacy {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully migrated legacy resume (%d sections)\n", len(doc.Sections))
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Document is already in the dynamic format (%d sections)\n", len(doc.Sections))
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", migrateOutputFile)

	return nil
}
