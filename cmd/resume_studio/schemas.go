package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/registry"
	"github.com/spf13/cobra"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the registered section schemas",
	Long:  "Lists every registered section schema with its fields, types, and AI capabilities, in registration order.",
	RunE:  runSchemas,
}

var schemasJSON bool

func init() {
	schemasCmd.Flags().BoolVar(&schemasJSON, "json", false, "Output schemas as JSON instead of formatted text")

	rootCmd.AddCommand(schemasCmd)
}

func runSchemas(_ *cobra.Command, _ []string) error {
	reg, err := registry.New()
	if err != nil {
		return fmt.Errorf("failed to create schema registry: %w", err)
	}

	all := reg.AllSectionSchemas()

	if schemasJSON {
		jsonBytes, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schemas JSON: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSchemas(all)

	return nil
}
