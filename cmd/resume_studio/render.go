package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/registry"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a document into its presentable form",
	Long:  "Transforms a document into the renderable view: visible sections only, fields in schema order, empty values omitted. Legacy documents are migrated on load.",
	RunE:  runRender,
}

var (
	renderDocumentFile string
	renderOutputFile   string
	renderFormat       string
	renderTemplateFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderDocumentFile, "document", "d", "", "Path to document JSON file")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to write output (defaults to stdout)")
	renderCmd.Flags().StringVar(&renderFormat, "format", "text", "Output format: text, json, or latex")
	renderCmd.Flags().StringVar(&renderTemplateFile, "template", "", "Path to a custom LaTeX template (latex format only)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	documentFile := firstNonEmpty(renderDocumentFile, cfg.Document)
	if documentFile == "" {
		return fmt.Errorf("a document is required (use --document or the config file)")
	}

	doc, err := loadDocument(documentFile)
	if err != nil {
		return err
	}

	reg, err := registry.New()
	if err != nil {
		return fmt.Errorf("failed to create schema registry: %w", err)
	}

	renderable := rendering.Transform(doc, reg)

	switch renderFormat {
	case "text":
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRenderableResume(renderable)
		return nil
	case "json":
		jsonBytes, err := json.MarshalIndent(renderable, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal renderable JSON: %w", err)
		}
		return writeRenderOutput(jsonBytes)
	case "latex":
		latex, err := rendering.ToLaTeX(renderable, renderTemplateFile)
		if err != nil {
			return fmt.Errorf("failed to render LaTeX: %w", err)
		}
		return writeRenderOutput([]byte(latex))
	default:
		return fmt.Errorf("unknown format %q (expected text, json, or latex)", renderFormat)
	}
}

func writeRenderOutput(content []byte) error {
	if renderOutputFile == "" {
		_, _ = os.Stdout.Write(content)
		if len(content) > 0 && content[len(content)-1] != '\n' {
			_, _ = fmt.Fprintln(os.Stdout)
		}
		return nil
	}
	if err := os.WriteFile(renderOutputFile, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", renderOutputFile)
	return nil
}
