package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var improveSectionCmd = &cobra.Command{
	Use:   "improve-section",
	Short: "Improve every item of a section in one batch",
	Long:  "Sends all items of a batch-capable section to the AI in a single request and merges the improved items back. On any count mismatch or validation failure the document is left unchanged.",
	RunE:  runImproveSection,
}

var (
	batchImproveDocumentFile string
	batchImproveSectionID          string
	batchImproveOutputFile   string
	batchImproveJobTitle     string
	batchImproveJobPosting   string
	batchImproveBio          string
	batchImproveAPIKey       string
)

func init() {
	improveSectionCmd.Flags().StringVarP(&batchImproveDocumentFile, "document", "d", "", "Path to document JSON file")
	improveSectionCmd.Flags().StringVarP(&batchImproveSectionID, "section", "s", "", "Section id (required)")
	improveSectionCmd.Flags().StringVarP(&batchImproveOutputFile, "out", "o", "", "Path to write the improved document (defaults to overwriting the input)")
	improveSectionCmd.Flags().StringVar(&batchImproveJobTitle, "job-title", "", "Target role title attached to the prompt")
	improveSectionCmd.Flags().StringVar(&batchImproveJobPosting, "job-posting", "", "Path to a job posting file (text or HTML)")
	improveSectionCmd.Flags().StringVar(&batchImproveBio, "bio", "", "Free-text candidate bio attached to the prompt")
	improveSectionCmd.Flags().StringVar(&batchImproveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	if err := improveSectionCmd.MarkFlagRequired("section"); err != nil {
		panic(fmt.Sprintf("failed to mark section flag as required: %v", err))
	}

	rootCmd.AddCommand(improveSectionCmd)
}

func runImproveSection(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	documentFile := firstNonEmpty(batchImproveDocumentFile, cfg.Document)
	if documentFile == "" {
		return fmt.Errorf("a document is required (use --document or the config file)")
	}

	doc, err := loadDocument(documentFile)
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(batchImproveAPIKey, cfg.APIKey)
	if err != nil {
		return err
	}

	profile, err := buildProfile(
		firstNonEmpty(batchImproveJobTitle, cfg.JobTitle),
		firstNonEmpty(batchImproveJobPosting, cfg.JobPosting),
		firstNonEmpty(batchImproveBio, cfg.Bio),
	)
	if err != nil {
		return err
	}

	ctx := context.Background()
	reg, client, err := newAIRegistry(ctx, apiKey, profile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	improved, err := reg.BatchImproveSection(ctx, doc, batchImproveSectionID)
	if err != nil {
		return fmt.Errorf("failed to improve section: %w", err)
	}

	outputFile := batchImproveOutputFile
	if outputFile == "" {
		outputFile = documentFile
	}
	if err := writeDocument(outputFile, improved); err != nil {
		return err
	}

	section := improved.Section(batchImproveSectionID)
	itemCount := 0
	if section != nil {
		itemCount = len(section.Items)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully improved %d items in section %s\n", itemCount, batchImproveSectionID)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputFile)

	return nil
}
