package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the whole document with AI",
	Long:  "Builds the full document context and asks the AI for an overall review with concrete, section-level feedback.",
	RunE:  runReview,
}

var (
	reviewDocumentFile string
	reviewJobTitle     string
	reviewJobPosting   string
	reviewBio          string
	reviewAPIKey       string
)

func init() {
	reviewCmd.Flags().StringVarP(&reviewDocumentFile, "document", "d", "", "Path to document JSON file")
	reviewCmd.Flags().StringVar(&reviewJobTitle, "job-title", "", "Target role title attached to the prompt")
	reviewCmd.Flags().StringVar(&reviewJobPosting, "job-posting", "", "Path to a job posting file (text or HTML)")
	reviewCmd.Flags().StringVar(&reviewBio, "bio", "", "Free-text candidate bio attached to the prompt")
	reviewCmd.Flags().StringVar(&reviewAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(reviewCmd)
}

func runReview(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	documentFile := firstNonEmpty(reviewDocumentFile, cfg.Document)
	if documentFile == "" {
		return fmt.Errorf("a document is required (use --document or the config file)")
	}

	doc, err := loadDocument(documentFile)
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(reviewAPIKey, cfg.APIKey)
	if err != nil {
		return err
	}

	profile, err := buildProfile(
		firstNonEmpty(reviewJobTitle, cfg.JobTitle),
		firstNonEmpty(reviewJobPosting, cfg.JobPosting),
		firstNonEmpty(reviewBio, cfg.Bio),
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

	review, err := reg.ReviewDocument(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to review document: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSuggestion("Document review", review)

	return nil
}
