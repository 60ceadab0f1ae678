package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/registry"
	"github.com/spf13/cobra"
)

var improveCmd = &cobra.Command{
	Use:   "improve",
	Short: "Improve a single field with AI",
	Long:  "Generates an improved version of one field using the item's context, the rest of the document, and the user profile. The document file is not modified; the suggestion is printed.",
	RunE:  runImprove,
}

var (
	improveDocumentFile string
	improveSectionID    string
	improveItemID       string
	improveFieldID      string
	improveDraft        string
	improveJobTitle     string
	improveJobPosting   string
	improveBio          string
	improveAPIKey       string
	improveVerbose      bool
)

func init() {
	improveCmd.Flags().StringVarP(&improveDocumentFile, "document", "d", "", "Path to document JSON file")
	improveCmd.Flags().StringVarP(&improveSectionID, "section", "s", "", "Section id (required)")
	improveCmd.Flags().StringVarP(&improveItemID, "item", "i", "", "Item id (optional for single-cardinality sections)")
	improveCmd.Flags().StringVarP(&improveFieldID, "field", "f", "", "Field id (required)")
	improveCmd.Flags().StringVar(&improveDraft, "draft", "", "In-progress editor text for the field (overrides the saved value)")
	improveCmd.Flags().StringVar(&improveJobTitle, "job-title", "", "Target role title attached to the prompt")
	improveCmd.Flags().StringVar(&improveJobPosting, "job-posting", "", "Path to a job posting file (text or HTML)")
	improveCmd.Flags().StringVar(&improveBio, "bio", "", "Free-text candidate bio attached to the prompt")
	improveCmd.Flags().StringVar(&improveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	improveCmd.Flags().BoolVarP(&improveVerbose, "verbose", "v", false, "Print the assembled AI context before the suggestion")

	if err := improveCmd.MarkFlagRequired("section"); err != nil {
		panic(fmt.Sprintf("failed to mark section flag as required: %v", err))
	}
	if err := improveCmd.MarkFlagRequired("field"); err != nil {
		panic(fmt.Sprintf("failed to mark field flag as required: %v", err))
	}

	rootCmd.AddCommand(improveCmd)
}

func runImprove(_ *cobra.Command, _ []string) error {
	return runFieldGeneration(fieldGenerationParams{
		documentFile: improveDocumentFile,
		sectionID:    improveSectionID,
		itemID:       improveItemID,
		fieldID:      improveFieldID,
		draft:        improveDraft,
		jobTitle:     improveJobTitle,
		jobPosting:   improveJobPosting,
		bio:          improveBio,
		apiKey:       improveAPIKey,
		verbose:      improveVerbose,
		task:         llm.TaskImprove,
		label:        "Improved text",
	})
}

// fieldGenerationParams carries the shared inputs of the improve and
// autocomplete commands, which differ only in the task they run.
type fieldGenerationParams struct {
	documentFile string
	sectionID    string
	itemID       string
	fieldID      string
	draft        string
	jobTitle     string
	jobPosting   string
	bio          string
	apiKey       string
	verbose      bool
	task         llm.Task
	label        string
}

func runFieldGeneration(params fieldGenerationParams) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	documentFile := firstNonEmpty(params.documentFile, cfg.Document)
	if documentFile == "" {
		return fmt.Errorf("a document is required (use --document or the config file)")
	}

	doc, err := loadDocument(documentFile)
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(params.apiKey, cfg.APIKey)
	if err != nil {
		return err
	}

	profile, err := buildProfile(
		firstNonEmpty(params.jobTitle, cfg.JobTitle),
		firstNonEmpty(params.jobPosting, cfg.JobPosting),
		firstNonEmpty(params.bio, cfg.Bio),
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

	req := registry.ContextRequest{
		Document:  doc,
		SectionID: params.sectionID,
		ItemID:    params.itemID,
		FieldID:   params.fieldID,
		Task:      params.task,
		DraftText: params.draft,
	}

	printer := observability.NewPrinter(os.Stdout)

	if params.verbose || cfg.Verbose {
		aiCtx, err := reg.BuildAIContext(req)
		if err != nil {
			return fmt.Errorf("failed to build AI context: %w", err)
		}
		printer.PrintAIContext(aiCtx)
	}

	var suggestion string
	switch params.task {
	case llm.TaskAutocomplete:
		suggestion, err = reg.Autocomplete(ctx, req)
	default:
		suggestion, err = reg.ImproveField(ctx, req)
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	printer.PrintSuggestion(params.label, suggestion)

	return nil
}
