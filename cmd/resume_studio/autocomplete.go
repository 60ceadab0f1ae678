package main

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/spf13/cobra"
)

var autocompleteCmd = &cobra.Command{
	Use:   "autocomplete",
	Short: "Autocomplete a field from a partial draft",
	Long:  "Continues the in-progress text of an autocomplete-eligible field. Fields that are not flagged for autocomplete produce no suggestion.",
	RunE:  runAutocomplete,
}

var (
	autocompleteDocumentFile string
	autocompleteSectionID    string
	autocompleteItemID       string
	autocompleteFieldID      string
	autocompleteDraft        string
	autocompleteJobTitle     string
	autocompleteJobPosting   string
	autocompleteBio          string
	autocompleteAPIKey       string
	autocompleteVerbose      bool
)

func init() {
	autocompleteCmd.Flags().StringVarP(&autocompleteDocumentFile, "document", "d", "", "Path to document JSON file")
	autocompleteCmd.Flags().StringVarP(&autocompleteSectionID, "section", "s", "", "Section id (required)")
	autocompleteCmd.Flags().StringVarP(&autocompleteItemID, "item", "i", "", "Item id (optional for single-cardinality sections)")
	autocompleteCmd.Flags().StringVarP(&autocompleteFieldID, "field", "f", "", "Field id (required)")
	autocompleteCmd.Flags().StringVar(&autocompleteDraft, "draft", "", "Partial text to continue (required)")
	autocompleteCmd.Flags().StringVar(&autocompleteJobTitle, "job-title", "", "Target role title attached to the prompt")
	autocompleteCmd.Flags().StringVar(&autocompleteJobPosting, "job-posting", "", "Path to a job posting file (text or HTML)")
	autocompleteCmd.Flags().StringVar(&autocompleteBio, "bio", "", "Free-text candidate bio attached to the prompt")
	autocompleteCmd.Flags().StringVar(&autocompleteAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	autocompleteCmd.Flags().BoolVarP(&autocompleteVerbose, "verbose", "v", false, "Print the assembled AI context before the suggestion")

	if err := autocompleteCmd.MarkFlagRequired("section"); err != nil {
		panic(fmt.Sprintf("failed to mark section flag as required: %v", err))
	}
	if err := autocompleteCmd.MarkFlagRequired("field"); err != nil {
		panic(fmt.Sprintf("failed to mark field flag as required: %v", err))
	}
	if err := autocompleteCmd.MarkFlagRequired("draft"); err != nil {
		panic(fmt.Sprintf("failed to mark draft flag as required: %v", err))
	}

	rootCmd.AddCommand(autocompleteCmd)
}

func runAutocomplete(_ *cobra.Command, _ []string) error {
	return runFieldGeneration(fieldGenerationParams{
		documentFile: autocompleteDocumentFile,
		sectionID:    autocompleteSectionID,
		itemID:       autocompleteItemID,
		fieldID:      autocompleteFieldID,
		draft:        autocompleteDraft,
		jobTitle:     autocompleteJobTitle,
		jobPosting:   autocompleteJobPosting,
		bio:          autocompleteBio,
		apiKey:       autocompleteAPIKey,
		verbose:      autocompleteVerbose,
		task:         llm.TaskAutocomplete,
		label:        "Completion",
	})
}
