package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage documents stored in PostgreSQL",
	Long:  "Saves, exports, lists, and deletes named resume documents in PostgreSQL. Stored legacy documents are migrated to the dynamic format on load.",
}

var documentSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a document file under a name",
	RunE:  runDocumentSave,
}

var documentExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored document to a file",
	RunE:  runDocumentExport,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored document names",
	RunE:  runDocumentList,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored document and its snapshots",
	RunE:  runDocumentDelete,
}

var (
	documentName       string
	documentInputFile  string
	documentOutputFile string
)

func init() {
	documentSaveCmd.Flags().StringVarP(&documentName, "name", "n", "", "Document name (required)")
	documentSaveCmd.Flags().StringVarP(&documentInputFile, "document", "d", "", "Path to document JSON file (required)")
	documentExportCmd.Flags().StringVarP(&documentName, "name", "n", "", "Document name (required)")
	documentExportCmd.Flags().StringVarP(&documentOutputFile, "out", "o", "", "Path to output document JSON file (required)")
	documentDeleteCmd.Flags().StringVarP(&documentName, "name", "n", "", "Document name (required)")
	documentCmd.PersistentFlags().StringVar(&snapshotDatabaseURL, "database-url", "", "PostgreSQL connection URL (overrides DATABASE_URL env var)")

	for _, pair := range []struct {
		cmd  *cobra.Command
		flag string
	}{
		{documentSaveCmd, "name"},
		{documentSaveCmd, "document"},
		{documentExportCmd, "name"},
		{documentExportCmd, "out"},
		{documentDeleteCmd, "name"},
	} {
		if err := pair.cmd.MarkFlagRequired(pair.flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", pair.flag, err))
		}
	}

	documentCmd.AddCommand(documentSaveCmd)
	documentCmd.AddCommand(documentExportCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentSave(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument(documentInputFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	conn, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	id, err := conn.SaveDocument(ctx, documentName, doc)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Saved document %q (%s)\n", documentName, id)

	return nil
}

func runDocumentExport(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	conn, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	record, err := conn.GetDocument(ctx, documentName)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	if record == nil {
		return fmt.Errorf("document %q not found", documentName)
	}

	if err := writeDocument(documentOutputFile, record.Document); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Exported document %q\n", documentName)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", documentOutputFile)

	return nil
}

func runDocumentList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	conn, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	names, err := conn.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(names) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No stored documents")
		return nil
	}

	for _, name := range names {
		_, _ = fmt.Fprintln(os.Stdout, name)
	}

	return nil
}

func runDocumentDelete(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	conn, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.DeleteDocument(ctx, documentName); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Deleted document %q\n", documentName)

	return nil
}
