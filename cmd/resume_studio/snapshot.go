package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/db"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage named snapshots of stored documents",
	Long:  "Saves, lists, and restores named snapshots of documents stored in PostgreSQL. Snapshots are immutable copies; restoring writes the snapshot content to a file without touching the stored document.",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current state of a stored document as a snapshot",
	RunE:  runSnapshotSave,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the snapshots of a stored document",
	RunE:  runSnapshotList,
}

var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Write a snapshot's content to a document file",
	RunE:  runSnapshotRestore,
}

var (
	snapshotName        string
	snapshotLabel       string
	snapshotDatabaseURL string
	snapshotOutputFile  string
)

func init() {
	snapshotCmd.PersistentFlags().StringVarP(&snapshotName, "name", "n", "", "Stored document name (required)")
	snapshotCmd.PersistentFlags().StringVar(&snapshotDatabaseURL, "database-url", "", "PostgreSQL connection URL (overrides DATABASE_URL env var)")

	snapshotSaveCmd.Flags().StringVarP(&snapshotLabel, "label", "l", "", "Snapshot label (required)")
	snapshotRestoreCmd.Flags().StringVarP(&snapshotLabel, "label", "l", "", "Snapshot label (required)")
	snapshotRestoreCmd.Flags().StringVarP(&snapshotOutputFile, "out", "o", "", "Path to output document JSON file (required)")

	if err := snapshotCmd.MarkPersistentFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}
	if err := snapshotSaveCmd.MarkFlagRequired("label"); err != nil {
		panic(fmt.Sprintf("failed to mark label flag as required: %v", err))
	}
	if err := snapshotRestoreCmd.MarkFlagRequired("label"); err != nil {
		panic(fmt.Sprintf("failed to mark label flag as required: %v", err))
	}
	if err := snapshotRestoreCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotRestoreCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// connectDB opens the database from the flag, the config file, or the
// DATABASE_URL environment variable, in that order.
func connectDB(ctx context.Context) (*db.DB, error) {
	cfg, err := loadCLIConfig()
	if err != nil {
		return nil, err
	}

	databaseURL := firstNonEmpty(snapshotDatabaseURL, cfg.DatabaseURL, os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --database-url flag)")
	}

	conn, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := conn.EnsureSchema(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	return conn, nil
}

func runSnapshotSave(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	conn, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	record, err := conn.GetDocument(ctx, snapshotName)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	if record == nil {
		return fmt.Errorf("document %q not found", snapshotName)
	}

	snapshotID, err := conn.SaveSnapshot(ctx, record.ID, snapshotLabel, record.Document)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Saved snapshot %q of document %q (%s)\n", snapshotLabel, snapshotName, snapshotID)

	return nil
}

func runSnapshotList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	conn, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	record, err := conn.GetDocument(ctx, snapshotName)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	if record == nil {
		return fmt.Errorf("document %q not found", snapshotName)
	}

	snapshots, err := conn.ListSnapshots(ctx, record.ID)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		_, _ = fmt.Fprintf(os.Stdout, "No snapshots for document %q\n", snapshotName)
		return nil
	}

	for _, snap := range snapshots {
		_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\n", snap.Label, snap.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

func runSnapshotRestore(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	conn, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	record, err := conn.GetDocument(ctx, snapshotName)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	if record == nil {
		return fmt.Errorf("document %q not found", snapshotName)
	}

	doc, err := conn.GetSnapshot(ctx, record.ID, snapshotLabel)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("snapshot %q not found for document %q", snapshotLabel, snapshotName)
	}

	if err := writeDocument(snapshotOutputFile, doc); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Restored snapshot %q of document %q\n", snapshotLabel, snapshotName)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", snapshotOutputFile)

	return nil
}
