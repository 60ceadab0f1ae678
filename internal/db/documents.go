package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-studio/internal/migration"
	"github.com/jonathan/resume-studio/internal/types"
)

// DocumentRecord is one stored document row.
type DocumentRecord struct {
	ID        uuid.UUID
	Name      string
	Document  *types.Document
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaveDocument inserts or updates a named document and returns its id.
// Documents are stored as their JSON serialization, schema version
// included, so legacy rows are migrated transparently on load.
func (db *DB) SaveDocument(ctx context.Context, name string, doc *types.Document) (uuid.UUID, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO documents (name, content)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET content = $2, updated_at = NOW()
		 RETURNING id`,
		name, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save document: %w", err)
	}
	return id, nil
}

// GetDocument loads a document by name. Returns (nil, nil) when no row
// exists. Legacy rows are migrated to the dynamic model on the way out.
func (db *DB) GetDocument(ctx context.Context, name string) (*DocumentRecord, error) {
	var (
		record  DocumentRecord
		payload []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, content, created_at, updated_at FROM documents WHERE name = $1`,
		name,
	).Scan(&record.ID, &record.Name, &payload, &record.CreatedAt, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	doc, err := migration.Load(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", name, err)
	}
	record.Document = doc
	return &record, nil
}

// ListDocuments returns the stored document names, newest first.
func (db *DB) ListDocuments(ctx context.Context) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name FROM documents ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document rows: %w", err)
	}
	return names, nil
}

// DeleteDocument removes a document and its snapshots.
func (db *DB) DeleteDocument(ctx context.Context, name string) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM documents WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
