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

// Snapshot is one named, immutable copy of a document's state. Snapshots
// are the only versioning the engine offers; there is no merge between
// them.
type Snapshot struct {
	ID         uuid.UUID
	DocumentID uuid.UUID
	Label      string
	CreatedAt  time.Time
}

// SaveSnapshot stores a named snapshot of the document's current content.
// Saving an existing label for the same document overwrites it.
func (db *DB) SaveSnapshot(ctx context.Context, documentID uuid.UUID, label string, doc *types.Document) (uuid.UUID, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO snapshots (document_id, label, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (document_id, label) DO UPDATE SET content = $3, created_at = NOW()
		 RETURNING id`,
		documentID, label, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return id, nil
}

// GetSnapshot loads a snapshot's document by label. Returns (nil, nil)
// when no such snapshot exists.
func (db *DB) GetSnapshot(ctx context.Context, documentID uuid.UUID, label string) (*types.Document, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM snapshots WHERE document_id = $1 AND label = $2`,
		documentID, label,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	doc, err := migration.Load(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", label, err)
	}
	return doc, nil
}

// ListSnapshots returns a document's snapshots, newest first.
func (db *DB) ListSnapshots(ctx context.Context, documentID uuid.UUID) ([]Snapshot, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, document_id, label, created_at FROM snapshots
		 WHERE document_id = $1 ORDER BY created_at DESC`,
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.DocumentID, &s.Label, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot rows: %w", err)
	}
	return snapshots, nil
}
