// Package attachments provides the PostgreSQL-backed repository for note
// attachment metadata. Payloads live in object storage, keyed by storage_key.
package attachments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndmitriev/memora/internal/common"
	"github.com/ndmitriev/memora/internal/dbx"
	"github.com/ndmitriev/memora/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, att *models.Attachment) (*models.Attachment, error) {
	query := `
		INSERT INTO note_attachments (note_id, user_id, storage_key, filename)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, att.NoteID, att.UserID, att.StorageKey, att.Filename).
		Scan(&att.ID, &att.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return att, nil
}

func (r *PostgresRepository) ListByNote(ctx context.Context, noteID, userID string) ([]*models.Attachment, error) {
	query := `
		SELECT id, note_id, user_id, storage_key, filename, created_at FROM note_attachments
		WHERE note_id = $1 AND user_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select attachments: %w", err)
	}
	defer rows.Close()

	var result []*models.Attachment
	for rows.Next() {
		att := &models.Attachment{}
		if err := rows.Scan(&att.ID, &att.NoteID, &att.UserID, &att.StorageKey,
			&att.Filename, &att.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByKey(ctx context.Context, noteID, userID, storageKey string) (*models.Attachment, error) {
	query := `
		SELECT id, note_id, user_id, storage_key, filename, created_at FROM note_attachments
		WHERE note_id = $1 AND user_id = $2 AND storage_key = $3
	`
	att := &models.Attachment{}
	err := r.db.QueryRowContext(ctx, query, noteID, userID, storageKey).
		Scan(&att.ID, &att.NoteID, &att.UserID, &att.StorageKey, &att.Filename, &att.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return att, nil
}
