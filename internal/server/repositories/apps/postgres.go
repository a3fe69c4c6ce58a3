// Package apps provides the PostgreSQL-backed repository for app entries.
package apps

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

func (r *PostgresRepository) Create(ctx context.Context, entry *models.AppEntry) (*models.AppEntry, error) {
	query := `
		INSERT INTO app_entries (user_id, app_name, purpose, username, password_cipher, password_nonce)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.AppName, entry.Purpose, entry.Username,
		entry.PasswordCipher, entry.PasswordNonce).
		Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return entry, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id, userID string) (*models.AppEntry, error) {
	query := selectColumns + ` WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	entry, err := scanEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return entry, nil
}

// List returns the user's entries newest first. A non-empty search filters
// case-insensitively over app_name, purpose and username.
func (r *PostgresRepository) List(ctx context.Context, userID string, search string) ([]*models.AppEntry, error) {
	query := selectColumns + `
		WHERE user_id = $1
		  AND ($2 = '' OR app_name ILIKE '%' || $2 || '%' OR purpose ILIKE '%' || $2 || '%' OR username ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to select app entries: %w", err)
	}
	defer rows.Close()

	var result []*models.AppEntry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, entry *models.AppEntry) (*models.AppEntry, error) {
	query := `
		UPDATE app_entries
		SET app_name = $3, purpose = $4, username = $5,
		    password_cipher = $6, password_nonce = $7, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.AppName, entry.Purpose, entry.Username,
		entry.PasswordCipher, entry.PasswordNonce).
		Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return entry, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM app_entries WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

const selectColumns = `
	SELECT id, user_id, app_name, purpose, username, password_cipher, password_nonce, created_at, updated_at
	FROM app_entries`

func scanEntry(scan func(dest ...any) error) (*models.AppEntry, error) {
	entry := &models.AppEntry{}
	err := scan(&entry.ID, &entry.UserID, &entry.AppName, &entry.Purpose, &entry.Username,
		&entry.PasswordCipher, &entry.PasswordNonce, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return entry, nil
}
