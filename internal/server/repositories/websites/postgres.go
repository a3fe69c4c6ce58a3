// Package websites provides the PostgreSQL-backed repository for website
// entries. Password fields are stored as AES-GCM ciphertext plus nonce; the
// service layer owns the crypto.
package websites

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

func (r *PostgresRepository) Create(ctx context.Context, entry *models.WebsiteEntry) (*models.WebsiteEntry, error) {
	query := `
		INSERT INTO website_entries (user_id, name, link, purpose, login_id, password_cipher, password_nonce)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Name, entry.Link, entry.Purpose, entry.LoginID,
		entry.PasswordCipher, entry.PasswordNonce).
		Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return entry, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id, userID string) (*models.WebsiteEntry, error) {
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
// case-insensitively over name, link and purpose.
func (r *PostgresRepository) List(ctx context.Context, userID string, search string) ([]*models.WebsiteEntry, error) {
	query := selectColumns + `
		WHERE user_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR link ILIKE '%' || $2 || '%' OR purpose ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to select website entries: %w", err)
	}
	defer rows.Close()

	var result []*models.WebsiteEntry
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

func (r *PostgresRepository) Update(ctx context.Context, entry *models.WebsiteEntry) (*models.WebsiteEntry, error) {
	query := `
		UPDATE website_entries
		SET name = $3, link = $4, purpose = $5, login_id = $6,
		    password_cipher = $7, password_nonce = $8, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.Name, entry.Link, entry.Purpose, entry.LoginID,
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
	query := `DELETE FROM website_entries WHERE id = $1 AND user_id = $2`

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
	SELECT id, user_id, name, link, purpose, login_id, password_cipher, password_nonce, created_at, updated_at
	FROM website_entries`

func scanEntry(scan func(dest ...any) error) (*models.WebsiteEntry, error) {
	entry := &models.WebsiteEntry{}
	err := scan(&entry.ID, &entry.UserID, &entry.Name, &entry.Link, &entry.Purpose,
		&entry.LoginID, &entry.PasswordCipher, &entry.PasswordNonce,
		&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return entry, nil
}
