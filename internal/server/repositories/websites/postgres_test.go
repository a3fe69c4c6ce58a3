package websites

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ndmitriev/memora/internal/common"
	"github.com/ndmitriev/memora/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "name", "link", "purpose", "login_id",
		"password_cipher", "password_nonce", "created_at", "updated_at",
	})
}

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO website_entries").
		WithArgs("u1", "Bank", "https://bank", "money", "me", []byte("c"), []byte("n")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("w1", now, now))

	repo := NewPostgresRepository(db)
	entry, err := repo.Create(context.Background(), &models.WebsiteEntry{
		UserID: "u1", Name: "Bank", Link: "https://bank", Purpose: "money",
		LoginID: "me", PasswordCipher: []byte("c"), PasswordNonce: []byte("n"),
	})

	require.NoError(t, err)
	assert.Equal(t, "w1", entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_PassesSearchTerm(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, user_id, name, link, purpose, login_id").
		WithArgs("u1", "bank").
		WillReturnRows(entryRows().
			AddRow("w1", "u1", "Bank", "https://bank", "money", "", nil, nil, now, now))

	repo := NewPostgresRepository(db)
	entries, err := repo.List(context.Background(), "u1", "bank")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Bank", entries[0].Name)
}

func TestUpdate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("UPDATE website_entries").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	repo := NewPostgresRepository(db)
	_, err = repo.Update(context.Background(), &models.WebsiteEntry{ID: "w1", UserID: "other"})

	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM website_entries").
		WithArgs("w1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresRepository(db)
	assert.ErrorIs(t, repo.Delete(context.Background(), "w1", "u1"), common.ErrorNotFound)
}
