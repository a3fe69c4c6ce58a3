package services

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndmitriev/memora/internal/cryptox"
	"github.com/ndmitriev/memora/internal/server/config"
	"github.com/ndmitriev/memora/internal/server/models"
)

var testEncryptionKey = hex.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

func newEntryFixture(t *testing.T) (*EntryService, *fakeRepoManager) {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := &fakeRepoManager{
		websites: &fakeWebsitesRepo{},
		notes:    &fakeNotesRepo{},
	}
	svc, err := NewEntryService(db, m, &config.Config{EncryptionKey: testEncryptionKey})
	require.NoError(t, err)
	return svc, m
}

func TestNewEntryService_RejectsBadKey(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewEntryService(db, &fakeRepoManager{}, &config.Config{EncryptionKey: "tooshort"})
	assert.ErrorIs(t, err, cryptox.ErrInvalidKeySize)
}

func TestCreateWebsite_EncryptsPassword(t *testing.T) {
	svc, m := newEntryFixture(t)

	created, err := svc.CreateWebsite(context.Background(), &models.WebsiteEntry{
		UserID:   "u1",
		Name:     "Example",
		Link:     "https://example.com",
		LoginID:  "me",
		Password: "hunter2",
	})
	require.NoError(t, err)

	// stored form is ciphertext, returned form is plaintext
	stored := m.websites.lastSaved
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordCipher)
	assert.NotEmpty(t, stored.PasswordNonce)
	assert.NotContains(t, string(stored.PasswordCipher), "hunter2")

	assert.Equal(t, "hunter2", created.Password)
	assert.Nil(t, created.PasswordCipher)
	assert.Nil(t, created.PasswordNonce)
}

func TestCreateWebsite_EmptyPasswordStoresNothing(t *testing.T) {
	svc, m := newEntryFixture(t)

	created, err := svc.CreateWebsite(context.Background(), &models.WebsiteEntry{
		UserID: "u1",
		Name:   "No secret",
	})
	require.NoError(t, err)

	assert.Nil(t, m.websites.lastSaved.PasswordCipher)
	assert.Empty(t, created.Password)
}

func TestListWebsites_DecryptsPasswords(t *testing.T) {
	svc, m := newEntryFixture(t)

	key, err := cryptox.ParseKey(testEncryptionKey)
	require.NoError(t, err)
	cipher, nonce, err := cryptox.EncryptString("s3cret", key)
	require.NoError(t, err)

	m.websites.listOut = []*models.WebsiteEntry{
		{ID: "w1", UserID: "u1", Name: "A", PasswordCipher: cipher, PasswordNonce: nonce},
		{ID: "w2", UserID: "u1", Name: "B"},
	}

	entries, err := svc.ListWebsites(context.Background(), "u1", "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "s3cret", entries[0].Password)
	assert.Nil(t, entries[0].PasswordCipher)
	assert.Empty(t, entries[1].Password)
}

func TestUpdateWebsite_RoundTrip(t *testing.T) {
	svc, m := newEntryFixture(t)

	updated, err := svc.UpdateWebsite(context.Background(), &models.WebsiteEntry{
		ID:       "w1",
		UserID:   "u1",
		Name:     "Renamed",
		Password: "newpass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, m.websites.lastSaved.PasswordCipher)
	assert.Equal(t, "newpass", updated.Password)
}

func TestDeleteWebsite_PropagatesRepoError(t *testing.T) {
	svc, m := newEntryFixture(t)
	m.websites.err = assert.AnError

	err := svc.DeleteWebsite(context.Background(), "w1", "u1")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNotes_PassThrough(t *testing.T) {
	svc, _ := newEntryFixture(t)

	note, err := svc.CreateNote(context.Background(), &models.Note{
		UserID:  "u1",
		Title:   "Groceries",
		Content: "milk",
	})
	require.NoError(t, err)
	assert.Equal(t, "n1", note.ID)
	assert.Equal(t, "milk", note.Content)
}
