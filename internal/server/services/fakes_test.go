package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/ndmitriev/memora/internal/common"
	"github.com/ndmitriev/memora/internal/dbx"
	"github.com/ndmitriev/memora/internal/server/identity"
	"github.com/ndmitriev/memora/internal/server/models"
	appsrepo "github.com/ndmitriev/memora/internal/server/repositories/apps"
	attachmentsrepo "github.com/ndmitriev/memora/internal/server/repositories/attachments"
	notesrepo "github.com/ndmitriev/memora/internal/server/repositories/notes"
	sessionsrepo "github.com/ndmitriev/memora/internal/server/repositories/sessions"
	usersrepo "github.com/ndmitriev/memora/internal/server/repositories/users"
	websitesrepo "github.com/ndmitriev/memora/internal/server/repositories/websites"
)

// --- repository fakes ---

type fakeUsersRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User

	created     []*models.User
	lockHashes  map[string]string
	setLockErr  error
	getByIDErr  error
	getEmailErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{
		byEmail:    map[string]*models.User{},
		byID:       map[string]*models.User{},
		lockHashes: map[string]string{},
	}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	u.ID = "u-created"
	u.CreatedAt = time.Now()
	f.created = append(f.created, u)
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getEmailErr != nil {
		return nil, f.getEmailErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) SetAppLockHash(ctx context.Context, userID string, hash string) error {
	if f.setLockErr != nil {
		return f.setLockErr
	}
	f.lockHashes[userID] = hash
	if u, ok := f.byID[userID]; ok {
		u.AppLockHash = hash
	}
	return nil
}

type fakeSessionsRepo struct {
	createdToken string
	createErr    error

	findOut *models.Session
	findErr error

	deletedToken string
	deleteErr    error
}

func (f *fakeSessionsRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	f.createdToken = token
	return f.createErr
}

func (f *fakeSessionsRepo) Find(ctx context.Context, token string) (*models.Session, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeSessionsRepo) DeleteByToken(ctx context.Context, token string) error {
	f.deletedToken = token
	return f.deleteErr
}

type fakeWebsitesRepo struct {
	lastSaved *models.WebsiteEntry
	listOut   []*models.WebsiteEntry
	err       error
}

func (f *fakeWebsitesRepo) Create(ctx context.Context, e *models.WebsiteEntry) (*models.WebsiteEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	e.ID = "w1"
	saved := *e
	f.lastSaved = &saved
	return e, nil
}

func (f *fakeWebsitesRepo) Get(ctx context.Context, id, userID string) (*models.WebsiteEntry, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeWebsitesRepo) List(ctx context.Context, userID string, search string) ([]*models.WebsiteEntry, error) {
	return f.listOut, f.err
}

func (f *fakeWebsitesRepo) Update(ctx context.Context, e *models.WebsiteEntry) (*models.WebsiteEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	saved := *e
	f.lastSaved = &saved
	return e, nil
}

func (f *fakeWebsitesRepo) Delete(ctx context.Context, id, userID string) error {
	return f.err
}

type fakeNotesRepo struct {
	getOut *models.Note
	getErr error
}

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	n.ID = "n1"
	return n, nil
}

func (f *fakeNotesRepo) Get(ctx context.Context, id, userID string) (*models.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeNotesRepo) List(ctx context.Context, userID string, search string) ([]*models.Note, error) {
	return nil, nil
}

func (f *fakeNotesRepo) Update(ctx context.Context, n *models.Note) (*models.Note, error) {
	return n, nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, id, userID string) error {
	return nil
}

type fakeAttachmentsRepo struct {
	created *models.Attachment
	byKey   *models.Attachment
	keyErr  error
}

func (f *fakeAttachmentsRepo) Create(ctx context.Context, a *models.Attachment) (*models.Attachment, error) {
	a.ID = "att1"
	f.created = a
	return a, nil
}

func (f *fakeAttachmentsRepo) ListByNote(ctx context.Context, noteID, userID string) ([]*models.Attachment, error) {
	return nil, nil
}

func (f *fakeAttachmentsRepo) GetByKey(ctx context.Context, noteID, userID, key string) (*models.Attachment, error) {
	if f.keyErr != nil {
		return nil, f.keyErr
	}
	return f.byKey, nil
}

// --- repo manager fake ---

type fakeRepoManager struct {
	users       *fakeUsersRepo
	sessions    *fakeSessionsRepo
	websites    *fakeWebsitesRepo
	notes       *fakeNotesRepo
	attachments *fakeAttachmentsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.users }
func (m *fakeRepoManager) Sessions(db dbx.DBTX) sessionsrepo.Repository { return m.sessions }
func (m *fakeRepoManager) Websites(db dbx.DBTX) websitesrepo.Repository { return m.websites }
func (m *fakeRepoManager) Apps(db dbx.DBTX) appsrepo.Repository         { return nil }
func (m *fakeRepoManager) Notes(db dbx.DBTX) notesrepo.Repository       { return m.notes }
func (m *fakeRepoManager) Attachments(db dbx.DBTX) attachmentsrepo.Repository {
	return m.attachments
}

// --- identity broker fake ---

type fakeBroker struct {
	profile *identity.Profile
	err     error
}

func (f *fakeBroker) SessionData(ctx context.Context, sessionID string) (*identity.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}
