// Package repomanager wires repository constructors to a shared database
// handle so services can obtain repositories bound to either the pool or a
// transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/ndmitriev/memora/internal/dbx"
	"github.com/ndmitriev/memora/internal/server/repositories/apps"
	"github.com/ndmitriev/memora/internal/server/repositories/attachments"
	"github.com/ndmitriev/memora/internal/server/repositories/notes"
	"github.com/ndmitriev/memora/internal/server/repositories/sessions"
	"github.com/ndmitriev/memora/internal/server/repositories/users"
	"github.com/ndmitriev/memora/internal/server/repositories/websites"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Websites(db dbx.DBTX) websites.Repository
	Apps(db dbx.DBTX) apps.Repository
	Notes(db dbx.DBTX) notes.Repository
	Attachments(db dbx.DBTX) attachments.Repository
}
