package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ndmitriev/memora/internal/dbx"
	"github.com/ndmitriev/memora/internal/server/migrations"
	"github.com/ndmitriev/memora/internal/server/repositories/apps"
	"github.com/ndmitriev/memora/internal/server/repositories/attachments"
	"github.com/ndmitriev/memora/internal/server/repositories/notes"
	"github.com/ndmitriev/memora/internal/server/repositories/sessions"
	"github.com/ndmitriev/memora/internal/server/repositories/users"
	"github.com/ndmitriev/memora/internal/server/repositories/websites"
)

type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Websites(db dbx.DBTX) websites.Repository {
	return websites.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Apps(db dbx.DBTX) apps.Repository {
	return apps.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Notes(db dbx.DBTX) notes.Repository {
	return notes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Attachments(db dbx.DBTX) attachments.Repository {
	return attachments.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// OpenDB opens the pgx stdlib driver against the configured DSN.
func OpenDB(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}
