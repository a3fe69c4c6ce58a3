package apps

import (
	"context"

	"github.com/ndmitriev/memora/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.AppEntry) (*models.AppEntry, error)
	Get(ctx context.Context, id, userID string) (*models.AppEntry, error)
	List(ctx context.Context, userID string, search string) ([]*models.AppEntry, error)
	Update(ctx context.Context, entry *models.AppEntry) (*models.AppEntry, error)
	Delete(ctx context.Context, id, userID string) error
}
