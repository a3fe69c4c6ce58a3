package websites

import (
	"context"

	"github.com/ndmitriev/memora/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.WebsiteEntry) (*models.WebsiteEntry, error)
	Get(ctx context.Context, id, userID string) (*models.WebsiteEntry, error)
	List(ctx context.Context, userID string, search string) ([]*models.WebsiteEntry, error)
	Update(ctx context.Context, entry *models.WebsiteEntry) (*models.WebsiteEntry, error)
	Delete(ctx context.Context, id, userID string) error
}
