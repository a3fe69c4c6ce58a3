package notes

import (
	"context"

	"github.com/ndmitriev/memora/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	Get(ctx context.Context, id, userID string) (*models.Note, error)
	List(ctx context.Context, userID string, search string) ([]*models.Note, error)
	Update(ctx context.Context, note *models.Note) (*models.Note, error)
	Delete(ctx context.Context, id, userID string) error
}
