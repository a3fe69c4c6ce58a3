package attachments

import (
	"context"

	"github.com/ndmitriev/memora/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, att *models.Attachment) (*models.Attachment, error)
	ListByNote(ctx context.Context, noteID, userID string) ([]*models.Attachment, error)
	GetByKey(ctx context.Context, noteID, userID, storageKey string) (*models.Attachment, error)
}
