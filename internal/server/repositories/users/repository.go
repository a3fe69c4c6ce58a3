package users

import (
	"context"

	"github.com/ndmitriev/memora/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetAppLockHash(ctx context.Context, userID string, hash string) error
}
