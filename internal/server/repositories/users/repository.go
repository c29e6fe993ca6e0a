package users

import (
	"context"

	"github.com/northlink/selfcare/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByIdentifier resolves a login identifier (email, portal ID, or
	// account number) within the given portal.
	GetByIdentifier(ctx context.Context, identifier, portalType string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
