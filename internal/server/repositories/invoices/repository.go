package invoices

import (
	"context"

	"github.com/northlink/selfcare/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Invoice, error)
	Get(ctx context.Context, id string) (*models.Invoice, error)
}
