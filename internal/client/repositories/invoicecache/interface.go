package invoicecache

import (
	"context"

	"github.com/northlink/selfcare/internal/client/models"
)

// Repository caches the bill list locally so the bills view can render
// something while the portal is unreachable.
type Repository interface {
	Replace(ctx context.Context, invoices []*models.Invoice) error
	List(ctx context.Context) ([]*models.Invoice, error)
	Clear(ctx context.Context) error
}
