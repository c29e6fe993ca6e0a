package client

import (
	"context"
	"time"

	"github.com/northlink/selfcare/internal/client/models"
)

// LoginInput carries the credentials the login form collects.
type LoginInput struct {
	Identifier     string
	Password       string
	PortalType     string
	MFACode        string
	RememberDevice bool
}

// Client is the portal API as seen by the rest of the terminal client.
//
// GetCurrentUser returns ErrNoSession without a network round trip when no
// tokens are held.
type Client interface {
	Close() error
	Login(ctx context.Context, in LoginInput) (*models.User, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (*models.User, error)
	RefreshSession(ctx context.Context) error
	AccessTokenLifetime() time.Duration
	Ping(ctx context.Context) error
	ListInvoices(ctx context.Context) ([]*models.Invoice, error)
	GetInvoiceDownloadURL(ctx context.Context, invoiceID string) (string, error)
}
