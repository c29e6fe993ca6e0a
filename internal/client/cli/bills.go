package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/northlink/selfcare/internal/client/client"
	"github.com/northlink/selfcare/internal/client/models"
	"github.com/northlink/selfcare/internal/netx"
)

// writeFile is a test seam for saving downloaded PDFs.
var writeFile = os.WriteFile

// Bills lists the customer's invoices. Fresh results refresh the local
// cache; when the portal is unreachable the cached list is shown instead.
func (a *App) Bills(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	invoices, err := a.store.ListInvoices(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			cached, cacheErr := a.repos.Invoices.List(ctx)
			if cacheErr == nil && len(cached) > 0 {
				printlnFn("Portal unreachable, showing cached bills.")
				printInvoices(cached)
				return nil
			}
		}
		printlnFn("Could not load bills:", err.Error())
		return err
	}

	_ = a.repos.Invoices.Replace(ctx, invoices)
	printInvoices(invoices)
	return nil
}

// Download fetches an invoice PDF via a presigned URL and saves it next to
// the binary.
func (a *App) Download(ctx context.Context, invoiceID string) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	url, err := a.store.GetInvoiceDownloadURL(ctx, invoiceID)
	if err != nil {
		printlnFn("Could not get download link:", err.Error())
		return err
	}

	data, err := netx.DownloadFromPresignedURL(ctx, url)
	if err != nil {
		printlnFn("Download failed:", err.Error())
		return err
	}

	name := fmt.Sprintf("invoice-%s.pdf", invoiceID)
	if err := writeFile(name, data, 0o600); err != nil {
		printlnFn("Could not save file:", err.Error())
		return err
	}

	printlnFn("Saved", name)
	return nil
}

func printInvoices(invoices []*models.Invoice) {
	if len(invoices) == 0 {
		printlnFn("No bills yet.")
		return
	}
	for _, inv := range invoices {
		status := "due " + inv.DueAt.Format("2006-01-02")
		if inv.Paid {
			status = "paid"
		}
		printlnFn(fmt.Sprintf("%-12s %s  %10s  %s",
			inv.Number,
			inv.IssuedAt.Format("2006-01-02"),
			formatAmount(inv.AmountCents, inv.Currency),
			status))
	}
}

func formatAmount(cents int64, currency string) string {
	return fmt.Sprintf("%.2f %s", float64(cents)/100, currency)
}
