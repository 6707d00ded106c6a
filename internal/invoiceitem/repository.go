package invoiceitem

import (
	"context"

	"github.com/mardika/inventory-service/internal/model"
)

// Repository manages the invoices-items join rows. Creation does no
// existence pre-check: the store's foreign keys are the only guard against
// dangling surface identifiers.
type Repository interface {
	FindAll(ctx context.Context) ([]model.InvoiceItem, error)
	FindByInvoiceID(ctx context.Context, invoiceID model.AltID) ([]model.InvoiceItem, error)
	FindByItemID(ctx context.Context, itemID model.AltID) ([]model.InvoiceItem, error)
	FindOne(ctx context.Context, invoiceID, itemID model.AltID) (*model.InvoiceItem, error)
	Create(ctx context.Context, link *model.InvoiceItem) (*model.InvoiceItem, error)
	Remove(ctx context.Context, invoiceID, itemID model.AltID) error
	RemoveByInvoiceID(ctx context.Context, invoiceID model.AltID) error
	RemoveByItemID(ctx context.Context, itemID model.AltID) error
}
