package invoiceitem

import (
	"context"

	"github.com/mardika/inventory-service/internal/model"
)

type UseCase interface {
	ListInvoiceItems(ctx context.Context) ([]model.InvoiceItem, error)
	GetByInvoiceID(ctx context.Context, invoiceID model.AltID) ([]model.InvoiceItem, error)
	GetByItemID(ctx context.Context, itemID model.AltID) ([]model.InvoiceItem, error)
	GetInvoiceItem(ctx context.Context, invoiceID, itemID model.AltID) (*model.InvoiceItem, error)
	CreateInvoiceItem(ctx context.Context, link *model.InvoiceItem) (*model.InvoiceItem, error)
	DeleteInvoiceItem(ctx context.Context, invoiceID, itemID model.AltID) error
	DeleteByInvoiceID(ctx context.Context, invoiceID model.AltID) error
	DeleteByItemID(ctx context.Context, itemID model.AltID) error
}
