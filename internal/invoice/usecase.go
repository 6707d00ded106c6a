package invoice

import (
	"context"

	"github.com/mardika/inventory-service/internal/invoice/dto"
	"github.com/mardika/inventory-service/internal/model"
)

type UseCase interface {
	ListInvoices(ctx context.Context) ([]model.Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*model.Invoice, error)
	GetInvoiceByAltID(ctx context.Context, altID model.AltID) (*model.Invoice, error)
	GetInvoicesByUserID(ctx context.Context, userID model.AltID) ([]model.Invoice, error)
	CreateInvoice(ctx context.Context, input *dto.CreateInvoiceInput) (*model.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, input *dto.UpdateInvoiceInput) (*model.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}
