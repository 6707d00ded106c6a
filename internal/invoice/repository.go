package invoice

import (
	"context"

	"github.com/mardika/inventory-service/internal/invoice/dto"
	"github.com/mardika/inventory-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Invoice, error)
	FindOne(ctx context.Context, id int64) (*model.Invoice, error)
	FindByAltID(ctx context.Context, altID model.AltID) (*model.Invoice, error)
	FindByUserID(ctx context.Context, userID model.AltID) ([]model.Invoice, error)
	Create(ctx context.Context, input *dto.CreateInvoiceInput) (*model.Invoice, error)
	Update(ctx context.Context, id int64, input *dto.UpdateInvoiceInput) (*model.Invoice, error)
	Remove(ctx context.Context, id int64) error
}
