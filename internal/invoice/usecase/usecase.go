package usecase

import (
	"context"

	"github.com/mardika/inventory-service/internal/invoice"
	"github.com/mardika/inventory-service/internal/invoice/dto"
	"github.com/mardika/inventory-service/internal/invoiceitem"
	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/pkg/logger"
)

type invoiceUseCase struct {
	repo   invoice.Repository
	links  invoiceitem.Repository
	logger logger.ZapLogger
}

func NewInvoiceUseCase(repo invoice.Repository, links invoiceitem.Repository, log logger.ZapLogger) invoice.UseCase {
	return &invoiceUseCase{
		repo:   repo,
		links:  links,
		logger: log,
	}
}

func (uc *invoiceUseCase) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *invoiceUseCase) GetInvoice(ctx context.Context, id int64) (*model.Invoice, error) {
	return uc.repo.FindOne(ctx, id)
}

func (uc *invoiceUseCase) GetInvoiceByAltID(ctx context.Context, altID model.AltID) (*model.Invoice, error) {
	return uc.repo.FindByAltID(ctx, altID)
}

func (uc *invoiceUseCase) GetInvoicesByUserID(ctx context.Context, userID model.AltID) ([]model.Invoice, error) {
	return uc.repo.FindByUserID(ctx, userID)
}

func (uc *invoiceUseCase) CreateInvoice(ctx context.Context, input *dto.CreateInvoiceInput) (*model.Invoice, error) {
	return uc.repo.Create(ctx, input)
}

func (uc *invoiceUseCase) UpdateInvoice(ctx context.Context, id int64, input *dto.UpdateInvoiceInput) (*model.Invoice, error) {
	return uc.repo.Update(ctx, id, input)
}

// DeleteInvoice removes the invoice's association rows before the
// invoice itself. The store has no cascading delete; leaving the
// associations in place would fail their foreign key on invoices.alt_id.
func (uc *invoiceUseCase) DeleteInvoice(ctx context.Context, id int64) error {
	inv, err := uc.repo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return nil
	}
	if err := uc.links.RemoveByInvoiceID(ctx, inv.AltID); err != nil {
		return err
	}
	return uc.repo.Remove(ctx, id)
}
