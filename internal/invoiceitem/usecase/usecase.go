package usecase

import (
	"context"

	"github.com/mardika/inventory-service/internal/invoiceitem"
	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/pkg/logger"
)

type invoiceItemUseCase struct {
	repo   invoiceitem.Repository
	logger logger.ZapLogger
}

func NewInvoiceItemUseCase(repo invoiceitem.Repository, log logger.ZapLogger) invoiceitem.UseCase {
	return &invoiceItemUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *invoiceItemUseCase) ListInvoiceItems(ctx context.Context) ([]model.InvoiceItem, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *invoiceItemUseCase) GetByInvoiceID(ctx context.Context, invoiceID model.AltID) ([]model.InvoiceItem, error) {
	return uc.repo.FindByInvoiceID(ctx, invoiceID)
}

func (uc *invoiceItemUseCase) GetByItemID(ctx context.Context, itemID model.AltID) ([]model.InvoiceItem, error) {
	return uc.repo.FindByItemID(ctx, itemID)
}

func (uc *invoiceItemUseCase) GetInvoiceItem(ctx context.Context, invoiceID, itemID model.AltID) (*model.InvoiceItem, error) {
	return uc.repo.FindOne(ctx, invoiceID, itemID)
}

func (uc *invoiceItemUseCase) CreateInvoiceItem(ctx context.Context, link *model.InvoiceItem) (*model.InvoiceItem, error) {
	return uc.repo.Create(ctx, link)
}

func (uc *invoiceItemUseCase) DeleteInvoiceItem(ctx context.Context, invoiceID, itemID model.AltID) error {
	return uc.repo.Remove(ctx, invoiceID, itemID)
}

func (uc *invoiceItemUseCase) DeleteByInvoiceID(ctx context.Context, invoiceID model.AltID) error {
	return uc.repo.RemoveByInvoiceID(ctx, invoiceID)
}

func (uc *invoiceItemUseCase) DeleteByItemID(ctx context.Context, itemID model.AltID) error {
	return uc.repo.RemoveByItemID(ctx, itemID)
}
