package usecase

import (
	"context"

	"github.com/mardika/inventory-service/internal/invoiceitem"
	"github.com/mardika/inventory-service/internal/item"
	"github.com/mardika/inventory-service/internal/item/dto"
	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/pkg/logger"
)

type itemUseCase struct {
	repo   item.Repository
	links  invoiceitem.Repository
	logger logger.ZapLogger
}

func NewItemUseCase(repo item.Repository, links invoiceitem.Repository, log logger.ZapLogger) item.UseCase {
	return &itemUseCase{
		repo:   repo,
		links:  links,
		logger: log,
	}
}

func (uc *itemUseCase) ListItems(ctx context.Context) ([]model.Item, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *itemUseCase) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	return uc.repo.FindOne(ctx, id)
}

func (uc *itemUseCase) GetItemByAltID(ctx context.Context, altID model.AltID) (*model.Item, error) {
	return uc.repo.FindByAltID(ctx, altID)
}

func (uc *itemUseCase) CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.Item, error) {
	return uc.repo.Create(ctx, input)
}

func (uc *itemUseCase) UpdateItem(ctx context.Context, id int64, input *dto.UpdateItemInput) (*model.Item, error) {
	return uc.repo.Update(ctx, id, input)
}

// DeleteItem removes the item's association rows before the item itself.
// The store has no cascading delete; leaving the associations in place
// would fail their foreign key on items.alt_id.
func (uc *itemUseCase) DeleteItem(ctx context.Context, id int64) error {
	it, err := uc.repo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if it == nil {
		return nil
	}
	if err := uc.links.RemoveByItemID(ctx, it.AltID); err != nil {
		return err
	}
	return uc.repo.Remove(ctx, id)
}
