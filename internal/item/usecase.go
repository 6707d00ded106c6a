package item

import (
	"context"

	"github.com/mardika/inventory-service/internal/item/dto"
	"github.com/mardika/inventory-service/internal/model"
)

type UseCase interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	GetItem(ctx context.Context, id int64) (*model.Item, error)
	GetItemByAltID(ctx context.Context, altID model.AltID) (*model.Item, error)
	CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.Item, error)
	UpdateItem(ctx context.Context, id int64, input *dto.UpdateItemInput) (*model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
