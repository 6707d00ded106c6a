package item

import (
	"context"

	"github.com/mardika/inventory-service/internal/item/dto"
	"github.com/mardika/inventory-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Item, error)
	FindOne(ctx context.Context, id int64) (*model.Item, error)
	FindByAltID(ctx context.Context, altID model.AltID) (*model.Item, error)
	Create(ctx context.Context, input *dto.CreateItemInput) (*model.Item, error)
	Update(ctx context.Context, id int64, input *dto.UpdateItemInput) (*model.Item, error)
	Remove(ctx context.Context, id int64) error
}
