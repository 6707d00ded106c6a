package person

import (
	"context"

	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/internal/person/dto"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Person, error)
	FindOne(ctx context.Context, id int64) (*model.Person, error)
	FindByAltID(ctx context.Context, altID model.AltID) (*model.Person, error)
	FindByEmail(ctx context.Context, email string) (*model.Person, error)
	Create(ctx context.Context, input *dto.CreatePersonInput) (*model.Person, error)
	Update(ctx context.Context, id int64, input *dto.UpdatePersonInput) (*model.Person, error)
	Remove(ctx context.Context, id int64) error
}
