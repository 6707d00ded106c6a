package person

import (
	"context"

	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/internal/person/dto"
)

type UseCase interface {
	ListPersons(ctx context.Context) ([]model.Person, error)
	GetPerson(ctx context.Context, id int64) (*model.Person, error)
	GetPersonByAltID(ctx context.Context, altID model.AltID) (*model.Person, error)
	GetPersonByEmail(ctx context.Context, email string) (*model.Person, error)
	CreatePerson(ctx context.Context, input *dto.CreatePersonInput) (*model.Person, error)
	UpdatePerson(ctx context.Context, id int64, input *dto.UpdatePersonInput) (*model.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}
