package usecase

import (
	"context"

	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/internal/person"
	"github.com/mardika/inventory-service/internal/person/dto"
	"github.com/mardika/inventory-service/pkg/logger"
)

type personUseCase struct {
	repo   person.Repository
	logger logger.ZapLogger
}

func NewPersonUseCase(repo person.Repository, log logger.ZapLogger) person.UseCase {
	return &personUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *personUseCase) ListPersons(ctx context.Context) ([]model.Person, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *personUseCase) GetPerson(ctx context.Context, id int64) (*model.Person, error) {
	return uc.repo.FindOne(ctx, id)
}

func (uc *personUseCase) GetPersonByAltID(ctx context.Context, altID model.AltID) (*model.Person, error) {
	return uc.repo.FindByAltID(ctx, altID)
}

func (uc *personUseCase) GetPersonByEmail(ctx context.Context, email string) (*model.Person, error) {
	return uc.repo.FindByEmail(ctx, email)
}

func (uc *personUseCase) CreatePerson(ctx context.Context, input *dto.CreatePersonInput) (*model.Person, error) {
	return uc.repo.Create(ctx, input)
}

func (uc *personUseCase) UpdatePerson(ctx context.Context, id int64, input *dto.UpdatePersonInput) (*model.Person, error) {
	return uc.repo.Update(ctx, id, input)
}

// DeletePerson does not cascade. Invoices referencing the person keep
// their foreign key; the store rejects the delete and the conflict is
// reported to the caller.
func (uc *personUseCase) DeletePerson(ctx context.Context, id int64) error {
	return uc.repo.Remove(ctx, id)
}
