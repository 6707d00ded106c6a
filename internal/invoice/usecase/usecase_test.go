package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mardika/inventory-service/internal/invoice/dto"
	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/pkg/logger"
)

type stubInvoiceRepo struct {
	invoices map[int64]*model.Invoice
	removed  []int64
}

func (s *stubInvoiceRepo) FindAll(ctx context.Context) ([]model.Invoice, error) { return nil, nil }

func (s *stubInvoiceRepo) FindOne(ctx context.Context, id int64) (*model.Invoice, error) {
	return s.invoices[id], nil
}

func (s *stubInvoiceRepo) FindByAltID(ctx context.Context, altID model.AltID) (*model.Invoice, error) {
	return nil, nil
}

func (s *stubInvoiceRepo) FindByUserID(ctx context.Context, userID model.AltID) ([]model.Invoice, error) {
	return nil, nil
}

func (s *stubInvoiceRepo) Create(ctx context.Context, input *dto.CreateInvoiceInput) (*model.Invoice, error) {
	return nil, nil
}

func (s *stubInvoiceRepo) Update(ctx context.Context, id int64, input *dto.UpdateInvoiceInput) (*model.Invoice, error) {
	return nil, nil
}

func (s *stubInvoiceRepo) Remove(ctx context.Context, id int64) error {
	s.removed = append(s.removed, id)
	return nil
}

type stubLinkRepo struct {
	removedByInvoice []model.AltID
	removeErr        error
}

func (s *stubLinkRepo) FindAll(ctx context.Context) ([]model.InvoiceItem, error) { return nil, nil }

func (s *stubLinkRepo) FindByInvoiceID(ctx context.Context, invoiceID model.AltID) ([]model.InvoiceItem, error) {
	return nil, nil
}

func (s *stubLinkRepo) FindByItemID(ctx context.Context, itemID model.AltID) ([]model.InvoiceItem, error) {
	return nil, nil
}

func (s *stubLinkRepo) FindOne(ctx context.Context, invoiceID, itemID model.AltID) (*model.InvoiceItem, error) {
	return nil, nil
}

func (s *stubLinkRepo) Create(ctx context.Context, link *model.InvoiceItem) (*model.InvoiceItem, error) {
	return link, nil
}

func (s *stubLinkRepo) Remove(ctx context.Context, invoiceID, itemID model.AltID) error { return nil }

func (s *stubLinkRepo) RemoveByInvoiceID(ctx context.Context, invoiceID model.AltID) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removedByInvoice = append(s.removedByInvoice, invoiceID)
	return nil
}

func (s *stubLinkRepo) RemoveByItemID(ctx context.Context, itemID model.AltID) error { return nil }

func TestDeleteInvoiceCascadesAssociations(t *testing.T) {
	repo := &stubInvoiceRepo{invoices: map[int64]*model.Invoice{
		1: {BaseModel: model.BaseModel{ID: 1, AltID: "inv-1"}},
	}}
	links := &stubLinkRepo{}
	uc := NewInvoiceUseCase(repo, links, logger.NewNop())

	require.NoError(t, uc.DeleteInvoice(context.Background(), 1))

	assert.Equal(t, []model.AltID{"inv-1"}, links.removedByInvoice)
	assert.Equal(t, []int64{1}, repo.removed)
}

func TestDeleteInvoiceAbsentIsNoop(t *testing.T) {
	repo := &stubInvoiceRepo{invoices: map[int64]*model.Invoice{}}
	links := &stubLinkRepo{}
	uc := NewInvoiceUseCase(repo, links, logger.NewNop())

	require.NoError(t, uc.DeleteInvoice(context.Background(), 42))

	assert.Empty(t, links.removedByInvoice)
	assert.Empty(t, repo.removed)
}

func TestDeleteInvoiceStopsWhenCascadeFails(t *testing.T) {
	repo := &stubInvoiceRepo{invoices: map[int64]*model.Invoice{
		1: {BaseModel: model.BaseModel{ID: 1, AltID: "inv-1"}},
	}}
	links := &stubLinkRepo{removeErr: errors.New("store unavailable")}
	uc := NewInvoiceUseCase(repo, links, logger.NewNop())

	err := uc.DeleteInvoice(context.Background(), 1)
	require.Error(t, err)
	assert.Empty(t, repo.removed, "the invoice must survive when its associations could not be removed")
}
