package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mardika/inventory-service/internal/item/dto"
	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/pkg/logger"
)

type stubUseCase struct {
	items     map[int64]*model.Item
	createErr error
}

func (s *stubUseCase) ListItems(ctx context.Context) ([]model.Item, error) {
	out := []model.Item{}
	for _, it := range s.items {
		out = append(out, *it)
	}
	return out, nil
}

func (s *stubUseCase) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	return s.items[id], nil
}

func (s *stubUseCase) GetItemByAltID(ctx context.Context, altID model.AltID) (*model.Item, error) {
	for _, it := range s.items {
		if it.AltID == altID {
			return it, nil
		}
	}
	return nil, nil
}

func (s *stubUseCase) CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.Item, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &model.Item{
		BaseModel: model.BaseModel{ID: 1, AltID: "item-1", CreatedBy: model.SystemActor},
		Name:      input.Name,
		UnitPrice: model.Decimal(input.UnitPrice),
	}, nil
}

func (s *stubUseCase) UpdateItem(ctx context.Context, id int64, input *dto.UpdateItemInput) (*model.Item, error) {
	return s.items[id], nil
}

func (s *stubUseCase) DeleteItem(ctx context.Context, id int64) error { return nil }

func itemRouter(uc *stubUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewItemHandler(uc, logger.NewNop())
	router := gin.New()
	router.GET("/items/:id", h.Get)
	router.GET("/items/alt/:altId", h.GetByAltID)
	router.POST("/items", h.Create)
	router.PUT("/items/:id", h.Update)
	router.DELETE("/items/:id", h.Delete)
	return router
}

func TestGetRejectsNonIntegerID(t *testing.T) {
	router := itemRouter(&stubUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/items/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnknownIDReturns404(t *testing.T) {
	router := itemRouter(&stubUseCase{items: map[int64]*model.Item{}})

	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetByAltID(t *testing.T) {
	router := itemRouter(&stubUseCase{items: map[int64]*model.Item{
		1: {BaseModel: model.BaseModel{ID: 1, AltID: "item-1"}, Name: "widget"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/items/alt/item-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "widget")
}

func TestCreateReturns201(t *testing.T) {
	router := itemRouter(&stubUseCase{})

	body := strings.NewReader(`{"name":"widget","unit_price":149.99}`)
	req := httptest.NewRequest(http.MethodPost, "/items", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alt_id":"item-1"`)
}

func TestCreateRequiresName(t *testing.T) {
	router := itemRouter(&stubUseCase{})

	body := strings.NewReader(`{"unit_price":149.99}`)
	req := httptest.NewRequest(http.MethodPost, "/items", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateConstraintViolationReturns409(t *testing.T) {
	router := itemRouter(&stubUseCase{createErr: &pgconn.PgError{Code: "23505"}})

	body := strings.NewReader(`{"name":"widget"}`)
	req := httptest.NewRequest(http.MethodPost, "/items", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteReturns204(t *testing.T) {
	router := itemRouter(&stubUseCase{})

	req := httptest.NewRequest(http.MethodDelete, "/items/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdateUnknownIDReturns404(t *testing.T) {
	router := itemRouter(&stubUseCase{items: map[int64]*model.Item{}})

	body := strings.NewReader(`{"name":"renamed"}`)
	req := httptest.NewRequest(http.MethodPut, "/items/42", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
