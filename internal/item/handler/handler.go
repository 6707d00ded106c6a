package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mardika/inventory-service/internal/httputil"
	"github.com/mardika/inventory-service/internal/item"
	"github.com/mardika/inventory-service/internal/item/dto"
	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type ItemHandler struct {
	uc     item.UseCase
	logger logger.ZapLogger
}

func NewItemHandler(uc item.UseCase, log logger.ZapLogger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.uc.ListItems(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list items", zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "id must be an integer")
		return
	}

	it, err := h.uc.GetItem(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get item", zap.Int64("id", id), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	if it == nil {
		httputil.Error(c, http.StatusNotFound, fmt.Sprintf("item with id %d not found", id))
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *ItemHandler) GetByAltID(c *gin.Context) {
	altID := model.AltID(c.Param("altId"))

	it, err := h.uc.GetItemByAltID(c.Request.Context(), altID)
	if err != nil {
		h.logger.Error("failed to get item by alt_id", zap.String("alt_id", altID.String()), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	if it == nil {
		httputil.Error(c, http.StatusNotFound, fmt.Sprintf("item with alt_id %s not found", altID))
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *ItemHandler) Create(c *gin.Context) {
	var input dto.CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	it, err := h.uc.CreateItem(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create item", zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (h *ItemHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "id must be an integer")
		return
	}

	var input dto.UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	it, err := h.uc.UpdateItem(c.Request.Context(), id, &input)
	if err != nil {
		h.logger.Error("failed to update item", zap.Int64("id", id), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	if it == nil {
		httputil.Error(c, http.StatusNotFound, fmt.Sprintf("item with id %d not found", id))
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "id must be an integer")
		return
	}

	if err := h.uc.DeleteItem(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete item", zap.Int64("id", id), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
