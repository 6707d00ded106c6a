package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mardika/inventory-service/internal/httputil"
	"github.com/mardika/inventory-service/internal/invoiceitem"
	"github.com/mardika/inventory-service/internal/invoiceitem/dto"
	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type InvoiceItemHandler struct {
	uc     invoiceitem.UseCase
	logger logger.ZapLogger
}

func NewInvoiceItemHandler(uc invoiceitem.UseCase, log logger.ZapLogger) *InvoiceItemHandler {
	return &InvoiceItemHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InvoiceItemHandler) List(c *gin.Context) {
	links, err := h.uc.ListInvoiceItems(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list invoice items", zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *InvoiceItemHandler) ListByInvoiceID(c *gin.Context) {
	invoiceID := model.AltID(c.Param("invoiceId"))

	links, err := h.uc.GetByInvoiceID(c.Request.Context(), invoiceID)
	if err != nil {
		h.logger.Error("failed to list invoice items by invoice", zap.String("invoice_id", invoiceID.String()), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *InvoiceItemHandler) ListByItemID(c *gin.Context) {
	itemID := model.AltID(c.Param("itemId"))

	links, err := h.uc.GetByItemID(c.Request.Context(), itemID)
	if err != nil {
		h.logger.Error("failed to list invoice items by item", zap.String("item_id", itemID.String()), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *InvoiceItemHandler) Get(c *gin.Context) {
	invoiceID := model.AltID(c.Param("invoiceId"))
	itemID := model.AltID(c.Param("itemId"))

	link, err := h.uc.GetInvoiceItem(c.Request.Context(), invoiceID, itemID)
	if err != nil {
		h.logger.Error("failed to get invoice item",
			zap.String("invoice_id", invoiceID.String()),
			zap.String("item_id", itemID.String()),
			zap.Error(err),
		)
		httputil.StoreError(c, err)
		return
	}
	if link == nil {
		httputil.Error(c, http.StatusNotFound,
			fmt.Sprintf("association of invoice %s and item %s not found", invoiceID, itemID))
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *InvoiceItemHandler) Create(c *gin.Context) {
	var input dto.CreateInvoiceItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	link, err := h.uc.CreateInvoiceItem(c.Request.Context(), &model.InvoiceItem{
		InvoiceID: input.InvoiceID,
		ItemID:    input.ItemID,
	})
	if err != nil {
		h.logger.Error("failed to create invoice item", zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *InvoiceItemHandler) Delete(c *gin.Context) {
	invoiceID := model.AltID(c.Param("invoiceId"))
	itemID := model.AltID(c.Param("itemId"))

	if err := h.uc.DeleteInvoiceItem(c.Request.Context(), invoiceID, itemID); err != nil {
		h.logger.Error("failed to delete invoice item",
			zap.String("invoice_id", invoiceID.String()),
			zap.String("item_id", itemID.String()),
			zap.Error(err),
		)
		httputil.StoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InvoiceItemHandler) DeleteByInvoiceID(c *gin.Context) {
	invoiceID := model.AltID(c.Param("invoiceId"))

	if err := h.uc.DeleteByInvoiceID(c.Request.Context(), invoiceID); err != nil {
		h.logger.Error("failed to delete invoice items by invoice", zap.String("invoice_id", invoiceID.String()), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InvoiceItemHandler) DeleteByItemID(c *gin.Context) {
	itemID := model.AltID(c.Param("itemId"))

	if err := h.uc.DeleteByItemID(c.Request.Context(), itemID); err != nil {
		h.logger.Error("failed to delete invoice items by item", zap.String("item_id", itemID.String()), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
