package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mardika/inventory-service/internal/httputil"
	"github.com/mardika/inventory-service/internal/invoice"
	"github.com/mardika/inventory-service/internal/invoice/dto"
	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	uc     invoice.UseCase
	logger logger.ZapLogger
}

func NewInvoiceHandler(uc invoice.UseCase, log logger.ZapLogger) *InvoiceHandler {
	return &InvoiceHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.uc.ListInvoices(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list invoices", zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "id must be an integer")
		return
	}

	inv, err := h.uc.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get invoice", zap.Int64("id", id), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	if inv == nil {
		httputil.Error(c, http.StatusNotFound, fmt.Sprintf("invoice with id %d not found", id))
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) GetByAltID(c *gin.Context) {
	altID := model.AltID(c.Param("altId"))

	inv, err := h.uc.GetInvoiceByAltID(c.Request.Context(), altID)
	if err != nil {
		h.logger.Error("failed to get invoice by alt_id", zap.String("alt_id", altID.String()), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	if inv == nil {
		httputil.Error(c, http.StatusNotFound, fmt.Sprintf("invoice with alt_id %s not found", altID))
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) ListByUserID(c *gin.Context) {
	userID := model.AltID(c.Param("userId"))

	invoices, err := h.uc.GetInvoicesByUserID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list invoices by user", zap.String("user_id", userID.String()), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var input dto.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := h.uc.CreateInvoice(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create invoice", zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "id must be an integer")
		return
	}

	var input dto.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := h.uc.UpdateInvoice(c.Request.Context(), id, &input)
	if err != nil {
		h.logger.Error("failed to update invoice", zap.Int64("id", id), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	if inv == nil {
		httputil.Error(c, http.StatusNotFound, fmt.Sprintf("invoice with id %d not found", id))
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "id must be an integer")
		return
	}

	if err := h.uc.DeleteInvoice(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete invoice", zap.Int64("id", id), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
