package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mardika/inventory-service/internal/httputil"
	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/internal/person"
	"github.com/mardika/inventory-service/internal/person/dto"
	"github.com/mardika/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type PersonHandler struct {
	uc     person.UseCase
	logger logger.ZapLogger
}

func NewPersonHandler(uc person.UseCase, log logger.ZapLogger) *PersonHandler {
	return &PersonHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PersonHandler) List(c *gin.Context) {
	persons, err := h.uc.ListPersons(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list persons", zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, persons)
}

func (h *PersonHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "id must be an integer")
		return
	}

	p, err := h.uc.GetPerson(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get person", zap.Int64("id", id), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	if p == nil {
		httputil.Error(c, http.StatusNotFound, fmt.Sprintf("person with id %d not found", id))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PersonHandler) GetByAltID(c *gin.Context) {
	altID := model.AltID(c.Param("altId"))

	p, err := h.uc.GetPersonByAltID(c.Request.Context(), altID)
	if err != nil {
		h.logger.Error("failed to get person by alt_id", zap.String("alt_id", altID.String()), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	if p == nil {
		httputil.Error(c, http.StatusNotFound, fmt.Sprintf("person with alt_id %s not found", altID))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PersonHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	p, err := h.uc.GetPersonByEmail(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("failed to get person by email", zap.String("email", email), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	if p == nil {
		httputil.Error(c, http.StatusNotFound, fmt.Sprintf("person with email %s not found", email))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PersonHandler) Create(c *gin.Context) {
	var input dto.CreatePersonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.uc.CreatePerson(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create person", zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PersonHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "id must be an integer")
		return
	}

	var input dto.UpdatePersonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.uc.UpdatePerson(c.Request.Context(), id, &input)
	if err != nil {
		h.logger.Error("failed to update person", zap.Int64("id", id), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	if p == nil {
		httputil.Error(c, http.StatusNotFound, fmt.Sprintf("person with id %d not found", id))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PersonHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "id must be an integer")
		return
	}

	if err := h.uc.DeletePerson(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete person", zap.Int64("id", id), zap.Error(err))
		httputil.StoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
