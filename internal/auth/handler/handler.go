package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mardika/inventory-service/internal/auth"
	"github.com/mardika/inventory-service/internal/httputil"
	"github.com/mardika/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

// AuthHandler exchanges Basic credentials for a bearer token. It is the
// only operation exempt from the request gate.
type AuthHandler struct {
	manager   *auth.Manager
	validator auth.CredentialValidator
	logger    logger.ZapLogger
}

func NewAuthHandler(manager *auth.Manager, validator auth.CredentialValidator, log logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		manager:   manager,
		validator: validator,
		logger:    log,
	}
}

// Authorize handles POST /authorize.
func (h *AuthHandler) Authorize(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		httputil.Error(c, http.StatusUnauthorized, "authorization header is missing")
		return
	}

	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		httputil.Error(c, http.StatusUnauthorized, "basic authentication is required")
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if err != nil {
		httputil.Error(c, http.StatusUnauthorized, "invalid authorization header")
		return
	}

	clientID, secret, ok := strings.Cut(string(decoded), ":")
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "invalid authorization header")
		return
	}

	if err := h.validator.Validate(clientID, secret); err != nil {
		httputil.Error(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.manager.Generate(clientID)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		httputil.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}
