// Package httputil maps service-level failures onto HTTP responses. The
// repositories propagate store errors verbatim; classification happens
// here, at the boundary.
package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mardika/inventory-service/pkg/db"
)

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// StoreError classifies a store-level failure. Constraint violations
// (duplicate unique value, dangling or still-referenced foreign key) become
// 409; everything else is an opaque 500.
func StoreError(c *gin.Context, err error) {
	switch {
	case db.IsUniqueViolation(err):
		Error(c, http.StatusConflict, "duplicate value violates a unique constraint")
	case db.IsForeignKeyViolation(err):
		Error(c, http.StatusConflict, "row is referenced by or references a missing row")
	default:
		Error(c, http.StatusInternalServerError, "internal server error")
	}
}
