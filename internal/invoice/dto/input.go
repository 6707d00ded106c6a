package dto

import "github.com/mardika/inventory-service/internal/model"

// CreateInvoiceInput excludes id and alt_id; both are server-assigned.
// UserID is the owning person's surface identifier.
type CreateInvoiceInput struct {
	Total     float64     `json:"total"`
	Paid      bool        `json:"paid"`
	UserID    model.AltID `json:"user_id" binding:"required"`
	CreatedBy string      `json:"created_by"`
}

// UpdateInvoiceInput is a partial update; nil fields are left untouched.
type UpdateInvoiceInput struct {
	Total         *float64     `json:"total"`
	Paid          *bool        `json:"paid"`
	UserID        *model.AltID `json:"user_id"`
	LastChangedBy *string      `json:"last_changed_by"`
}
