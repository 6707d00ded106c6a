package dto

import "github.com/mardika/inventory-service/internal/model"

// CreateInvoiceItemInput carries the two surface identifiers forming the
// composite key. The pair is inserted as given.
type CreateInvoiceItemInput struct {
	InvoiceID model.AltID `json:"invoice_id" binding:"required"`
	ItemID    model.AltID `json:"item_id" binding:"required"`
}
