package model

// InvoiceItem is the many-to-many association between invoices and items,
// keyed by both surface identifiers. It has no surrogate id and no owned
// attributes.
type InvoiceItem struct {
	InvoiceID AltID `db:"invoice_id" json:"invoice_id"`
	ItemID    AltID `db:"item_id" json:"item_id"`
}
