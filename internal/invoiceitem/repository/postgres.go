package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mardika/inventory-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.InvoiceItem, error) {
	links := []model.InvoiceItem{}
	if err := r.DB.SelectContext(ctx, &links, `SELECT * FROM invoices_items`); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *PGRepository) FindByInvoiceID(ctx context.Context, invoiceID model.AltID) ([]model.InvoiceItem, error) {
	links := []model.InvoiceItem{}
	err := r.DB.SelectContext(ctx, &links, `SELECT * FROM invoices_items WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *PGRepository) FindByItemID(ctx context.Context, itemID model.AltID) ([]model.InvoiceItem, error) {
	links := []model.InvoiceItem{}
	err := r.DB.SelectContext(ctx, &links, `SELECT * FROM invoices_items WHERE item_id = $1`, itemID)
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *PGRepository) FindOne(ctx context.Context, invoiceID, itemID model.AltID) (*model.InvoiceItem, error) {
	var link model.InvoiceItem
	err := r.DB.GetContext(ctx, &link,
		`SELECT * FROM invoices_items WHERE invoice_id = $1 AND item_id = $2 LIMIT 1`,
		invoiceID, itemID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *PGRepository) Create(ctx context.Context, link *model.InvoiceItem) (*model.InvoiceItem, error) {
	// The pair is inserted as given. Dangling identifiers fail on the
	// store's foreign keys; a duplicate pair fails on the composite
	// primary key. Both propagate to the caller unmodified.
	query := `
        INSERT INTO invoices_items (invoice_id, item_id)
        VALUES (:invoice_id, :item_id)
        RETURNING *
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, link)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var created model.InvoiceItem
	if err := rows.StructScan(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PGRepository) Remove(ctx context.Context, invoiceID, itemID model.AltID) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM invoices_items WHERE invoice_id = $1 AND item_id = $2`,
		invoiceID, itemID,
	)
	return err
}

func (r *PGRepository) RemoveByInvoiceID(ctx context.Context, invoiceID model.AltID) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM invoices_items WHERE invoice_id = $1`, invoiceID)
	return err
}

func (r *PGRepository) RemoveByItemID(ctx context.Context, itemID model.AltID) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM invoices_items WHERE item_id = $1`, itemID)
	return err
}
