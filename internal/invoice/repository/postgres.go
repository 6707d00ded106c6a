package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mardika/inventory-service/internal/invoice/dto"
	"github.com/mardika/inventory-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Invoice, error) {
	invoices := []model.Invoice{}
	if err := r.DB.SelectContext(ctx, &invoices, `SELECT * FROM invoices ORDER BY id`); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *PGRepository) FindOne(ctx context.Context, id int64) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.DB.GetContext(ctx, &invoice, `SELECT * FROM invoices WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *PGRepository) FindByAltID(ctx context.Context, altID model.AltID) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.DB.GetContext(ctx, &invoice, `SELECT * FROM invoices WHERE alt_id = $1 LIMIT 1`, altID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *PGRepository) FindByUserID(ctx context.Context, userID model.AltID) ([]model.Invoice, error) {
	invoices := []model.Invoice{}
	err := r.DB.SelectContext(ctx, &invoices, `SELECT * FROM invoices WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *PGRepository) Create(ctx context.Context, input *dto.CreateInvoiceInput) (*model.Invoice, error) {
	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = model.SystemActor
	}

	// user_id must reference persons.alt_id; a dangling identifier fails
	// on the store's foreign key and the violation propagates upward.
	query := `
        INSERT INTO invoices (alt_id, total, paid, user_id, created_by)
        VALUES (:alt_id, :total, :paid, :user_id, :created_by)
        RETURNING *
    `
	args := map[string]interface{}{
		"alt_id":     uuid.NewString(),
		"total":      input.Total,
		"paid":       input.Paid,
		"user_id":    input.UserID,
		"created_by": createdBy,
	}

	rows, err := r.DB.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var invoice model.Invoice
	if err := rows.StructScan(&invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *PGRepository) Update(ctx context.Context, id int64, input *dto.UpdateInvoiceInput) (*model.Invoice, error) {
	sets := []string{"last_update = now()", "last_changed_by = :last_changed_by"}
	args := map[string]interface{}{
		"id":              id,
		"last_changed_by": model.SystemActor,
	}
	if input.LastChangedBy != nil {
		args["last_changed_by"] = *input.LastChangedBy
	}
	if input.Total != nil {
		sets = append(sets, "total = :total")
		args["total"] = *input.Total
	}
	if input.Paid != nil {
		sets = append(sets, "paid = :paid")
		args["paid"] = *input.Paid
	}
	if input.UserID != nil {
		sets = append(sets, "user_id = :user_id")
		args["user_id"] = *input.UserID
	}

	query := "UPDATE invoices SET " + strings.Join(sets, ", ") + " WHERE id = :id RETURNING *"

	rows, err := r.DB.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		// No row matched the internal key.
		return nil, rows.Err()
	}
	var invoice model.Invoice
	if err := rows.StructScan(&invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *PGRepository) Remove(ctx context.Context, id int64) error {
	// Idempotent: deleting an absent row is not an error.
	_, err := r.DB.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}
