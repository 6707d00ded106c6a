package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mardika/inventory-service/internal/item/dto"
	"github.com/mardika/inventory-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Item, error) {
	items := []model.Item{}
	if err := r.DB.SelectContext(ctx, &items, `SELECT * FROM items ORDER BY id`); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) FindOne(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item
	err := r.DB.GetContext(ctx, &item, `SELECT * FROM items WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) FindByAltID(ctx context.Context, altID model.AltID) (*model.Item, error) {
	var item model.Item
	err := r.DB.GetContext(ctx, &item, `SELECT * FROM items WHERE alt_id = $1 LIMIT 1`, altID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) Create(ctx context.Context, input *dto.CreateItemInput) (*model.Item, error) {
	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = model.SystemActor
	}

	query := `
        INSERT INTO items (alt_id, name, description, unit_price, created_by)
        VALUES (:alt_id, :name, :description, :unit_price, :created_by)
        RETURNING *
    `
	args := map[string]interface{}{
		"alt_id":      uuid.NewString(),
		"name":        input.Name,
		"description": input.Description,
		"unit_price":  input.UnitPrice,
		"created_by":  createdBy,
	}

	rows, err := r.DB.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var item model.Item
	if err := rows.StructScan(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) Update(ctx context.Context, id int64, input *dto.UpdateItemInput) (*model.Item, error) {
	sets := []string{"last_update = now()", "last_changed_by = :last_changed_by"}
	args := map[string]interface{}{
		"id":              id,
		"last_changed_by": model.SystemActor,
	}
	if input.LastChangedBy != nil {
		args["last_changed_by"] = *input.LastChangedBy
	}
	if input.Name != nil {
		sets = append(sets, "name = :name")
		args["name"] = *input.Name
	}
	if input.Description != nil {
		sets = append(sets, "description = :description")
		args["description"] = *input.Description
	}
	if input.UnitPrice != nil {
		sets = append(sets, "unit_price = :unit_price")
		args["unit_price"] = *input.UnitPrice
	}

	query := "UPDATE items SET " + strings.Join(sets, ", ") + " WHERE id = :id RETURNING *"

	rows, err := r.DB.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		// No row matched the internal key.
		return nil, rows.Err()
	}
	var item model.Item
	if err := rows.StructScan(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) Remove(ctx context.Context, id int64) error {
	// Idempotent: deleting an absent row is not an error.
	_, err := r.DB.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	return err
}
