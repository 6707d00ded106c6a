package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/internal/person/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Person, error) {
	persons := []model.Person{}
	if err := r.DB.SelectContext(ctx, &persons, `SELECT * FROM persons ORDER BY id`); err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *PGRepository) FindOne(ctx context.Context, id int64) (*model.Person, error) {
	var person model.Person
	err := r.DB.GetContext(ctx, &person, `SELECT * FROM persons WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (r *PGRepository) FindByAltID(ctx context.Context, altID model.AltID) (*model.Person, error) {
	var person model.Person
	err := r.DB.GetContext(ctx, &person, `SELECT * FROM persons WHERE alt_id = $1 LIMIT 1`, altID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.Person, error) {
	// Email carries a unique constraint, so a single row lookup suffices.
	var person model.Person
	err := r.DB.GetContext(ctx, &person, `SELECT * FROM persons WHERE email = $1 LIMIT 1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (r *PGRepository) Create(ctx context.Context, input *dto.CreatePersonInput) (*model.Person, error) {
	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = model.SystemActor
	}

	query := `
        INSERT INTO persons (alt_id, name, email, created_by)
        VALUES (:alt_id, :name, :email, :created_by)
        RETURNING *
    `
	args := map[string]interface{}{
		"alt_id":     uuid.NewString(),
		"name":       input.Name,
		"email":      input.Email,
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
	var person model.Person
	if err := rows.StructScan(&person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PGRepository) Update(ctx context.Context, id int64, input *dto.UpdatePersonInput) (*model.Person, error) {
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
	if input.Email != nil {
		sets = append(sets, "email = :email")
		args["email"] = *input.Email
	}

	query := "UPDATE persons SET " + strings.Join(sets, ", ") + " WHERE id = :id RETURNING *"

	rows, err := r.DB.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		// No row matched the internal key.
		return nil, rows.Err()
	}
	var person model.Person
	if err := rows.StructScan(&person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PGRepository) Remove(ctx context.Context, id int64) error {
	// Invoices keep a foreign key on persons.alt_id; removing a person
	// still referenced by an invoice fails on that constraint and the
	// violation propagates to the caller.
	_, err := r.DB.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, id)
	return err
}
