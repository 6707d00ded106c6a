package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// SystemActor is the fallback for created_by / last_changed_by when the
// caller does not supply one.
const SystemActor = "system"

// AltID is the surface identifier of a row: randomly generated at insert
// time, unique and immutable for the lifetime of the row. It is the only
// identifier other tables may reference; the sequential internal key never
// leaves the entity's own CRUD paths.
type AltID string

func (a AltID) String() string { return string(a) }

// Decimal is a fixed-point numeric column held as a number in memory.
// The pg driver hands numeric values back as text, so Scan parses
// explicitly; without this callers would observe string-typed values.
type Decimal float64

func (d *Decimal) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Decimal(v)
	case int64:
		*d = Decimal(v)
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return fmt.Errorf("model: parse decimal %q: %w", v, err)
		}
		*d = Decimal(f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("model: parse decimal %q: %w", v, err)
		}
		*d = Decimal(f)
	default:
		return fmt.Errorf("model: cannot scan %T into Decimal", value)
	}
	return nil
}

func (d Decimal) Value() (driver.Value, error) {
	return float64(d), nil
}

func (d Decimal) Float64() float64 { return float64(d) }

// BaseModel carries the dual identifiers and audit columns shared by every
// primary entity.
type BaseModel struct {
	ID            int64     `db:"id" json:"id"`
	AltID         AltID     `db:"alt_id" json:"alt_id"`
	CreatedBy     string    `db:"created_by" json:"created_by"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	LastUpdate    time.Time `db:"last_update" json:"last_update"`
	LastChangedBy string    `db:"last_changed_by" json:"last_changed_by"`
}
