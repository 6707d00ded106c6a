package model

type Invoice struct {
	BaseModel
	Total  Decimal `db:"total" json:"total"`
	Paid   bool    `db:"paid" json:"paid"`
	UserID AltID   `db:"user_id" json:"user_id"` // references Person.AltID, never Person.ID
}
