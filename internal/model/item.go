package model

type Item struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	UnitPrice   Decimal `db:"unit_price" json:"unit_price"`
}
