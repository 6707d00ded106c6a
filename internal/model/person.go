package model

type Person struct {
	BaseModel
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}
