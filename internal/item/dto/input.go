package dto

// CreateItemInput excludes id and alt_id; both are server-assigned.
type CreateItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	CreatedBy   string  `json:"created_by"`
}

// UpdateItemInput is a partial update; nil fields are left untouched.
type UpdateItemInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	UnitPrice     *float64 `json:"unit_price"`
	LastChangedBy *string  `json:"last_changed_by"`
}
