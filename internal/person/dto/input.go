package dto

// CreatePersonInput excludes id and alt_id; both are server-assigned.
type CreatePersonInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	CreatedBy string `json:"created_by"`
}

// UpdatePersonInput is a partial update; nil fields are left untouched.
type UpdatePersonInput struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	LastChangedBy *string `json:"last_changed_by"`
}
