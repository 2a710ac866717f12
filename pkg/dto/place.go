package dto

import "strings"

// CreatePlaceRequest is the admin input for a new place. Optional fields are
// pointers so that an absent field, a null and an empty string all mean the
// same thing: not provided.
type CreatePlaceRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Category    string   `json:"category" validate:"required,max=50"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,max=200"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Image       *string  `json:"image,omitempty"`
}

// Normalize trims whitespace and drops present-but-empty strings before
// validation, so "" never overwrites anything and never passes a required
// check.
func (r *CreatePlaceRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	r.Description = cleanOptional(r.Description)
	r.Address = cleanOptional(r.Address)
	r.Image = cleanOptional(r.Image)
}

// UpdatePlaceRequest is a partial update: every field is optional and only
// provided fields are merged over the existing record.
type UpdatePlaceRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,max=200"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Image       *string  `json:"image,omitempty"`
}

func (r *UpdatePlaceRequest) Normalize() {
	r.Name = cleanOptional(r.Name)
	r.Category = cleanOptional(r.Category)
	r.Description = cleanOptional(r.Description)
	r.Address = cleanOptional(r.Address)
	r.Image = cleanOptional(r.Image)
}

func cleanOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// MessageResponse is a generic success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
