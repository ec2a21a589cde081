package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,role"`
	Phone    string `json:"phone"`

	Grade          string `json:"grade"`
	Subject        string `json:"subject"`
	Experience     int    `json:"experience" validate:"gte=0"`
	Qualifications string `json:"qualifications"`
	Department     string `json:"department"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdateRequest merges into an existing user. Nil fields are left
// untouched; fields are never removed.
type ProfileUpdateRequest struct {
	Name           *string `json:"name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Grade          *string `json:"grade,omitempty"`
	Subject        *string `json:"subject,omitempty"`
	Experience     *int    `json:"experience,omitempty" validate:"omitempty,gte=0"`
	Qualifications *string `json:"qualifications,omitempty"`
	Department     *string `json:"department,omitempty"`
}
