package dto

// Request DTOs

type CreateUserRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"first_name" validate:"required,min=2"`
	LastName       string `json:"last_name" validate:"required,min=2"`
	Role           string `json:"role" validate:"required,oneof=admin doctor nurse receptionist pharmacist"`
	Department     string `json:"department" validate:"omitempty"`
	LicenseNumber  string `json:"license_number" validate:"omitempty"`
	Specialization string `json:"specialization" validate:"omitempty"`
	Biography      string `json:"biography" validate:"omitempty"`
}

type UpdateUserRequest struct {
	FirstName      string  `json:"first_name" validate:"omitempty,min=2"`
	LastName       string  `json:"last_name" validate:"omitempty,min=2"`
	Department     *string `json:"department" validate:"omitempty"`
	Password       string  `json:"password" validate:"omitempty,min=8"`
	Specialization *string `json:"specialization" validate:"omitempty"`
	Biography      *string `json:"biography" validate:"omitempty"`
}

type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// Response DTOs

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
