package dto

import "time"

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=super admin vendedor"`
}

// UpdateUserRequest replaces username/role; the password is re-hashed only
// when a non-empty value is supplied.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"omitempty,min=1,max=150"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=super admin vendedor"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string     `json:"_id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	IsOnline  bool       `json:"isOnline"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
