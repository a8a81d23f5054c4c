package dto

// ── user module DTOs (admin) ──

// CreateUserRequest POST /users
type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Email    string `json:"email"     binding:"required,email"`
	Password string `json:"password"  binding:"required,min=6,max=72"`
	Role     string `json:"role"      binding:"required"`
}

// UpdateUserRequest PUT /users/:id
// A blank password keeps the stored one.
type UpdateUserRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Email    string `json:"email"     binding:"required,email"`
	Password string `json:"password"  binding:"omitempty,min=6,max=72"`
	Role     string `json:"role"      binding:"required"`
}
