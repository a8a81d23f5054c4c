package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/service"
	"github.com/sneha-510/smart-coalmine-system/pkg/response"
)

// UserHandler serves the admin-managed user directory.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List returns every non-admin user.
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userSvc.ListNonAdmin(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"users": users})
}

// ListWorkers returns every worker, for shift assignment forms.
// GET /api/v1/users/workers
func (h *UserHandler) ListWorkers(c *gin.Context) {
	users, err := h.userSvc.ListWorkers(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"users": users})
}

// Create inserts a new user with any role.
// POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			response.BadRequest(c, "Invalid role")
		case errors.Is(err, service.ErrEmailTaken):
			response.BadRequest(c, "Email already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, gin.H{"user": user})
}

// Update replaces a user record; a blank password keeps the stored one.
// PUT /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name, email, and role are required")
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, service.ErrInvalidRole):
			response.BadRequest(c, "Invalid role")
		case errors.Is(err, service.ErrEmailTaken):
			response.BadRequest(c, "Email already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"user": user})
}

// Delete hard-deletes a user. Deleting oneself is rejected.
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), id, actorID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfDeletion):
			response.BadRequest(c, "Cannot delete your own account")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
