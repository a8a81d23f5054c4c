package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sneha-510/smart-coalmine-system/config"
	"github.com/sneha-510/smart-coalmine-system/internal/api/middleware"
	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/service"
	"github.com/sneha-510/smart-coalmine-system/pkg/response"
)

// AuthHandler serves the auth module.
type AuthHandler struct {
	cfg     *config.Config
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(cfg *config.Config, authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, authSvc: authSvc}
}

// Login authenticates by email/password and issues the session cookie.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, result.SessionToken)
	response.OK(c, gin.H{"user": result.User, "token": result})
}

// Register self-signs-up a worker or auditor account.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoleNotAllowed):
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

// Refresh exchanges a refresh token for a new pair.
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Refresh token is required")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrRefreshInvalid) {
			response.Unauthorized(c, "Refresh token invalid")
			return
		}
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, result.SessionToken)
	response.OK(c, gin.H{"user": result.User, "token": result})
}

// Logout revokes the session and clears the cookie.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.CtxSessionJTI)
	exp, _ := c.Get(middleware.CtxSessionExp)
	expiresAt, _ := exp.(time.Time)

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.InternalError(c)
		return
	}

	h.clearSessionCookie(c)
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	response.OK(c, nil)
}

// Me returns the current user resolved from the session.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// The session references a deleted account.
			h.clearSessionCookie(c)
			response.Unauthorized(c, "Session invalid or expired")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"user": user})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	cookie := h.cfg.Auth.Cookie
	c.SetSameSite(sameSiteMode(cookie.SameSite))
	c.SetCookie(cookie.Name, token, int(h.cfg.Auth.SessionTTL.Seconds()), "/", cookie.Domain, cookie.Secure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	cookie := h.cfg.Auth.Cookie
	c.SetSameSite(sameSiteMode(cookie.SameSite))
	c.SetCookie(cookie.Name, "", -1, "/", cookie.Domain, cookie.Secure, true)
}

func sameSiteMode(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
