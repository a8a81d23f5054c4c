package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sneha-510/smart-coalmine-system/config"
	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/model"
	"github.com/sneha-510/smart-coalmine-system/internal/permission"
	"github.com/sneha-510/smart-coalmine-system/internal/repository"
	apperrors "github.com/sneha-510/smart-coalmine-system/pkg/errors"
	"github.com/sneha-510/smart-coalmine-system/pkg/redis"
	"github.com/sneha-510/smart-coalmine-system/pkg/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrRoleNotAllowed     = errors.New("invalid role")
	ErrRefreshInvalid     = errors.New("refresh token invalid")
)

// AuthService covers login, self-registration and session lifecycle.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authService struct {
	cfg      *config.Config
	repo     *repository.Repository
	sessions *session.Manager
	rdb      *redis.Client
	logger   *zap.Logger
}

// NewAuthService creates an AuthService instance.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	sessions *session.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:      cfg,
		repo:     repo,
		sessions: sessions,
		rdb:      rdb,
		logger:   logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("look up user by email failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenPair(user.ID, user.Role, user.FullName, user.Email)
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	// Admin accounts cannot self-register.
	if !permission.SelfRegisterAllowed(req.Role) {
		return nil, ErrRoleNotAllowed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}

	resp := userResponse(user)
	return &resp, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.sessions.ParseToken(refreshToken)
	if err != nil || claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalid
	}

	// The referenced user must still exist.
	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalid
		}
		s.logger.Error("load user for refresh failed", zap.Error(err))
		return nil, err
	}

	return s.tokenPair(user.ID, user.Role, user.FullName, user.Email)
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	// Without Redis the cookie clear alone ends the session; the
	// token stays technically valid until its 24h expiry.
	if s.rdb == nil {
		return nil
	}
	return s.rdb.RevokeSession(ctx, jti, time.Until(expiresAt))
}

func (s *authService) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load current user failed", zap.Error(err))
		return nil, err
	}
	resp := userResponse(user)
	return &resp, nil
}

func (s *authService) tokenPair(userID uint, role, fullName, email string) (*dto.TokenResponse, error) {
	sessionToken, err := s.sessions.IssueSessionToken(userID, role)
	if err != nil {
		s.logger.Error("issue session token failed", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.sessions.IssueRefreshToken(userID, role)
	if err != nil {
		s.logger.Error("issue refresh token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		SessionToken: sessionToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.SessionTTL.Seconds()),
		User: dto.UserResponse{
			ID:       userID,
			FullName: fullName,
			Email:    email,
			Role:     role,
		},
	}, nil
}
