package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/model"
	"github.com/sneha-510/smart-coalmine-system/internal/permission"
	"github.com/sneha-510/smart-coalmine-system/internal/repository"
	apperrors "github.com/sneha-510/smart-coalmine-system/pkg/errors"
)

var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrSelfDeletion = errors.New("cannot delete your own account")
)

// UserService covers the admin-managed user directory.
type UserService interface {
	ListNonAdmin(ctx context.Context) ([]dto.UserResponse, error)
	ListWorkers(ctx context.Context) ([]dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id, actorID uint) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService instance.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) ListNonAdmin(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.ListNonAdmin(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i]))
	}
	return out, nil
}

func (s *userService) ListWorkers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.ListByRole(ctx, permission.RoleWorker)
	if err != nil {
		s.logger.Error("list workers failed", zap.Error(err))
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i]))
	}
	return out, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !permission.ValidRole(req.Role) {
		return nil, ErrInvalidRole
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

func (s *userService) Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !permission.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.Error(err))
		return nil, err
	}

	user.FullName = req.FullName
	user.Email = req.Email
	user.Role = req.Role
	// A blank password keeps the stored hash.
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("hash password failed", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("update user failed", zap.Error(err))
		return nil, err
	}

	resp := userResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id, actorID uint) error {
	if id == actorID {
		return ErrSelfDeletion
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("delete user failed", zap.Error(err))
		return err
	}
	return nil
}
