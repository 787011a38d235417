package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)

	// UpdateProfile changes the account's username, email and phone. The new
	// username and email must not belong to another account.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	// ChangePassword verifies the old password before storing the new hash.
	// Every open session is revoked, so the client has to log in again.
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	user, err := us.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != user.Email {
		other, err := us.repo.User.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if other != nil && other.ID != userID {
			return nil, fmt.Errorf("email already registered: %w", entity.ErrAlreadyExists)
		}
	}

	if req.Username != user.Username {
		other, err := us.repo.User.FindByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if other != nil && other.ID != userID {
			return nil, fmt.Errorf("username already taken: %w", entity.ErrAlreadyExists)
		}
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Phone = req.Phone
	user.UpdatedAt = time.Now()

	if err := us.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	us.log.Info("Profile updated", zap.String("user_id", userID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	user, err := us.requireUser(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		us.log.Warn("Password change with wrong old password",
			zap.String("user_id", userID.String()))
		return fmt.Errorf("old password does not match: %w", entity.ErrForbidden)
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now()

	if err := us.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := us.repo.Session.RevokeAllUserSessions(ctx, userID); err != nil {
		// The new password is in place; stale sessions die at expiry anyway.
		us.log.Warn("Failed to revoke sessions after password change",
			zap.Error(err), zap.String("user_id", userID.String()))
	}

	us.log.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}

func (us *userService) requireUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.String(), entity.ErrNotFound)
	}
	return user, nil
}
