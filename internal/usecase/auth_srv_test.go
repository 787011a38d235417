package usecase

import (
	"context"
	"testing"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/mocks"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func authConfig() *utils.Config {
	cfg := &utils.Config{}
	cfg.Auth.SessionExpiryHours = 24
	return cfg
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account and logs it in", func(t *testing.T) {
		var created *entity.User
		userRepo := &mocks.MockUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, nil
			},
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = user
				return nil
			},
		}
		sessionRepo := &mocks.MockSessionRepo{
			CreateFunc: func(ctx context.Context, session *entity.Session) error {
				return nil
			},
		}
		svc := NewAuthService(&repository.Repository{User: userRepo, Session: sessionRepo}, authConfig(), zap.NewNop())

		resp, err := svc.Register(ctx, &request.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "hunter22",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, entity.RoleCustomer, created.Role)
		assert.True(t, created.IsActive)
		assert.NotEqual(t, "hunter22", created.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("hunter22", created.PasswordHash))
		assert.NotEmpty(t, resp.Token)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), resp.ExpiresAt, time.Minute)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := &mocks.MockUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{Base: entity.Base{ID: uuid.New()}, Email: email}, nil
			},
		}
		svc := NewAuthService(&repository.Repository{User: userRepo}, authConfig(), zap.NewNop())

		_, err := svc.Register(ctx, &request.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "hunter22",
		})

		assert.ErrorIs(t, err, entity.ErrAlreadyExists)
	})

	t.Run("duplicate username", func(t *testing.T) {
		userRepo := &mocks.MockUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, nil
			},
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return &entity.User{Base: entity.Base{ID: uuid.New()}, Username: username}, nil
			},
		}
		svc := NewAuthService(&repository.Repository{User: userRepo}, authConfig(), zap.NewNop())

		_, err := svc.Register(ctx, &request.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "hunter22",
		})

		assert.ErrorIs(t, err, entity.ErrAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := utils.HashPassword("hunter22")
	require.NoError(t, err)

	activeUser := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	sessionRepo := &mocks.MockSessionRepo{
		CreateFunc: func(ctx context.Context, session *entity.Session) error {
			return nil
		},
	}

	t.Run("login by email", func(t *testing.T) {
		userRepo := &mocks.MockUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return activeUser, nil
			},
		}
		svc := NewAuthService(&repository.Repository{User: userRepo, Session: sessionRepo}, authConfig(), zap.NewNop())

		resp, err := svc.Login(ctx, &request.LoginRequest{Username: "alice@example.com", Password: "hunter22"})

		require.NoError(t, err)
		assert.Equal(t, activeUser.ID.String(), resp.UserID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("falls back to username lookup", func(t *testing.T) {
		userRepo := &mocks.MockUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, nil
			},
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				assert.Equal(t, "alice", username)
				return activeUser, nil
			},
		}
		svc := NewAuthService(&repository.Repository{User: userRepo, Session: sessionRepo}, authConfig(), zap.NewNop())

		_, err := svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "hunter22"})

		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := &mocks.MockUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return activeUser, nil
			},
		}
		svc := NewAuthService(&repository.Repository{User: userRepo}, authConfig(), zap.NewNop())

		_, err := svc.Login(ctx, &request.LoginRequest{Username: "alice@example.com", Password: "wrong-pass"})

		assert.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		userRepo := &mocks.MockUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, nil
			},
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return nil, nil
			},
		}
		svc := NewAuthService(&repository.Repository{User: userRepo}, authConfig(), zap.NewNop())

		_, err := svc.Login(ctx, &request.LoginRequest{Username: "ghost", Password: "hunter22"})

		assert.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("deactivated account", func(t *testing.T) {
		inactive := *activeUser
		inactive.IsActive = false
		userRepo := &mocks.MockUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &inactive, nil
			},
		}
		svc := NewAuthService(&repository.Repository{User: userRepo}, authConfig(), zap.NewNop())

		_, err := svc.Login(ctx, &request.LoginRequest{Username: "alice@example.com", Password: "hunter22"})

		assert.ErrorIs(t, err, entity.ErrForbidden)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the session", func(t *testing.T) {
		token := uuid.New()
		revoked := false
		sessionRepo := &mocks.MockSessionRepo{
			RevokeFunc: func(ctx context.Context, tok string) error {
				revoked = true
				assert.Equal(t, token.String(), tok)
				return nil
			},
		}
		svc := NewAuthService(&repository.Repository{Session: sessionRepo}, authConfig(), zap.NewNop())

		require.NoError(t, svc.Logout(ctx, token.String()))
		assert.True(t, revoked)
	})

	t.Run("malformed token", func(t *testing.T) {
		svc := NewAuthService(&repository.Repository{}, authConfig(), zap.NewNop())

		err := svc.Logout(ctx, "not-a-token")

		assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}
