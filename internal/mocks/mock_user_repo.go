package mocks

import (
	"context"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

type MockUserRepo struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	UpdateFunc         func(ctx context.Context, user *entity.User) error
}

func (m *MockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *MockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.FindByUsernameFunc(ctx, username)
}

func (m *MockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.UpdateFunc(ctx, user)
}
