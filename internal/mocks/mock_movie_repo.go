package mocks

import (
	"context"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

type MockMovieRepo struct {
	CreateFunc   func(ctx context.Context, movie *entity.Movie) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAllFunc  func(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	CountAllFunc func(ctx context.Context) (int64, error)
	UpdateFunc   func(ctx context.Context, movie *entity.Movie) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockMovieRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	return m.FindAllFunc(ctx, limit, offset)
}

func (m *MockMovieRepo) CountAll(ctx context.Context) (int64, error) {
	return m.CountAllFunc(ctx)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
