package mocks

import (
	"context"
	"time"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

type MockShowRepo struct {
	CreateFunc          func(ctx context.Context, show *entity.Show) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*entity.Show, error)
	FindByMovieIDFunc   func(ctx context.Context, movieID uuid.UUID) ([]*entity.Show, error)
	FindByTheaterIDFunc func(ctx context.Context, theaterID uuid.UUID) ([]*entity.Show, error)
	FindUpcomingFunc    func(ctx context.Context, after time.Time, limit, offset int) ([]*entity.Show, error)
	UpdateFunc          func(ctx context.Context, show *entity.Show) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockShowRepo) Create(ctx context.Context, show *entity.Show) error {
	return m.CreateFunc(ctx, show)
}

func (m *MockShowRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockShowRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Show, error) {
	return m.FindByMovieIDFunc(ctx, movieID)
}

func (m *MockShowRepo) FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Show, error) {
	return m.FindByTheaterIDFunc(ctx, theaterID)
}

func (m *MockShowRepo) FindUpcoming(ctx context.Context, after time.Time, limit, offset int) ([]*entity.Show, error) {
	return m.FindUpcomingFunc(ctx, after, limit, offset)
}

func (m *MockShowRepo) Update(ctx context.Context, show *entity.Show) error {
	return m.UpdateFunc(ctx, show)
}

func (m *MockShowRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
