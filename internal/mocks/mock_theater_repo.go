package mocks

import (
	"context"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

type MockTheaterRepo struct {
	CreateFunc     func(ctx context.Context, theater *entity.Theater) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*entity.Theater, error)
	FindAllFunc    func(ctx context.Context, limit, offset int) ([]*entity.Theater, error)
	FindByCityFunc func(ctx context.Context, city string) ([]*entity.Theater, error)
	CountAllFunc   func(ctx context.Context) (int64, error)
	UpdateFunc     func(ctx context.Context, theater *entity.Theater) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTheaterRepo) Create(ctx context.Context, theater *entity.Theater) error {
	return m.CreateFunc(ctx, theater)
}

func (m *MockTheaterRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Theater, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockTheaterRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Theater, error) {
	return m.FindAllFunc(ctx, limit, offset)
}

func (m *MockTheaterRepo) FindByCity(ctx context.Context, city string) ([]*entity.Theater, error) {
	return m.FindByCityFunc(ctx, city)
}

func (m *MockTheaterRepo) CountAll(ctx context.Context) (int64, error) {
	return m.CountAllFunc(ctx)
}

func (m *MockTheaterRepo) Update(ctx context.Context, theater *entity.Theater) error {
	return m.UpdateFunc(ctx, theater)
}

func (m *MockTheaterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
