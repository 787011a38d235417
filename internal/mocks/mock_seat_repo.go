package mocks

import (
	"context"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

type MockSeatRepo struct {
	CreateFunc                func(ctx context.Context, seat *entity.Seat) error
	CreateBatchFunc           func(ctx context.Context, seats []*entity.Seat) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByShowIDFunc          func(ctx context.Context, showID uuid.UUID) ([]*entity.Seat, error)
	FindAvailableByShowIDFunc func(ctx context.Context, showID uuid.UUID) ([]*entity.Seat, error)
	FindByBookingIDFunc       func(ctx context.Context, bookingID uuid.UUID) ([]*entity.Seat, error)
	UpdateFunc                func(ctx context.Context, seat *entity.Seat) error
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
}

func (m *MockSeatRepo) Create(ctx context.Context, seat *entity.Seat) error {
	return m.CreateFunc(ctx, seat)
}

func (m *MockSeatRepo) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	return m.CreateBatchFunc(ctx, seats)
}

func (m *MockSeatRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockSeatRepo) FindByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Seat, error) {
	return m.FindByShowIDFunc(ctx, showID)
}

func (m *MockSeatRepo) FindAvailableByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Seat, error) {
	return m.FindAvailableByShowIDFunc(ctx, showID)
}

func (m *MockSeatRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Seat, error) {
	return m.FindByBookingIDFunc(ctx, bookingID)
}

func (m *MockSeatRepo) Update(ctx context.Context, seat *entity.Seat) error {
	return m.UpdateFunc(ctx, seat)
}

func (m *MockSeatRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
