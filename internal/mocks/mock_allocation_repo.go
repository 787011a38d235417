package mocks

import (
	"context"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

type MockAllocationRepo struct {
	ReserveFunc      func(ctx context.Context, booking *entity.Booking, seatNos []string, payment *entity.Payment) ([]*entity.Seat, error)
	ReserveByIDsFunc func(ctx context.Context, booking *entity.Booking, seatIDs []uuid.UUID, payment *entity.Payment) ([]*entity.Seat, error)
	ReleaseFunc      func(ctx context.Context, bookingID uuid.UUID) ([]string, error)
	ReleaseSeatsFunc func(ctx context.Context, bookingID uuid.UUID) ([]string, error)
}

func (m *MockAllocationRepo) Reserve(ctx context.Context, booking *entity.Booking, seatNos []string, payment *entity.Payment) ([]*entity.Seat, error) {
	return m.ReserveFunc(ctx, booking, seatNos, payment)
}

func (m *MockAllocationRepo) ReserveByIDs(ctx context.Context, booking *entity.Booking, seatIDs []uuid.UUID, payment *entity.Payment) ([]*entity.Seat, error) {
	return m.ReserveByIDsFunc(ctx, booking, seatIDs, payment)
}

func (m *MockAllocationRepo) Release(ctx context.Context, bookingID uuid.UUID) ([]string, error) {
	return m.ReleaseFunc(ctx, bookingID)
}

func (m *MockAllocationRepo) ReleaseSeats(ctx context.Context, bookingID uuid.UUID) ([]string, error) {
	return m.ReleaseSeatsFunc(ctx, bookingID)
}
