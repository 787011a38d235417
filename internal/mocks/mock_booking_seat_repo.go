package mocks

import (
	"context"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

type MockBookingSeatRepo struct {
	FindByBookingIDFunc         func(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingSeat, error)
	FindBookedSeatIDsByShowFunc func(ctx context.Context, showID uuid.UUID) ([]uuid.UUID, error)
}

func (m *MockBookingSeatRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingSeat, error) {
	return m.FindByBookingIDFunc(ctx, bookingID)
}

func (m *MockBookingSeatRepo) FindBookedSeatIDsByShow(ctx context.Context, showID uuid.UUID) ([]uuid.UUID, error) {
	return m.FindBookedSeatIDsByShowFunc(ctx, showID)
}
