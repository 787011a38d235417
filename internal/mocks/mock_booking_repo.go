package mocks

import (
	"context"
	"time"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

type MockBookingRepo struct {
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserIDFunc           func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserIDFunc          func(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateStatusFunc           func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	FindDetailsByUserIDFunc    func(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error)
	FindDetailsByShowIDFunc    func(ctx context.Context, showID uuid.UUID) ([]*entity.BookingDetail, error)
	FindDetailsByDateRangeFunc func(ctx context.Context, from, to time.Time) ([]*entity.BookingDetail, error)
	FindAllDetailsFunc         func(ctx context.Context) ([]*entity.BookingDetail, error)
	FindReceiptDataFunc        func(ctx context.Context, bookingID uuid.UUID) (*entity.ReceiptData, error)
}

func (m *MockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return m.FindByUserIDFunc(ctx, userID, limit, offset)
}

func (m *MockBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.CountByUserIDFunc(ctx, userID)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	return m.UpdateStatusFunc(ctx, bookingID, status)
}

func (m *MockBookingRepo) FindDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	return m.FindDetailsByUserIDFunc(ctx, userID)
}

func (m *MockBookingRepo) FindDetailsByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.BookingDetail, error) {
	return m.FindDetailsByShowIDFunc(ctx, showID)
}

func (m *MockBookingRepo) FindDetailsByDateRange(ctx context.Context, from, to time.Time) ([]*entity.BookingDetail, error) {
	return m.FindDetailsByDateRangeFunc(ctx, from, to)
}

func (m *MockBookingRepo) FindAllDetails(ctx context.Context) ([]*entity.BookingDetail, error) {
	return m.FindAllDetailsFunc(ctx)
}

func (m *MockBookingRepo) FindReceiptData(ctx context.Context, bookingID uuid.UUID) (*entity.ReceiptData, error) {
	return m.FindReceiptDataFunc(ctx, bookingID)
}
