package mocks

import (
	"context"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

type MockPaymentRepo struct {
	CreateFunc                func(ctx context.Context, payment *entity.Payment) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByBookingIDFunc       func(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
	UpdateRetryFunc           func(ctx context.Context, payment *entity.Payment) error
	FindDetailsByUserIDFunc   func(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentDetail, error)
	FindDetailByBookingIDFunc func(ctx context.Context, bookingID uuid.UUID) (*entity.PaymentDetail, error)
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	return m.CreateFunc(ctx, payment)
}

func (m *MockPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockPaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	return m.FindByBookingIDFunc(ctx, bookingID)
}

func (m *MockPaymentRepo) UpdateRetry(ctx context.Context, payment *entity.Payment) error {
	return m.UpdateRetryFunc(ctx, payment)
}

func (m *MockPaymentRepo) FindDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentDetail, error) {
	return m.FindDetailsByUserIDFunc(ctx, userID)
}

func (m *MockPaymentRepo) FindDetailByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.PaymentDetail, error) {
	return m.FindDetailByBookingIDFunc(ctx, bookingID)
}
