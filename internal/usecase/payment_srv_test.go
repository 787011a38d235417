package usecase

import (
	"context"
	"testing"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPaymentService_MakePayment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bookingID := uuid.New()

	t.Run("amount comes from the booking total", func(t *testing.T) {
		booking := bookingFixture(bookingID, userID, uuid.New())
		booking.TotalAmount = 899.5

		bookingRepo := &mocks.MockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return booking, nil
			},
		}
		var created *entity.Payment
		paymentRepo := &mocks.MockPaymentRepo{
			FindByBookingIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, payment *entity.Payment) error {
				created = payment
				return nil
			},
		}
		svc := NewPaymentService(&repository.Repository{Booking: bookingRepo, Payment: paymentRepo}, zap.NewNop())

		resp, err := svc.MakePayment(ctx, userID, &request.MakePaymentRequest{
			BookingID:   bookingID.String(),
			PaymentMode: "CARD",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, 899.5, created.Amount)
		assert.Equal(t, entity.PaymentStatusPaid, created.Status)
		assert.Equal(t, bookingID, created.BookingID)
		assert.Equal(t, 899.5, resp.Amount)
		assert.Equal(t, "CARD", resp.PaymentMode)
	})

	t.Run("refuses a second payment", func(t *testing.T) {
		bookingRepo := &mocks.MockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return bookingFixture(bookingID, userID, uuid.New()), nil
			},
		}
		paymentRepo := &mocks.MockPaymentRepo{
			FindByBookingIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
				return &entity.Payment{Base: entity.Base{ID: uuid.New()}, BookingID: bookingID}, nil
			},
		}
		svc := NewPaymentService(&repository.Repository{Booking: bookingRepo, Payment: paymentRepo}, zap.NewNop())

		_, err := svc.MakePayment(ctx, userID, &request.MakePaymentRequest{
			BookingID:   bookingID.String(),
			PaymentMode: "CARD",
		})

		assert.ErrorIs(t, err, entity.ErrInvalidState)
	})

	t.Run("refuses a cancelled booking", func(t *testing.T) {
		booking := bookingFixture(bookingID, userID, uuid.New())
		booking.Status = entity.BookingStatusCancelled

		bookingRepo := &mocks.MockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return booking, nil
			},
		}
		svc := NewPaymentService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

		_, err := svc.MakePayment(ctx, userID, &request.MakePaymentRequest{
			BookingID:   bookingID.String(),
			PaymentMode: "CARD",
		})

		assert.ErrorIs(t, err, entity.ErrInvalidState)
	})

	t.Run("refuses a foreign booking", func(t *testing.T) {
		bookingRepo := &mocks.MockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return bookingFixture(bookingID, uuid.New(), uuid.New()), nil
			},
		}
		svc := NewPaymentService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

		_, err := svc.MakePayment(ctx, userID, &request.MakePaymentRequest{
			BookingID:   bookingID.String(),
			PaymentMode: "CARD",
		})

		assert.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("unknown booking", func(t *testing.T) {
		bookingRepo := &mocks.MockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return nil, nil
			},
		}
		svc := NewPaymentService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

		_, err := svc.MakePayment(ctx, userID, &request.MakePaymentRequest{
			BookingID:   bookingID.String(),
			PaymentMode: "CARD",
		})

		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestPaymentService_RetryPayment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bookingID := uuid.New()

	ownedBookingRepo := &mocks.MockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return bookingFixture(bookingID, userID, uuid.New()), nil
		},
	}

	t.Run("failed payment is retried in place", func(t *testing.T) {
		payment := &entity.Payment{
			Base:        entity.Base{ID: uuid.New()},
			BookingID:   bookingID,
			PaymentMode: "CARD",
			Amount:      500,
			Status:      entity.PaymentStatusFailed,
		}
		var updated *entity.Payment
		paymentRepo := &mocks.MockPaymentRepo{
			FindByBookingIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
				return payment, nil
			},
			UpdateRetryFunc: func(ctx context.Context, p *entity.Payment) error {
				updated = p
				return nil
			},
		}
		svc := NewPaymentService(&repository.Repository{Booking: ownedBookingRepo, Payment: paymentRepo}, zap.NewNop())

		resp, err := svc.RetryPayment(ctx, userID, bookingID, &request.RetryPaymentRequest{PaymentMode: "UPI"})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, payment.ID, updated.ID)
		assert.Equal(t, "UPI", updated.PaymentMode)
		assert.Equal(t, entity.PaymentStatusPaid, updated.Status)
		assert.WithinDuration(t, time.Now(), updated.PaidAt, time.Minute)
		assert.Equal(t, 500.0, resp.Amount)
	})

	t.Run("retry requires a failed payment", func(t *testing.T) {
		paymentRepo := &mocks.MockPaymentRepo{
			FindByBookingIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
				return &entity.Payment{
					Base:      entity.Base{ID: uuid.New()},
					BookingID: bookingID,
					Status:    entity.PaymentStatusPaid,
				}, nil
			},
		}
		svc := NewPaymentService(&repository.Repository{Booking: ownedBookingRepo, Payment: paymentRepo}, zap.NewNop())

		_, err := svc.RetryPayment(ctx, userID, bookingID, &request.RetryPaymentRequest{PaymentMode: "UPI"})

		assert.ErrorIs(t, err, entity.ErrInvalidState)
	})

	t.Run("no payment to retry", func(t *testing.T) {
		paymentRepo := &mocks.MockPaymentRepo{
			FindByBookingIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
				return nil, nil
			},
		}
		svc := NewPaymentService(&repository.Repository{Booking: ownedBookingRepo, Payment: paymentRepo}, zap.NewNop())

		_, err := svc.RetryPayment(ctx, userID, bookingID, &request.RetryPaymentRequest{PaymentMode: "UPI"})

		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("ownership is checked before the payment lookup", func(t *testing.T) {
		bookingRepo := &mocks.MockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return bookingFixture(bookingID, uuid.New(), uuid.New()), nil
			},
		}
		svc := NewPaymentService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

		_, err := svc.RetryPayment(ctx, userID, bookingID, &request.RetryPaymentRequest{PaymentMode: "UPI"})

		assert.ErrorIs(t, err, entity.ErrForbidden)
	})
}

func TestPaymentService_GetPaymentByBookingID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	bookingID := uuid.New()

	bookingRepo := &mocks.MockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return bookingFixture(bookingID, ownerID, uuid.New()), nil
		},
	}
	paymentRepo := &mocks.MockPaymentRepo{
		FindDetailByBookingIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.PaymentDetail, error) {
			return &entity.PaymentDetail{
				PaymentID:   uuid.New(),
				BookingID:   bookingID,
				PaymentMode: "CARD",
				Amount:      300,
				Status:      entity.PaymentStatusPaid,
				MovieTitle:  "Dune",
			}, nil
		},
	}
	svc := NewPaymentService(&repository.Repository{Booking: bookingRepo, Payment: paymentRepo}, zap.NewNop())

	t.Run("owner reads the payment detail", func(t *testing.T) {
		resp, err := svc.GetPaymentByBookingID(ctx, ownerID, string(entity.RoleCustomer), bookingID)

		require.NoError(t, err)
		assert.Equal(t, "Dune", resp.MovieTitle)
		assert.Equal(t, 300.0, resp.Amount)
	})

	t.Run("other customers are rejected", func(t *testing.T) {
		_, err := svc.GetPaymentByBookingID(ctx, uuid.New(), string(entity.RoleCustomer), bookingID)

		assert.ErrorIs(t, err, entity.ErrForbidden)
	})
}
