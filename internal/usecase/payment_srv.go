package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	// MakePayment settles an unpaid booking. The amount is the booking's
	// total; a booking with an existing payment cannot be paid twice.
	MakePayment(ctx context.Context, userID uuid.UUID, req *request.MakePaymentRequest) (*response.PaymentResponse, error)

	// RetryPayment re-attempts a FAILED payment in place: mode, timestamp
	// and status change, no new payment row.
	RetryPayment(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID, req *request.RetryPaymentRequest) (*response.PaymentResponse, error)

	GetPaymentsForUser(ctx context.Context, userID uuid.UUID) ([]response.PaymentDetailResponse, error)
	GetPaymentByBookingID(ctx context.Context, callerID uuid.UUID, role string, bookingID uuid.UUID) (*response.PaymentDetailResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(
	repo *repository.Repository,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) MakePayment(ctx context.Context, userID uuid.UUID, req *request.MakePaymentRequest) (*response.PaymentResponse, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id: %w", entity.ErrInvalidArgument)
	}

	booking, err := s.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Active() {
		return nil, fmt.Errorf("booking %s is cancelled: %w", bookingID.String(), entity.ErrInvalidState)
	}

	existing, err := s.repo.Payment.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check existing payment: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("booking %s already has a payment: %w", bookingID.String(), entity.ErrInvalidState)
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:   bookingID,
		PaymentMode: req.PaymentMode,
		Amount:      booking.TotalAmount,
		Status:      entity.PaymentStatusPaid,
		PaidAt:      now,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", bookingID.String()),
		zap.Float64("amount", payment.Amount),
		zap.String("mode", payment.PaymentMode),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) RetryPayment(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID, req *request.RetryPaymentRequest) (*response.PaymentResponse, error) {
	if _, err := s.ownedBooking(ctx, userID, bookingID); err != nil {
		return nil, err
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment for booking %s: %w", bookingID.String(), entity.ErrNotFound)
	}

	if payment.Status != entity.PaymentStatusFailed {
		return nil, fmt.Errorf("payment %s has status %s, retry requires FAILED: %w",
			payment.ID.String(), payment.Status, entity.ErrInvalidState)
	}

	payment.PaymentMode = req.PaymentMode
	payment.Status = entity.PaymentStatusPaid
	payment.PaidAt = time.Now()

	// UpdateRetry re-checks FAILED in the store so a concurrent retry
	// cannot both succeed.
	if err := s.repo.Payment.UpdateRetry(ctx, payment); err != nil {
		return nil, err
	}

	s.log.Info("Payment retried",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", bookingID.String()),
		zap.String("mode", payment.PaymentMode),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) GetPaymentsForUser(ctx context.Context, userID uuid.UUID) ([]response.PaymentDetailResponse, error) {
	details, err := s.repo.Payment.FindDetailsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}

	return response.PaymentDetailsToResponse(details), nil
}

func (s *paymentService) GetPaymentByBookingID(ctx context.Context, callerID uuid.UUID, role string, bookingID uuid.UUID) (*response.PaymentDetailResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrNotFound)
	}
	if booking.UserID != callerID && role != string(entity.RoleAdmin) {
		return nil, fmt.Errorf("booking belongs to another user: %w", entity.ErrForbidden)
	}

	detail, err := s.repo.Payment.FindDetailByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get payment detail: %w", err)
	}
	if detail == nil {
		return nil, fmt.Errorf("payment for booking %s: %w", bookingID.String(), entity.ErrNotFound)
	}

	resp := response.PaymentDetailToResponse(detail)
	return &resp, nil
}

func (s *paymentService) ownedBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrNotFound)
	}
	if booking.UserID != userID {
		s.log.Warn("Payment attempt on foreign booking",
			zap.String("booking_id", bookingID.String()),
			zap.String("owner_id", booking.UserID.String()),
			zap.String("caller_id", userID.String()),
		)
		return nil, fmt.Errorf("booking belongs to another user: %w", entity.ErrForbidden)
	}

	return booking, nil
}
