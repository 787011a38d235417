package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/receipt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReceiptService interface {
	// GetReceiptPDF renders the booking receipt as a PDF document. Only
	// the booking's owner or an admin may fetch it.
	GetReceiptPDF(ctx context.Context, callerID uuid.UUID, role string, bookingID uuid.UUID) ([]byte, error)
}

type receiptService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReceiptService(
	repo *repository.Repository,
	log *zap.Logger,
) ReceiptService {
	return &receiptService{
		repo: repo,
		log:  log.With(zap.String("service", "receipt")),
	}
}

func (s *receiptService) GetReceiptPDF(ctx context.Context, callerID uuid.UUID, role string, bookingID uuid.UUID) ([]byte, error) {
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

	data, err := s.repo.Booking.FindReceiptData(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	pdf, err := receipt.RenderPDF(data)
	if err != nil {
		s.log.Error("Failed to render receipt",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, err
	}

	s.log.Info("Receipt rendered",
		zap.String("booking_id", bookingID.String()),
		zap.Int("bytes", len(pdf)),
	)

	return pdf, nil
}
