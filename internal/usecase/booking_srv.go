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

type BookingService interface {
	// BookSeats reserves seats by ID without settling payment.
	BookSeats(ctx context.Context, userID uuid.UUID, req *request.BookSeatsRequest) (*response.BookingResponse, error)

	// BookShow reserves seats by seat number and records a successful
	// payment in the same unit of work.
	BookShow(ctx context.Context, userID uuid.UUID, req *request.BookShowRequest) (*response.BookingResponse, error)

	// CancelBooking releases the booking's seats, removes the booking and
	// returns a cancellation receipt. Only the booking's owner may cancel.
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) (*response.CancellationReceipt, error)

	// UpdateBookingStatus is the admin override. Setting CANCELLED also
	// frees the seats while keeping the booking row for audit.
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status string) (*response.BookingResponse, error)

	GetBookingByID(ctx context.Context, callerID uuid.UUID, role string, bookingID uuid.UUID) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetUserBookingDetails(ctx context.Context, userID uuid.UUID) ([]response.BookingDetailResponse, error)
	GetBookedSeatNumbers(ctx context.Context, showID uuid.UUID) ([]string, error)

	GetBookingsByShow(ctx context.Context, showID uuid.UUID) ([]response.BookingDetailResponse, error)
	GetBookingsByDateRange(ctx context.Context, from, to time.Time) ([]response.BookingDetailResponse, error)
	GetAllBookings(ctx context.Context) ([]response.BookingDetailResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) BookSeats(ctx context.Context, userID uuid.UUID, req *request.BookSeatsRequest) (*response.BookingResponse, error) {
	showID, err := uuid.Parse(req.ShowID)
	if err != nil {
		return nil, fmt.Errorf("invalid show id: %w", entity.ErrInvalidArgument)
	}
	if len(req.SeatIDs) == 0 {
		return nil, fmt.Errorf("empty seat selection: %w", entity.ErrInvalidArgument)
	}

	seatIDs := make([]uuid.UUID, len(req.SeatIDs))
	seen := make(map[uuid.UUID]bool, len(req.SeatIDs))
	for i, raw := range req.SeatIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid seat id %q: %w", raw, entity.ErrInvalidArgument)
		}
		// A duplicate would lock fewer rows than requested downstream.
		if seen[id] {
			return nil, fmt.Errorf("duplicate seat id %q: %w", raw, entity.ErrInvalidArgument)
		}
		seen[id] = true
		seatIDs[i] = id
	}

	if err := s.checkShow(ctx, showID); err != nil {
		return nil, err
	}

	booking := s.newBooking(userID, showID, "")
	seats, err := s.repo.Allocation.ReserveByIDs(ctx, booking, seatIDs, nil)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("show_id", showID.String()),
		zap.Int("seats", len(seats)),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	resp := response.BookingToResponse(booking, seatNumbers(seats))
	return &resp, nil
}

func (s *bookingService) BookShow(ctx context.Context, userID uuid.UUID, req *request.BookShowRequest) (*response.BookingResponse, error) {
	showID, err := uuid.Parse(req.ShowID)
	if err != nil {
		return nil, fmt.Errorf("invalid show id: %w", entity.ErrInvalidArgument)
	}
	if len(req.SeatNos) == 0 {
		return nil, fmt.Errorf("empty seat selection: %w", entity.ErrInvalidArgument)
	}
	seen := make(map[string]bool, len(req.SeatNos))
	for _, no := range req.SeatNos {
		if seen[no] {
			return nil, fmt.Errorf("duplicate seat number %s: %w", no, entity.ErrInvalidArgument)
		}
		seen[no] = true
	}

	if err := s.checkShow(ctx, showID); err != nil {
		return nil, err
	}

	booking := s.newBooking(userID, showID, req.PaymentMode)

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PaymentMode: req.PaymentMode,
		Status:      entity.PaymentStatusSuccess,
		PaidAt:      now,
	}

	seats, err := s.repo.Allocation.Reserve(ctx, booking, req.SeatNos, payment)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created with payment",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("show_id", showID.String()),
		zap.Int("seats", len(seats)),
		zap.Float64("total_amount", booking.TotalAmount),
		zap.String("payment_mode", req.PaymentMode),
	)

	resp := response.BookingToResponse(booking, seatNumbers(seats))
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) (*response.CancellationReceipt, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrNotFound)
	}
	if booking.UserID != userID {
		s.log.Warn("Cancel attempt on foreign booking",
			zap.String("booking_id", bookingID.String()),
			zap.String("owner_id", booking.UserID.String()),
			zap.String("caller_id", userID.String()),
		)
		return nil, fmt.Errorf("booking belongs to another user: %w", entity.ErrForbidden)
	}

	seatNos, err := s.repo.Allocation.Release(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("user_id", userID.String()),
		zap.Strings("seats", seatNos),
	)

	return &response.CancellationReceipt{
		BookingID:   bookingID.String(),
		Message:     "Booking cancelled successfully",
		Timestamp:   time.Now(),
		SeatNumbers: seatNos,
	}, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status string) (*response.BookingResponse, error) {
	if status == "" {
		return nil, fmt.Errorf("empty status: %w", entity.ErrInvalidArgument)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrNotFound)
	}

	newStatus := entity.BookingStatus(status)

	// Cancelling via the admin override frees the seats but keeps the row.
	if newStatus == entity.BookingStatusCancelled && booking.Active() {
		if _, err := s.repo.Allocation.ReleaseSeats(ctx, bookingID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}
	booking.Status = newStatus

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID.String()),
		zap.String("status", status),
	)

	seats, err := s.repo.Seat.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Warn("Failed to load seats for status response",
			zap.Error(err), zap.String("booking_id", bookingID.String()))
	}

	resp := response.BookingToResponse(booking, seatNumbers(seats))
	return &resp, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, callerID uuid.UUID, role string, bookingID uuid.UUID) (*response.BookingResponse, error) {
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

	seats, err := s.repo.Seat.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking seats: %w", err)
	}

	resp := response.BookingToResponse(booking, seatNumbers(seats))
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		seats, err := s.repo.Seat.FindByBookingID(ctx, booking.ID)
		if err != nil {
			s.log.Warn("Failed to load seats for booking",
				zap.Error(err), zap.String("booking_id", booking.ID.String()))
		}
		bookingResponses[i] = response.BookingToResponse(booking, seatNumbers(seats))
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetUserBookingDetails(ctx context.Context, userID uuid.UUID) ([]response.BookingDetailResponse, error) {
	details, err := s.repo.Booking.FindDetailsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking details: %w", err)
	}

	return response.BookingDetailsToResponse(details), nil
}

func (s *bookingService) GetBookedSeatNumbers(ctx context.Context, showID uuid.UUID) ([]string, error) {
	if err := s.checkShow(ctx, showID); err != nil {
		return nil, err
	}

	seatIDs, err := s.repo.BookingSeat.FindBookedSeatIDsByShow(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("get booked seat ids: %w", err)
	}

	seatNos := make([]string, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		seat, err := s.repo.Seat.FindByID(ctx, seatID)
		if err != nil {
			return nil, fmt.Errorf("get seat %s: %w", seatID.String(), err)
		}
		if seat != nil {
			seatNos = append(seatNos, seat.SeatNo)
		}
	}

	return seatNos, nil
}

func (s *bookingService) GetBookingsByShow(ctx context.Context, showID uuid.UUID) ([]response.BookingDetailResponse, error) {
	details, err := s.repo.Booking.FindDetailsByShowID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("get bookings by show: %w", err)
	}

	return response.BookingDetailsToResponse(details), nil
}

func (s *bookingService) GetBookingsByDateRange(ctx context.Context, from, to time.Time) ([]response.BookingDetailResponse, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("date range end before start: %w", entity.ErrInvalidArgument)
	}

	details, err := s.repo.Booking.FindDetailsByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get bookings by date range: %w", err)
	}

	return response.BookingDetailsToResponse(details), nil
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]response.BookingDetailResponse, error) {
	details, err := s.repo.Booking.FindAllDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all bookings: %w", err)
	}

	return response.BookingDetailsToResponse(details), nil
}

func (s *bookingService) checkShow(ctx context.Context, showID uuid.UUID) error {
	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return fmt.Errorf("check show: %w", err)
	}
	if show == nil {
		return fmt.Errorf("show %s: %w", showID.String(), entity.ErrNotFound)
	}
	return nil
}

func (s *bookingService) newBooking(userID, showID uuid.UUID, paymentMode string) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		ShowID:      showID,
		Status:      entity.BookingStatusConfirmed,
		PaymentMode: paymentMode,
		BookingTime: now,
	}
}

func seatNumbers(seats []*entity.Seat) []string {
	nos := make([]string, 0, len(seats))
	for _, seat := range seats {
		nos = append(nos, seat.SeatNo)
	}
	return nos
}
