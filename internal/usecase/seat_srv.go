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

type SeatService interface {
	AddSeats(ctx context.Context, req *request.AddSeatsRequest) ([]response.SeatResponse, error)
	GetSeatsByShow(ctx context.Context, showID uuid.UUID) ([]response.SeatResponse, error)
	GetAvailableSeats(ctx context.Context, showID uuid.UUID) ([]response.SeatResponse, error)
	UpdateSeat(ctx context.Context, seatID uuid.UUID, req *request.UpdateSeatRequest) (*response.SeatResponse, error)
	DeleteSeat(ctx context.Context, seatID uuid.UUID) error
}

type seatService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeatService(
	repo *repository.Repository,
	log *zap.Logger,
) SeatService {
	return &seatService{
		repo: repo,
		log:  log.With(zap.String("service", "seat")),
	}
}

func (s *seatService) AddSeats(ctx context.Context, req *request.AddSeatsRequest) ([]response.SeatResponse, error) {
	showID, err := uuid.Parse(req.ShowID)
	if err != nil {
		return nil, fmt.Errorf("invalid show id: %w", entity.ErrInvalidArgument)
	}

	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("check show: %w", err)
	}
	if show == nil {
		return nil, fmt.Errorf("show %s: %w", showID.String(), entity.ErrNotFound)
	}

	// Reject duplicate seat numbers within the batch before hitting the store
	seen := make(map[string]bool, len(req.Seats))
	for _, in := range req.Seats {
		if seen[in.SeatNo] {
			return nil, fmt.Errorf("duplicate seat number %s: %w", in.SeatNo, entity.ErrInvalidArgument)
		}
		seen[in.SeatNo] = true
	}

	now := time.Now()
	seats := make([]*entity.Seat, len(req.Seats))
	for i, in := range req.Seats {
		seats[i] = &entity.Seat{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			ShowID:   showID,
			SeatNo:   in.SeatNo,
			Price:    in.Price,
			IsBooked: false,
		}
	}

	if err := s.repo.Seat.CreateBatch(ctx, seats); err != nil {
		s.log.Error("Failed to add seats",
			zap.Error(err),
			zap.String("show_id", showID.String()),
			zap.Int("count", len(seats)),
		)
		return nil, fmt.Errorf("add seats: %w", err)
	}

	s.log.Info("Seats added",
		zap.String("show_id", showID.String()),
		zap.Int("count", len(seats)),
	)

	return response.SeatsToResponse(seats), nil
}

func (s *seatService) GetSeatsByShow(ctx context.Context, showID uuid.UUID) ([]response.SeatResponse, error) {
	seats, err := s.repo.Seat.FindByShowID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("get seats: %w", err)
	}

	return response.SeatsToResponse(seats), nil
}

func (s *seatService) GetAvailableSeats(ctx context.Context, showID uuid.UUID) ([]response.SeatResponse, error) {
	seats, err := s.repo.Seat.FindAvailableByShowID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("get available seats: %w", err)
	}

	return response.SeatsToResponse(seats), nil
}

func (s *seatService) UpdateSeat(ctx context.Context, seatID uuid.UUID, req *request.UpdateSeatRequest) (*response.SeatResponse, error) {
	seat, err := s.repo.Seat.FindByID(ctx, seatID)
	if err != nil {
		return nil, fmt.Errorf("get seat: %w", err)
	}
	if seat == nil {
		return nil, fmt.Errorf("seat %s: %w", seatID.String(), entity.ErrNotFound)
	}

	// A held seat's identity and price are frozen until it is released
	if seat.IsBooked {
		return nil, fmt.Errorf("seat %s is booked: %w", seat.SeatNo, entity.ErrInvalidState)
	}

	seat.SeatNo = req.SeatNo
	seat.Price = req.Price
	seat.UpdatedAt = time.Now()

	if err := s.repo.Seat.Update(ctx, seat); err != nil {
		return nil, fmt.Errorf("update seat: %w", err)
	}

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) DeleteSeat(ctx context.Context, seatID uuid.UUID) error {
	seat, err := s.repo.Seat.FindByID(ctx, seatID)
	if err != nil {
		return fmt.Errorf("get seat: %w", err)
	}
	if seat == nil {
		return fmt.Errorf("seat %s: %w", seatID.String(), entity.ErrNotFound)
	}

	if seat.IsBooked {
		return fmt.Errorf("seat %s is booked: %w", seat.SeatNo, entity.ErrInvalidState)
	}

	return s.repo.Seat.Delete(ctx, seatID)
}
