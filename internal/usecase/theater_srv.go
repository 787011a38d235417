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

type TheaterService interface {
	GetTheaters(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TheaterResponse], error)
	GetTheaterByID(ctx context.Context, theaterID uuid.UUID) (*response.TheaterResponse, error)
	GetTheatersByCity(ctx context.Context, city string) ([]response.TheaterResponse, error)
	CreateTheater(ctx context.Context, req *request.CreateTheaterRequest) (*response.TheaterResponse, error)
	UpdateTheater(ctx context.Context, theaterID uuid.UUID, req *request.UpdateTheaterRequest) (*response.TheaterResponse, error)
	DeleteTheater(ctx context.Context, theaterID uuid.UUID) error
}

type theaterService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTheaterService(
	repo *repository.Repository,
	log *zap.Logger,
) TheaterService {
	return &theaterService{
		repo: repo,
		log:  log.With(zap.String("service", "theater")),
	}
}

func (s *theaterService) GetTheaters(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TheaterResponse], error) {
	theaters, err := s.repo.Theater.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get theaters", zap.Error(err))
		return nil, fmt.Errorf("get theaters: %w", err)
	}

	total, err := s.repo.Theater.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count theaters", zap.Error(err))
		return nil, fmt.Errorf("count theaters: %w", err)
	}

	return response.NewPaginatedResponse(response.TheatersToResponse(theaters), req.Page, req.PerPage, total), nil
}

func (s *theaterService) GetTheaterByID(ctx context.Context, theaterID uuid.UUID) (*response.TheaterResponse, error) {
	theater, err := s.repo.Theater.FindByID(ctx, theaterID)
	if err != nil {
		return nil, fmt.Errorf("get theater: %w", err)
	}
	if theater == nil {
		return nil, fmt.Errorf("theater %s: %w", theaterID.String(), entity.ErrNotFound)
	}

	resp := response.TheaterToResponse(theater)
	return &resp, nil
}

func (s *theaterService) GetTheatersByCity(ctx context.Context, city string) ([]response.TheaterResponse, error) {
	if city == "" {
		return nil, fmt.Errorf("city is required: %w", entity.ErrInvalidArgument)
	}

	theaters, err := s.repo.Theater.FindByCity(ctx, city)
	if err != nil {
		s.log.Error("Failed to get theaters by city", zap.Error(err), zap.String("city", city))
		return nil, fmt.Errorf("get theaters by city: %w", err)
	}

	return response.TheatersToResponse(theaters), nil
}

func (s *theaterService) CreateTheater(ctx context.Context, req *request.CreateTheaterRequest) (*response.TheaterResponse, error) {
	now := time.Now()
	theater := &entity.Theater{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		City:     req.City,
		Address:  req.Address,
		Capacity: req.Capacity,
	}

	if err := s.repo.Theater.Create(ctx, theater); err != nil {
		return nil, fmt.Errorf("create theater: %w", err)
	}

	s.log.Info("Theater created",
		zap.String("theater_id", theater.ID.String()),
		zap.String("name", theater.Name),
	)

	resp := response.TheaterToResponse(theater)
	return &resp, nil
}

func (s *theaterService) UpdateTheater(ctx context.Context, theaterID uuid.UUID, req *request.UpdateTheaterRequest) (*response.TheaterResponse, error) {
	theater, err := s.repo.Theater.FindByID(ctx, theaterID)
	if err != nil {
		return nil, fmt.Errorf("get theater: %w", err)
	}
	if theater == nil {
		return nil, fmt.Errorf("theater %s: %w", theaterID.String(), entity.ErrNotFound)
	}

	theater.Name = req.Name
	theater.City = req.City
	theater.Address = req.Address
	theater.Capacity = req.Capacity
	theater.UpdatedAt = time.Now()

	if err := s.repo.Theater.Update(ctx, theater); err != nil {
		return nil, fmt.Errorf("update theater: %w", err)
	}

	s.log.Info("Theater updated", zap.String("theater_id", theater.ID.String()))

	resp := response.TheaterToResponse(theater)
	return &resp, nil
}

func (s *theaterService) DeleteTheater(ctx context.Context, theaterID uuid.UUID) error {
	return s.repo.Theater.Delete(ctx, theaterID)
}
