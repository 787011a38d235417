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

type ShowService interface {
	GetUpcomingShows(ctx context.Context, req *request.PaginatedRequest) ([]response.ShowResponse, error)
	GetShowByID(ctx context.Context, showID uuid.UUID) (*response.ShowResponse, error)
	GetShowsByMovie(ctx context.Context, movieID uuid.UUID) ([]response.ShowResponse, error)
	GetShowsByTheater(ctx context.Context, theaterID uuid.UUID) ([]response.ShowResponse, error)
	CreateShow(ctx context.Context, req *request.CreateShowRequest) (*response.ShowResponse, error)
	UpdateShow(ctx context.Context, showID uuid.UUID, req *request.UpdateShowRequest) (*response.ShowResponse, error)
	DeleteShow(ctx context.Context, showID uuid.UUID) error
}

type showService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowService(
	repo *repository.Repository,
	log *zap.Logger,
) ShowService {
	return &showService{
		repo: repo,
		log:  log.With(zap.String("service", "show")),
	}
}

func (s *showService) GetUpcomingShows(ctx context.Context, req *request.PaginatedRequest) ([]response.ShowResponse, error) {
	shows, err := s.repo.Show.FindUpcoming(ctx, time.Now(), req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get upcoming shows", zap.Error(err))
		return nil, fmt.Errorf("get upcoming shows: %w", err)
	}

	return response.ShowsToResponse(shows), nil
}

func (s *showService) GetShowByID(ctx context.Context, showID uuid.UUID) (*response.ShowResponse, error) {
	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("get show: %w", err)
	}
	if show == nil {
		return nil, fmt.Errorf("show %s: %w", showID.String(), entity.ErrNotFound)
	}

	resp := response.ShowToResponse(show)
	return &resp, nil
}

func (s *showService) GetShowsByMovie(ctx context.Context, movieID uuid.UUID) ([]response.ShowResponse, error) {
	shows, err := s.repo.Show.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get shows by movie: %w", err)
	}

	return response.ShowsToResponse(shows), nil
}

func (s *showService) GetShowsByTheater(ctx context.Context, theaterID uuid.UUID) ([]response.ShowResponse, error) {
	shows, err := s.repo.Show.FindByTheaterID(ctx, theaterID)
	if err != nil {
		return nil, fmt.Errorf("get shows by theater: %w", err)
	}

	return response.ShowsToResponse(shows), nil
}

func (s *showService) CreateShow(ctx context.Context, req *request.CreateShowRequest) (*response.ShowResponse, error) {
	movieID, theaterID, startTime, endTime, err := s.resolveShowInput(ctx, req.MovieID, req.TheaterID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	show := &entity.Show{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:      movieID,
		TheaterID:    theaterID,
		StartTime:    startTime,
		EndTime:      endTime,
		PricePerSeat: req.PricePerSeat,
	}

	if err := s.repo.Show.Create(ctx, show); err != nil {
		return nil, fmt.Errorf("create show: %w", err)
	}

	s.log.Info("Show created",
		zap.String("show_id", show.ID.String()),
		zap.String("movie_id", movieID.String()),
		zap.String("theater_id", theaterID.String()),
		zap.Time("start_time", startTime),
	)

	resp := response.ShowToResponse(show)
	return &resp, nil
}

func (s *showService) UpdateShow(ctx context.Context, showID uuid.UUID, req *request.UpdateShowRequest) (*response.ShowResponse, error) {
	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("get show: %w", err)
	}
	if show == nil {
		return nil, fmt.Errorf("show %s: %w", showID.String(), entity.ErrNotFound)
	}

	movieID, theaterID, startTime, endTime, err := s.resolveShowInput(ctx, req.MovieID, req.TheaterID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	show.MovieID = movieID
	show.TheaterID = theaterID
	show.StartTime = startTime
	show.EndTime = endTime
	show.PricePerSeat = req.PricePerSeat
	show.UpdatedAt = time.Now()

	if err := s.repo.Show.Update(ctx, show); err != nil {
		return nil, fmt.Errorf("update show: %w", err)
	}

	s.log.Info("Show updated", zap.String("show_id", show.ID.String()))

	resp := response.ShowToResponse(show)
	return &resp, nil
}

func (s *showService) DeleteShow(ctx context.Context, showID uuid.UUID) error {
	return s.repo.Show.Delete(ctx, showID)
}

// resolveShowInput parses the raw request fields and verifies the referenced
// movie and theater exist and the time window is ordered.
func (s *showService) resolveShowInput(ctx context.Context, rawMovieID, rawTheaterID, rawStart, rawEnd string) (uuid.UUID, uuid.UUID, time.Time, time.Time, error) {
	var zero time.Time

	movieID, err := uuid.Parse(rawMovieID)
	if err != nil {
		return uuid.Nil, uuid.Nil, zero, zero, fmt.Errorf("invalid movie id: %w", entity.ErrInvalidArgument)
	}
	theaterID, err := uuid.Parse(rawTheaterID)
	if err != nil {
		return uuid.Nil, uuid.Nil, zero, zero, fmt.Errorf("invalid theater id: %w", entity.ErrInvalidArgument)
	}

	startTime, err := time.Parse(time.RFC3339, rawStart)
	if err != nil {
		return uuid.Nil, uuid.Nil, zero, zero, fmt.Errorf("invalid start time %q: %w", rawStart, entity.ErrInvalidArgument)
	}
	endTime, err := time.Parse(time.RFC3339, rawEnd)
	if err != nil {
		return uuid.Nil, uuid.Nil, zero, zero, fmt.Errorf("invalid end time %q: %w", rawEnd, entity.ErrInvalidArgument)
	}
	if !endTime.After(startTime) {
		return uuid.Nil, uuid.Nil, zero, zero, fmt.Errorf("end time must be after start time: %w", entity.ErrInvalidArgument)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return uuid.Nil, uuid.Nil, zero, zero, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return uuid.Nil, uuid.Nil, zero, zero, fmt.Errorf("movie %s: %w", movieID.String(), entity.ErrNotFound)
	}

	theater, err := s.repo.Theater.FindByID(ctx, theaterID)
	if err != nil {
		return uuid.Nil, uuid.Nil, zero, zero, fmt.Errorf("check theater: %w", err)
	}
	if theater == nil {
		return uuid.Nil, uuid.Nil, zero, zero, fmt.Errorf("theater %s: %w", theaterID.String(), entity.ErrNotFound)
	}

	return movieID, theaterID, startTime, endTime, nil
}
