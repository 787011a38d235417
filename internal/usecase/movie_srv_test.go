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

func TestMovieService_CreateMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a bare release date", func(t *testing.T) {
		var created *entity.Movie
		movieRepo := &mocks.MockMovieRepo{
			CreateFunc: func(ctx context.Context, movie *entity.Movie) error {
				created = movie
				return nil
			},
		}
		svc := NewMovieService(&repository.Repository{Movie: movieRepo}, zap.NewNop())

		resp, err := svc.CreateMovie(ctx, &request.CreateMovieRequest{
			Title:             "Inception",
			Genre:             "Sci-Fi",
			Language:          "English",
			DurationInMinutes: 148,
			ReleaseDate:       "2010-07-16",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC), created.ReleaseDate)
		assert.Equal(t, "Inception", resp.Title)
	})

	t.Run("accepts an RFC 3339 release date", func(t *testing.T) {
		movieRepo := &mocks.MockMovieRepo{
			CreateFunc: func(ctx context.Context, movie *entity.Movie) error {
				return nil
			},
		}
		svc := NewMovieService(&repository.Repository{Movie: movieRepo}, zap.NewNop())

		_, err := svc.CreateMovie(ctx, &request.CreateMovieRequest{
			Title:             "Dune",
			Genre:             "Sci-Fi",
			Language:          "English",
			DurationInMinutes: 155,
			ReleaseDate:       "2021-10-22T00:00:00Z",
		})

		require.NoError(t, err)
	})

	t.Run("rejects an unparseable date", func(t *testing.T) {
		svc := NewMovieService(&repository.Repository{}, zap.NewNop())

		_, err := svc.CreateMovie(ctx, &request.CreateMovieRequest{
			Title:             "Dune",
			Genre:             "Sci-Fi",
			Language:          "English",
			DurationInMinutes: 155,
			ReleaseDate:       "October 2021",
		})

		assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestMovieService_GetMovies(t *testing.T) {
	ctx := context.Background()

	movieRepo := &mocks.MockMovieRepo{
		FindAllFunc: func(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
			assert.Equal(t, 20, limit)
			assert.Equal(t, 20, offset)
			return []*entity.Movie{{Base: entity.Base{ID: uuid.New()}, Title: "Inception"}}, nil
		},
		CountAllFunc: func(ctx context.Context) (int64, error) {
			return 41, nil
		},
	}
	svc := NewMovieService(&repository.Repository{Movie: movieRepo}, zap.NewNop())

	resp, err := svc.GetMovies(ctx, &request.PaginatedRequest{Page: 2, PerPage: 20})

	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(41), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestMovieService_GetMovieByID(t *testing.T) {
	ctx := context.Background()

	movieRepo := &mocks.MockMovieRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
			return nil, nil
		},
	}
	svc := NewMovieService(&repository.Repository{Movie: movieRepo}, zap.NewNop())

	_, err := svc.GetMovieByID(ctx, uuid.New())

	assert.ErrorIs(t, err, entity.ErrNotFound)
}
