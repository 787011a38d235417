package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowRepository interface {
	Create(ctx context.Context, show *entity.Show) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Show, error)
	FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Show, error)
	FindUpcoming(ctx context.Context, after time.Time, limit, offset int) ([]*entity.Show, error)
	Update(ctx context.Context, show *entity.Show) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type showRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowRepository(db database.PgxIface, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

const showColumns = `id, movie_id, theater_id, start_time, end_time, price_per_seat, created_at, updated_at`

func (r *showRepository) Create(ctx context.Context, show *entity.Show) error {
	query := `
		INSERT INTO shows (id, movie_id, theater_id, start_time, end_time, price_per_seat, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		show.ID,
		show.MovieID,
		show.TheaterID,
		show.StartTime,
		show.EndTime,
		show.PricePerSeat,
		show.CreatedAt,
		show.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create show",
			zap.Error(err),
			zap.String("movie_id", show.MovieID.String()),
			zap.String("theater_id", show.TheaterID.String()),
		)
		return fmt.Errorf("create show: %w", err)
	}

	return nil
}

func (r *showRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows WHERE id = $1 AND deleted_at IS NULL`

	var show entity.Show
	err := r.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieID,
		&show.TheaterID,
		&show.StartTime,
		&show.EndTime,
		&show.PricePerSeat,
		&show.CreatedAt,
		&show.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find show by ID",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return nil, fmt.Errorf("find show by ID %s: %w", id.String(), err)
	}

	return &show, nil
}

func (r *showRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows WHERE movie_id = $1 AND deleted_at IS NULL ORDER BY start_time`
	return r.queryMany(ctx, query, movieID)
}

func (r *showRepository) FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows WHERE theater_id = $1 AND deleted_at IS NULL ORDER BY start_time`
	return r.queryMany(ctx, query, theaterID)
}

func (r *showRepository) FindUpcoming(ctx context.Context, after time.Time, limit, offset int) ([]*entity.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows WHERE start_time > $1 AND deleted_at IS NULL ORDER BY start_time LIMIT $2 OFFSET $3`
	return r.queryMany(ctx, query, after, limit, offset)
}

func (r *showRepository) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Show, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find shows", zap.Error(err))
		return nil, fmt.Errorf("find shows: %w", err)
	}
	defer rows.Close()

	var shows []*entity.Show
	for rows.Next() {
		var show entity.Show
		err := rows.Scan(
			&show.ID,
			&show.MovieID,
			&show.TheaterID,
			&show.StartTime,
			&show.EndTime,
			&show.PricePerSeat,
			&show.CreatedAt,
			&show.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan show row", zap.Error(err))
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, &show)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read show rows: %w", err)
	}

	return shows, nil
}

func (r *showRepository) Update(ctx context.Context, show *entity.Show) error {
	query := `
		UPDATE shows
		SET movie_id = $2, theater_id = $3, start_time = $4, end_time = $5, price_per_seat = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		show.ID,
		show.MovieID,
		show.TheaterID,
		show.StartTime,
		show.EndTime,
		show.PricePerSeat,
		show.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update show",
			zap.Error(err),
			zap.String("show_id", show.ID.String()),
		)
		return fmt.Errorf("update show %s: %w", show.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("show %s: %w", show.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *showRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE shows SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete show",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return fmt.Errorf("delete show %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("show %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Show soft deleted", zap.String("show_id", id.String()))
	return nil
}
