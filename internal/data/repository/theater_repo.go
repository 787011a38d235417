package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TheaterRepository interface {
	Create(ctx context.Context, theater *entity.Theater) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Theater, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Theater, error)
	FindByCity(ctx context.Context, city string) ([]*entity.Theater, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, theater *entity.Theater) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type theaterRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTheaterRepository(db database.PgxIface, log *zap.Logger) TheaterRepository {
	return &theaterRepository{
		db:  db,
		log: log.With(zap.String("repository", "theater")),
	}
}

func (r *theaterRepository) Create(ctx context.Context, theater *entity.Theater) error {
	query := `
		INSERT INTO theaters (id, name, city, address, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		theater.ID,
		theater.Name,
		theater.City,
		theater.Address,
		theater.Capacity,
		theater.CreatedAt,
		theater.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create theater",
			zap.Error(err),
			zap.String("name", theater.Name),
		)
		return fmt.Errorf("create theater %s: %w", theater.Name, err)
	}

	return nil
}

func (r *theaterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Theater, error) {
	query := `
		SELECT id, name, city, address, capacity, created_at, updated_at, deleted_at
		FROM theaters
		WHERE id = $1 AND deleted_at IS NULL
	`

	var theater entity.Theater
	err := r.db.QueryRow(ctx, query, id).Scan(
		&theater.ID,
		&theater.Name,
		&theater.City,
		&theater.Address,
		&theater.Capacity,
		&theater.CreatedAt,
		&theater.UpdatedAt,
		&theater.DeletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find theater by ID",
			zap.Error(err),
			zap.String("theater_id", id.String()),
		)
		return nil, fmt.Errorf("find theater by ID %s: %w", id.String(), err)
	}

	return &theater, nil
}

func (r *theaterRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Theater, error) {
	query := `
		SELECT id, name, city, address, capacity, created_at, updated_at
		FROM theaters
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	return r.queryMany(ctx, query, limit, offset)
}

func (r *theaterRepository) FindByCity(ctx context.Context, city string) ([]*entity.Theater, error) {
	query := `
		SELECT id, name, city, address, capacity, created_at, updated_at
		FROM theaters
		WHERE LOWER(city) = LOWER($1) AND deleted_at IS NULL
		ORDER BY name
	`

	return r.queryMany(ctx, query, city)
}

func (r *theaterRepository) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Theater, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find theaters", zap.Error(err))
		return nil, fmt.Errorf("find theaters: %w", err)
	}
	defer rows.Close()

	var theaters []*entity.Theater
	for rows.Next() {
		var theater entity.Theater
		err := rows.Scan(
			&theater.ID,
			&theater.Name,
			&theater.City,
			&theater.Address,
			&theater.Capacity,
			&theater.CreatedAt,
			&theater.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan theater row", zap.Error(err))
			return nil, fmt.Errorf("scan theater row: %w", err)
		}
		theaters = append(theaters, &theater)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read theater rows: %w", err)
	}

	return theaters, nil
}

func (r *theaterRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM theaters WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count theaters", zap.Error(err))
		return 0, fmt.Errorf("count theaters: %w", err)
	}

	return count, nil
}

func (r *theaterRepository) Update(ctx context.Context, theater *entity.Theater) error {
	query := `
		UPDATE theaters
		SET name = $2, city = $3, address = $4, capacity = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		theater.ID,
		theater.Name,
		theater.City,
		theater.Address,
		theater.Capacity,
		theater.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update theater",
			zap.Error(err),
			zap.String("theater_id", theater.ID.String()),
		)
		return fmt.Errorf("update theater %s: %w", theater.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("theater %s: %w", theater.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *theaterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE theaters SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete theater",
			zap.Error(err),
			zap.String("theater_id", id.String()),
		)
		return fmt.Errorf("delete theater %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("theater %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Theater soft deleted", zap.String("theater_id", id.String()))
	return nil
}
