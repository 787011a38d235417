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

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	CreateBatch(ctx context.Context, seats []*entity.Seat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Seat, error)
	FindAvailableByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Seat, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Seat, error)
	Update(ctx context.Context, seat *entity.Seat) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	query := `
		INSERT INTO seats (id, show_id, seat_no, price, is_booked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.ShowID,
		seat.SeatNo,
		seat.Price,
		seat.IsBooked,
		seat.CreatedAt,
		seat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.String("show_id", seat.ShowID.String()),
			zap.String("seat_no", seat.SeatNo),
		)
		return fmt.Errorf("create seat %s: %w", seat.SeatNo, err)
	}

	return nil
}

func (r *seatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	query := `INSERT INTO seats (id, show_id, seat_no, price, is_booked, created_at, updated_at) VALUES `
	args := []interface{}{}

	for i, seat := range seats {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			i*7+1, i*7+2, i*7+3, i*7+4, i*7+5, i*7+6, i*7+7)

		args = append(args,
			seat.ID,
			seat.ShowID,
			seat.SeatNo,
			seat.Price,
			seat.IsBooked,
			seat.CreatedAt,
			seat.UpdatedAt,
		)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch seats",
			zap.Error(err),
			zap.Int("count", len(seats)),
		)
		return fmt.Errorf("create batch seats: %w", err)
	}

	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	query := `
		SELECT id, show_id, seat_no, price, is_booked, created_at, updated_at, deleted_at
		FROM seats
		WHERE id = $1 AND deleted_at IS NULL
	`

	var seat entity.Seat
	err := r.db.QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.ShowID,
		&seat.SeatNo,
		&seat.Price,
		&seat.IsBooked,
		&seat.CreatedAt,
		&seat.UpdatedAt,
		&seat.DeletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return nil, fmt.Errorf("find seat by ID %s: %w", id.String(), err)
	}

	return &seat, nil
}

func (r *seatRepository) FindByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, show_id, seat_no, price, is_booked, created_at, updated_at
		FROM seats
		WHERE show_id = $1 AND deleted_at IS NULL
		ORDER BY seat_no
	`

	return r.querySeats(ctx, query, showID)
}

func (r *seatRepository) FindAvailableByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, show_id, seat_no, price, is_booked, created_at, updated_at
		FROM seats
		WHERE show_id = $1 AND is_booked = false AND deleted_at IS NULL
		ORDER BY seat_no
	`

	return r.querySeats(ctx, query, showID)
}

func (r *seatRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT s.id, s.show_id, s.seat_no, s.price, s.is_booked, s.created_at, s.updated_at
		FROM seats s
		JOIN booking_seats bs ON bs.seat_id = s.id
		WHERE bs.booking_id = $1
		ORDER BY s.seat_no
	`

	return r.querySeats(ctx, query, bookingID)
}

func (r *seatRepository) querySeats(ctx context.Context, query string, args ...any) ([]*entity.Seat, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query seats", zap.Error(err))
		return nil, fmt.Errorf("query seats: %w", err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.ShowID,
			&seat.SeatNo,
			&seat.Price,
			&seat.IsBooked,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read seat rows: %w", err)
	}

	return seats, nil
}

func (r *seatRepository) Update(ctx context.Context, seat *entity.Seat) error {
	query := `
		UPDATE seats
		SET seat_no = $2, price = $3, is_booked = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.SeatNo,
		seat.Price,
		seat.IsBooked,
		seat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update seat",
			zap.Error(err),
			zap.String("seat_id", seat.ID.String()),
		)
		return fmt.Errorf("update seat %s: %w", seat.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s: %w", seat.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *seatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE seats SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete seat",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return fmt.Errorf("delete seat %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Seat soft deleted", zap.String("seat_id", id.String()))
	return nil
}
