package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingSeatRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingSeat, error)
	FindBookedSeatIDsByShow(ctx context.Context, showID uuid.UUID) ([]uuid.UUID, error)
}

type bookingSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingSeatRepository(db database.PgxIface, log *zap.Logger) BookingSeatRepository {
	return &bookingSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_seat")),
	}
}

func (r *bookingSeatRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingSeat, error) {
	query := `
		SELECT id, booking_id, seat_id, show_id, created_at
		FROM booking_seats
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking seats by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find booking seats by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var bookingSeats []*entity.BookingSeat
	for rows.Next() {
		var bs entity.BookingSeat
		err := rows.Scan(
			&bs.ID,
			&bs.BookingID,
			&bs.SeatID,
			&bs.ShowID,
			&bs.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking seat row", zap.Error(err))
			return nil, fmt.Errorf("scan booking seat row: %w", err)
		}
		bookingSeats = append(bookingSeats, &bs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read booking seat rows: %w", err)
	}

	return bookingSeats, nil
}

func (r *bookingSeatRepository) FindBookedSeatIDsByShow(ctx context.Context, showID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT bs.seat_id
		FROM booking_seats bs
		INNER JOIN bookings b ON bs.booking_id = b.id
		WHERE bs.show_id = $1 AND b.status != $2
	`

	rows, err := r.db.Query(ctx, query, showID, entity.BookingStatusCancelled)
	if err != nil {
		r.log.Error("Failed to find booked seats by show",
			zap.Error(err),
			zap.String("show_id", showID.String()),
		)
		return nil, fmt.Errorf("find booked seats by show %s: %w", showID.String(), err)
	}
	defer rows.Close()

	var seatIDs []uuid.UUID
	for rows.Next() {
		var seatID uuid.UUID
		if err := rows.Scan(&seatID); err != nil {
			r.log.Error("Failed to scan seat ID row", zap.Error(err))
			return nil, fmt.Errorf("scan seat ID row: %w", err)
		}
		seatIDs = append(seatIDs, seatID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read seat ID rows: %w", err)
	}

	return seatIDs, nil
}
