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

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// Read projections for the reporting endpoints. Seat numbers are
	// aggregated per booking; payment columns are null-safe.
	FindDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error)
	FindDetailsByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.BookingDetail, error)
	FindDetailsByDateRange(ctx context.Context, from, to time.Time) ([]*entity.BookingDetail, error)
	FindAllDetails(ctx context.Context) ([]*entity.BookingDetail, error)
	FindReceiptData(ctx context.Context, bookingID uuid.UUID) (*entity.ReceiptData, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, show_id, total_amount, status, payment_mode, booking_time, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowID,
		&booking.TotalAmount,
		&booking.Status,
		&booking.PaymentMode,
		&booking.BookingTime,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, user_id, show_id, total_amount, status, payment_mode, booking_time, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ShowID,
			&booking.TotalAmount,
			&booking.Status,
			&booking.PaymentMode,
			&booking.BookingTime,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrNotFound)
	}

	return nil
}

const bookingDetailQuery = `
	SELECT
		b.id,
		b.user_id,
		u.username,
		u.email,
		m.title,
		t.name,
		sh.start_time,
		b.status,
		b.booking_time,
		p.payment_mode,
		p.amount,
		COALESCE(array_agg(s.seat_no ORDER BY s.seat_no) FILTER (WHERE s.seat_no IS NOT NULL), '{}')
	FROM bookings b
	JOIN users u ON b.user_id = u.id
	JOIN shows sh ON b.show_id = sh.id
	JOIN movies m ON sh.movie_id = m.id
	JOIN theaters t ON sh.theater_id = t.id
	LEFT JOIN payments p ON p.booking_id = b.id
	LEFT JOIN booking_seats bs ON bs.booking_id = b.id
	LEFT JOIN seats s ON s.id = bs.seat_id
`

const bookingDetailGroupBy = `
	GROUP BY b.id, u.username, u.email, m.title, t.name, sh.start_time, p.payment_mode, p.amount
	ORDER BY b.booking_time DESC
`

func (r *bookingRepository) FindDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	query := bookingDetailQuery + ` WHERE b.user_id = $1 ` + bookingDetailGroupBy
	return r.queryDetails(ctx, query, userID)
}

func (r *bookingRepository) FindDetailsByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.BookingDetail, error) {
	query := bookingDetailQuery + ` WHERE b.show_id = $1 ` + bookingDetailGroupBy
	return r.queryDetails(ctx, query, showID)
}

func (r *bookingRepository) FindDetailsByDateRange(ctx context.Context, from, to time.Time) ([]*entity.BookingDetail, error) {
	query := bookingDetailQuery + ` WHERE b.booking_time BETWEEN $1 AND $2 ` + bookingDetailGroupBy
	return r.queryDetails(ctx, query, from, to)
}

func (r *bookingRepository) FindAllDetails(ctx context.Context) ([]*entity.BookingDetail, error) {
	return r.queryDetails(ctx, bookingDetailQuery+bookingDetailGroupBy)
}

func (r *bookingRepository) queryDetails(ctx context.Context, query string, args ...any) ([]*entity.BookingDetail, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query booking details", zap.Error(err))
		return nil, fmt.Errorf("query booking details: %w", err)
	}
	defer rows.Close()

	details := make([]*entity.BookingDetail, 0)
	for rows.Next() {
		var d entity.BookingDetail
		err := rows.Scan(
			&d.BookingID,
			&d.UserID,
			&d.UserName,
			&d.UserEmail,
			&d.MovieTitle,
			&d.TheaterName,
			&d.StartTime,
			&d.Status,
			&d.BookingTime,
			&d.PaymentMode,
			&d.TotalAmount,
			&d.SeatNos,
		)
		if err != nil {
			r.log.Error("Failed to scan booking detail row", zap.Error(err))
			return nil, fmt.Errorf("scan booking detail row: %w", err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read booking detail rows: %w", err)
	}

	return details, nil
}

func (r *bookingRepository) FindReceiptData(ctx context.Context, bookingID uuid.UUID) (*entity.ReceiptData, error) {
	query := bookingDetailQuery + ` WHERE b.id = $1 ` + bookingDetailGroupBy

	details, err := r.queryDetails(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrNotFound)
	}

	d := details[0]
	receipt := &entity.ReceiptData{
		BookingID:   d.BookingID,
		UserName:    d.UserName,
		MovieTitle:  d.MovieTitle,
		TheaterName: d.TheaterName,
		ShowTime:    d.StartTime,
		SeatNos:     d.SeatNos,
		PaymentMode: "N/A",
		BookingTime: d.BookingTime,
	}
	if d.PaymentMode != nil {
		receipt.PaymentMode = *d.PaymentMode
	}
	if d.TotalAmount != nil {
		receipt.TotalAmount = *d.TotalAmount
	}

	return receipt, nil
}
