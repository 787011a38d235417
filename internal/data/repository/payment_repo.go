package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
	UpdateRetry(ctx context.Context, payment *entity.Payment) error

	FindDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentDetail, error)
	FindDetailByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.PaymentDetail, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, payment_mode, amount, status, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.PaymentMode,
		payment.Amount,
		payment.Status,
		payment.PaidAt,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		// payments.booking_id is unique; a violation means a concurrent
		// payment won the race after the caller's existence check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("booking %s already has a payment: %w",
				payment.BookingID.String(), entity.ErrInvalidState)
		}

		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return fmt.Errorf("create payment for booking %s: %w", payment.BookingID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, booking_id, payment_mode, amount, status, paid_at, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	return r.queryOne(ctx, query, id)
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, booking_id, payment_mode, amount, status, paid_at, created_at, updated_at
		FROM payments
		WHERE booking_id = $1
	`

	return r.queryOne(ctx, query, bookingID)
}

func (r *paymentRepository) queryOne(ctx context.Context, query string, arg any) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.PaymentMode,
		&payment.Amount,
		&payment.Status,
		&payment.PaidAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment", zap.Error(err))
		return nil, fmt.Errorf("find payment: %w", err)
	}

	return &payment, nil
}

// UpdateRetry mutates the payment's mode, time and status in place. The
// status guard keeps a concurrent successful retry from being overwritten.
func (r *paymentRepository) UpdateRetry(ctx context.Context, payment *entity.Payment) error {
	query := `
		UPDATE payments
		SET payment_mode = $2, status = $3, paid_at = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
	`

	result, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.PaymentMode,
		payment.Status,
		payment.PaidAt,
		entity.PaymentStatusFailed,
	)

	if err != nil {
		r.log.Error("Failed to update payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return fmt.Errorf("update payment %s: %w", payment.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s is not in a retryable state: %w",
			payment.ID.String(), entity.ErrInvalidState)
	}

	return nil
}

const paymentDetailQuery = `
	SELECT
		p.id,
		p.booking_id,
		p.payment_mode,
		p.amount,
		p.status,
		p.paid_at,
		m.title,
		t.name,
		sh.start_time
	FROM payments p
	JOIN bookings b ON p.booking_id = b.id
	JOIN shows sh ON b.show_id = sh.id
	JOIN movies m ON sh.movie_id = m.id
	JOIN theaters t ON sh.theater_id = t.id
`

func (r *paymentRepository) FindDetailsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentDetail, error) {
	query := paymentDetailQuery + ` WHERE b.user_id = $1 ORDER BY p.paid_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to query payment details",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("query payment details for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	details := make([]*entity.PaymentDetail, 0)
	for rows.Next() {
		var d entity.PaymentDetail
		err := rows.Scan(
			&d.PaymentID,
			&d.BookingID,
			&d.PaymentMode,
			&d.Amount,
			&d.Status,
			&d.PaidAt,
			&d.MovieTitle,
			&d.TheaterName,
			&d.ShowTime,
		)
		if err != nil {
			r.log.Error("Failed to scan payment detail row", zap.Error(err))
			return nil, fmt.Errorf("scan payment detail row: %w", err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read payment detail rows: %w", err)
	}

	return details, nil
}

func (r *paymentRepository) FindDetailByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.PaymentDetail, error) {
	query := paymentDetailQuery + ` WHERE p.booking_id = $1`

	var d entity.PaymentDetail
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&d.PaymentID,
		&d.BookingID,
		&d.PaymentMode,
		&d.Amount,
		&d.Status,
		&d.PaidAt,
		&d.MovieTitle,
		&d.TheaterName,
		&d.ShowTime,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment detail by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payment detail by booking ID %s: %w", bookingID.String(), err)
	}

	return &d, nil
}
