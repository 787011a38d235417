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

// AllocationRepository is the only component that flips the is_booked flag on
// seats together with booking/payment rows. Every method runs as one database
// transaction: the seat rows are locked with SELECT ... FOR UPDATE so the
// "all seats free" check and the flip to booked are observed atomically by
// concurrent transactions. A request that loses the race gets
// entity.ErrSeatsUnavailable and nothing is committed.
type AllocationRepository interface {
	// Reserve locks the seats identified by seat number for booking.ShowID,
	// verifies all of them are free, flips them to booked and writes the
	// booking plus its booking_seats rows. When payment is non-nil it is
	// written in the same transaction (immediate settlement). TotalAmount on
	// the booking and Amount on the payment are computed from the locked seat
	// prices. The reserved seats are returned in seat-number order.
	Reserve(ctx context.Context, booking *entity.Booking, seatNos []string, payment *entity.Payment) ([]*entity.Seat, error)

	// ReserveByIDs behaves like Reserve but selects seats by their IDs.
	ReserveByIDs(ctx context.Context, booking *entity.Booking, seatIDs []uuid.UUID, payment *entity.Payment) ([]*entity.Seat, error)

	// Release frees every seat held by the booking, removes its payment and
	// booking_seats rows and deletes the booking itself. Returns the released
	// seat numbers.
	Release(ctx context.Context, bookingID uuid.UUID) ([]string, error)

	// ReleaseSeats frees the booking's seats and removes its booking_seats
	// rows but keeps the booking record (the caller owns the status change).
	ReleaseSeats(ctx context.Context, bookingID uuid.UUID) ([]string, error)
}

type allocationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAllocationRepository(db database.PgxIface, log *zap.Logger) AllocationRepository {
	return &allocationRepository{
		db:  db,
		log: log.With(zap.String("repository", "allocation")),
	}
}

func (r *allocationRepository) Reserve(ctx context.Context, booking *entity.Booking, seatNos []string, payment *entity.Payment) ([]*entity.Seat, error) {
	query := `
		SELECT id, show_id, seat_no, price, is_booked, created_at, updated_at
		FROM seats
		WHERE show_id = $1 AND seat_no = ANY($2) AND deleted_at IS NULL
		ORDER BY seat_no
		FOR UPDATE
	`
	return r.reserve(ctx, booking, payment, len(seatNos), query, booking.ShowID, seatNos)
}

func (r *allocationRepository) ReserveByIDs(ctx context.Context, booking *entity.Booking, seatIDs []uuid.UUID, payment *entity.Payment) ([]*entity.Seat, error) {
	query := `
		SELECT id, show_id, seat_no, price, is_booked, created_at, updated_at
		FROM seats
		WHERE show_id = $1 AND id = ANY($2) AND deleted_at IS NULL
		ORDER BY seat_no
		FOR UPDATE
	`
	return r.reserve(ctx, booking, payment, len(seatIDs), query, booking.ShowID, seatIDs)
}

func (r *allocationRepository) reserve(
	ctx context.Context,
	booking *entity.Booking,
	payment *entity.Payment,
	requested int,
	lockQuery string,
	lockArgs ...any,
) ([]*entity.Seat, error) {
	var seats []*entity.Seat

	err := runInTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, lockQuery, lockArgs...)
		if err != nil {
			return fmt.Errorf("lock seats for show %s: %w", booking.ShowID.String(), err)
		}

		seats = nil
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
				rows.Close()
				return fmt.Errorf("scan seat row: %w", err)
			}
			seats = append(seats, &seat)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("read seat rows: %w", err)
		}

		if len(seats) != requested {
			return fmt.Errorf("requested %d seats, found %d for show %s: %w",
				requested, len(seats), booking.ShowID.String(), entity.ErrNotFound)
		}

		// All-or-nothing: one held seat aborts the whole request.
		seatIDs := make([]uuid.UUID, len(seats))
		total := 0.0
		for i, seat := range seats {
			if seat.IsBooked {
				return fmt.Errorf("seat %s: %w", seat.SeatNo, entity.ErrSeatsUnavailable)
			}
			seatIDs[i] = seat.ID
			total += seat.Price
		}

		tag, err := tx.Exec(ctx,
			`UPDATE seats SET is_booked = true, updated_at = NOW() WHERE id = ANY($1) AND is_booked = false`,
			seatIDs,
		)
		if err != nil {
			return fmt.Errorf("mark seats booked: %w", err)
		}
		if tag.RowsAffected() != int64(len(seatIDs)) {
			// A concurrent transaction slipped in between; never grant twice.
			return entity.ErrSeatsUnavailable
		}

		booking.TotalAmount = total

		_, err = tx.Exec(ctx, `
			INSERT INTO bookings (id, user_id, show_id, total_amount, status, payment_mode, booking_time, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			booking.ID,
			booking.UserID,
			booking.ShowID,
			booking.TotalAmount,
			booking.Status,
			booking.PaymentMode,
			booking.BookingTime,
			booking.CreatedAt,
			booking.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		bsRows := make([][]any, 0, len(seats))
		for _, seat := range seats {
			bsRows = append(bsRows, []any{
				uuid.New(),
				booking.ID,
				seat.ID,
				booking.ShowID,
				booking.CreatedAt,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"id", "booking_id", "seat_id", "show_id", "created_at"},
			pgx.CopyFromRows(bsRows),
		)
		if err != nil {
			return fmt.Errorf("create booking seats: %w", err)
		}

		if payment != nil {
			payment.BookingID = booking.ID
			payment.Amount = total

			_, err = tx.Exec(ctx, `
				INSERT INTO payments (id, booking_id, payment_mode, amount, status, paid_at, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
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
				return fmt.Errorf("create payment: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		err = translateConflict(err)
		if !errors.Is(err, entity.ErrSeatsUnavailable) && !errors.Is(err, entity.ErrNotFound) {
			r.log.Error("Failed to reserve seats",
				zap.Error(err),
				zap.String("show_id", booking.ShowID.String()),
				zap.String("user_id", booking.UserID.String()),
			)
		}
		return nil, err
	}

	return seats, nil
}

func (r *allocationRepository) Release(ctx context.Context, bookingID uuid.UUID) ([]string, error) {
	var seatNos []string

	err := runInTx(ctx, r.db, func(tx pgx.Tx) error {
		released, err := releaseSeatsInTx(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		seatNos = released

		if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE booking_id = $1`, bookingID); err != nil {
			return fmt.Errorf("delete payment for booking %s: %w", bookingID.String(), err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
		if err != nil {
			return fmt.Errorf("delete booking %s: %w", bookingID.String(), err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrNotFound)
		}

		return nil
	})

	if err != nil {
		return nil, translateConflict(err)
	}

	r.log.Info("Booking released",
		zap.String("booking_id", bookingID.String()),
		zap.Strings("seats", seatNos),
	)

	return seatNos, nil
}

func (r *allocationRepository) ReleaseSeats(ctx context.Context, bookingID uuid.UUID) ([]string, error) {
	var seatNos []string

	err := runInTx(ctx, r.db, func(tx pgx.Tx) error {
		released, err := releaseSeatsInTx(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		seatNos = released
		return nil
	})

	if err != nil {
		return nil, translateConflict(err)
	}

	return seatNos, nil
}

// releaseSeatsInTx locks the booking's seats, flips them back to free and
// removes the booking_seats rows. Locking mirrors Reserve so a release and a
// concurrent reservation of the same seats serialize on the seat rows.
func releaseSeatsInTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) ([]string, error) {
	rows, err := tx.Query(ctx, `
		SELECT s.id, s.seat_no
		FROM seats s
		JOIN booking_seats bs ON bs.seat_id = s.id
		WHERE bs.booking_id = $1
		ORDER BY s.seat_no
		FOR UPDATE OF s`,
		bookingID,
	)
	if err != nil {
		return nil, fmt.Errorf("lock seats for booking %s: %w", bookingID.String(), err)
	}

	var seatIDs []uuid.UUID
	var seatNos []string
	for rows.Next() {
		var id uuid.UUID
		var no string
		if err := rows.Scan(&id, &no); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seatIDs = append(seatIDs, id)
		seatNos = append(seatNos, no)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read seat rows: %w", err)
	}

	if len(seatIDs) > 0 {
		_, err = tx.Exec(ctx,
			`UPDATE seats SET is_booked = false, updated_at = NOW() WHERE id = ANY($1)`,
			seatIDs,
		)
		if err != nil {
			return nil, fmt.Errorf("release seats: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM booking_seats WHERE booking_id = $1`, bookingID); err != nil {
		return nil, fmt.Errorf("delete booking seats for booking %s: %w", bookingID.String(), err)
	}

	return seatNos, nil
}

// translateConflict maps store-level concurrency failures onto the business
// taxonomy: a serialization failure, deadlock or unique-violation on the seat
// hold means somebody else got there first.
func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.UniqueViolation:
			return fmt.Errorf("%v: %w", err, entity.ErrSeatsUnavailable)
		}
	}
	return err
}
