package repository

import (
	"context"
	"testing"
	"time"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bookingSeatColumns = []string{"id", "booking_id", "seat_id", "show_id", "created_at"}

func seatRows(seats ...*entity.Seat) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "show_id", "seat_no", "price", "is_booked", "created_at", "updated_at"})
	for _, s := range seats {
		rows.AddRow(s.ID, s.ShowID, s.SeatNo, s.Price, s.IsBooked, s.CreatedAt, s.UpdatedAt)
	}
	return rows
}

func allocSeat(showID uuid.UUID, seatNo string, price float64, booked bool) *entity.Seat {
	now := time.Now()
	return &entity.Seat{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ShowID:   showID,
		SeatNo:   seatNo,
		Price:    price,
		IsBooked: booked,
	}
}

func allocBooking(showID uuid.UUID) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:      uuid.New(),
		ShowID:      showID,
		Status:      entity.BookingStatusConfirmed,
		BookingTime: now,
	}
}

func TestAllocationRepository_Reserve(t *testing.T) {
	ctx := context.Background()
	showID := uuid.New()

	t.Run("reserves free seats and settles payment atomically", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		seatA := allocSeat(showID, "A1", 200, false)
		seatB := allocSeat(showID, "A2", 300, false)
		booking := allocBooking(showID)
		payment := &entity.Payment{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
			PaymentMode: "UPI",
			Status:      entity.PaymentStatusSuccess,
			PaidAt:      time.Now(),
		}

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, show_id, seat_no, price, is_booked, created_at, updated_at`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(seatRows(seatA, seatB))
		mock.ExpectExec(`UPDATE seats SET is_booked = true`).
			WithArgs(pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))
		mock.ExpectExec(`INSERT INTO bookings`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCopyFrom(pgx.Identifier{"booking_seats"}, bookingSeatColumns).
			WillReturnResult(2)
		mock.ExpectExec(`INSERT INTO payments`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		repo := NewAllocationRepository(mock, zap.NewNop())
		seats, err := repo.Reserve(ctx, booking, []string{"A1", "A2"}, payment)

		require.NoError(t, err)
		require.Len(t, seats, 2)
		assert.Equal(t, 500.0, booking.TotalAmount)
		assert.Equal(t, 500.0, payment.Amount)
		assert.Equal(t, booking.ID, payment.BookingID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a held seat aborts the whole request", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		seatA := allocSeat(showID, "A1", 200, false)
		seatB := allocSeat(showID, "A2", 300, true)
		booking := allocBooking(showID)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, show_id, seat_no, price, is_booked, created_at, updated_at`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(seatRows(seatA, seatB))
		mock.ExpectRollback()

		repo := NewAllocationRepository(mock, zap.NewNop())
		_, err = repo.Reserve(ctx, booking, []string{"A1", "A2"}, nil)

		assert.ErrorIs(t, err, entity.ErrSeatsUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a concurrent hold between check and flip rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		seatA := allocSeat(showID, "A1", 200, false)
		seatB := allocSeat(showID, "A2", 300, false)
		booking := allocBooking(showID)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, show_id, seat_no, price, is_booked, created_at, updated_at`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(seatRows(seatA, seatB))
		mock.ExpectExec(`UPDATE seats SET is_booked = true`).
			WithArgs(pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectRollback()

		repo := NewAllocationRepository(mock, zap.NewNop())
		_, err = repo.Reserve(ctx, booking, []string{"A1", "A2"}, nil)

		assert.ErrorIs(t, err, entity.ErrSeatsUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a missing seat number fails before any write", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		seatA := allocSeat(showID, "A1", 200, false)
		booking := allocBooking(showID)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, show_id, seat_no, price, is_booked, created_at, updated_at`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(seatRows(seatA))
		mock.ExpectRollback()

		repo := NewAllocationRepository(mock, zap.NewNop())
		_, err = repo.Reserve(ctx, booking, []string{"A1", "Z9"}, nil)

		assert.ErrorIs(t, err, entity.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("serialization failures surface as seat contention", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		seatA := allocSeat(showID, "A1", 200, false)
		booking := allocBooking(showID)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, show_id, seat_no, price, is_booked, created_at, updated_at`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(seatRows(seatA))
		mock.ExpectExec(`UPDATE seats SET is_booked = true`).
			WithArgs(pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
		mock.ExpectRollback()

		repo := NewAllocationRepository(mock, zap.NewNop())
		_, err = repo.Reserve(ctx, booking, []string{"A1"}, nil)

		assert.ErrorIs(t, err, entity.ErrSeatsUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no payment row is written for an unsettled reservation", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		seatA := allocSeat(showID, "A1", 200, false)
		booking := allocBooking(showID)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, show_id, seat_no, price, is_booked, created_at, updated_at`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(seatRows(seatA))
		mock.ExpectExec(`UPDATE seats SET is_booked = true`).
			WithArgs(pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`INSERT INTO bookings`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCopyFrom(pgx.Identifier{"booking_seats"}, bookingSeatColumns).
			WillReturnResult(1)
		mock.ExpectCommit()

		repo := NewAllocationRepository(mock, zap.NewNop())
		seats, err := repo.ReserveByIDs(ctx, booking, []uuid.UUID{seatA.ID}, nil)

		require.NoError(t, err)
		assert.Len(t, seats, 1)
		assert.Equal(t, 200.0, booking.TotalAmount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAllocationRepository_Release(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("frees the seats and removes the booking", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT s.id, s.seat_no`).
			WithArgs(bookingID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "seat_no"}).
				AddRow(uuid.New(), "B1").
				AddRow(uuid.New(), "B2"))
		mock.ExpectExec(`UPDATE seats SET is_booked = false`).
			WithArgs(pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))
		mock.ExpectExec(`DELETE FROM booking_seats`).
			WithArgs(bookingID).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec(`DELETE FROM payments`).
			WithArgs(bookingID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec(`DELETE FROM bookings`).
			WithArgs(bookingID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		repo := NewAllocationRepository(mock, zap.NewNop())
		seatNos, err := repo.Release(ctx, bookingID)

		require.NoError(t, err)
		assert.Equal(t, []string{"B1", "B2"}, seatNos)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown booking rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT s.id, s.seat_no`).
			WithArgs(bookingID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "seat_no"}))
		mock.ExpectExec(`DELETE FROM booking_seats`).
			WithArgs(bookingID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec(`DELETE FROM payments`).
			WithArgs(bookingID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec(`DELETE FROM bookings`).
			WithArgs(bookingID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()

		repo := NewAllocationRepository(mock, zap.NewNop())
		_, err = repo.Release(ctx, bookingID)

		assert.ErrorIs(t, err, entity.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAllocationRepository_ReleaseSeats(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	// The booking row stays; only the seat hold and join rows go away.
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT s.id, s.seat_no`).
		WithArgs(bookingID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "seat_no"}).
			AddRow(uuid.New(), "C3"))
	mock.ExpectExec(`UPDATE seats SET is_booked = false`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM booking_seats`).
		WithArgs(bookingID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	repo := NewAllocationRepository(mock, zap.NewNop())
	seatNos, err := repo.ReleaseSeats(ctx, bookingID)

	require.NoError(t, err)
	assert.Equal(t, []string{"C3"}, seatNos)
	assert.NoError(t, mock.ExpectationsWereMet())
}
