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

func seatFixture(showID uuid.UUID, seatNo string, price float64) *entity.Seat {
	return &entity.Seat{
		Base:     entity.Base{ID: uuid.New()},
		ShowID:   showID,
		SeatNo:   seatNo,
		Price:    price,
		IsBooked: true,
	}
}

func showFixture(id uuid.UUID) *entity.Show {
	return &entity.Show{
		Base:      entity.Base{ID: id},
		StartTime: time.Now().Add(24 * time.Hour),
		EndTime:   time.Now().Add(26 * time.Hour),
	}
}

func bookingFixture(id, userID, showID uuid.UUID) *entity.Booking {
	return &entity.Booking{
		Base:        entity.Base{ID: id},
		UserID:      userID,
		ShowID:      showID,
		TotalAmount: 500,
		Status:      entity.BookingStatusConfirmed,
		BookingTime: time.Now(),
	}
}

func TestBookingService_BookSeats(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	showID := uuid.New()
	seatID := uuid.New()

	t.Run("reserves seats and returns totals from the allocator", func(t *testing.T) {
		showRepo := &mocks.MockShowRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
				assert.Equal(t, showID, id)
				return showFixture(showID), nil
			},
		}
		allocRepo := &mocks.MockAllocationRepo{
			ReserveByIDsFunc: func(ctx context.Context, booking *entity.Booking, seatIDs []uuid.UUID, payment *entity.Payment) ([]*entity.Seat, error) {
				require.Len(t, seatIDs, 1)
				assert.Equal(t, seatID, seatIDs[0])
				assert.Nil(t, payment)
				assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
				booking.TotalAmount = 350
				return []*entity.Seat{seatFixture(showID, "A1", 350)}, nil
			},
		}

		svc := NewBookingService(&repository.Repository{Show: showRepo, Allocation: allocRepo}, zap.NewNop())

		resp, err := svc.BookSeats(ctx, userID, &request.BookSeatsRequest{
			ShowID:  showID.String(),
			SeatIDs: []string{seatID.String()},
		})

		require.NoError(t, err)
		assert.Equal(t, userID.String(), resp.UserID)
		assert.Equal(t, showID.String(), resp.ShowID)
		assert.Equal(t, 350.0, resp.TotalAmount)
		assert.Equal(t, []string{"A1"}, resp.SeatNumbers)
	})

	t.Run("rejects empty seat selection", func(t *testing.T) {
		svc := NewBookingService(&repository.Repository{}, zap.NewNop())

		_, err := svc.BookSeats(ctx, userID, &request.BookSeatsRequest{
			ShowID:  showID.String(),
			SeatIDs: []string{},
		})

		assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("rejects malformed seat id", func(t *testing.T) {
		svc := NewBookingService(&repository.Repository{}, zap.NewNop())

		_, err := svc.BookSeats(ctx, userID, &request.BookSeatsRequest{
			ShowID:  showID.String(),
			SeatIDs: []string{"not-a-uuid"},
		})

		assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("rejects duplicate seat ids", func(t *testing.T) {
		svc := NewBookingService(&repository.Repository{}, zap.NewNop())

		_, err := svc.BookSeats(ctx, userID, &request.BookSeatsRequest{
			ShowID:  showID.String(),
			SeatIDs: []string{seatID.String(), seatID.String()},
		})

		assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("unknown show", func(t *testing.T) {
		showRepo := &mocks.MockShowRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
				return nil, nil
			},
		}
		svc := NewBookingService(&repository.Repository{Show: showRepo}, zap.NewNop())

		_, err := svc.BookSeats(ctx, userID, &request.BookSeatsRequest{
			ShowID:  showID.String(),
			SeatIDs: []string{seatID.String()},
		})

		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("propagates seat contention", func(t *testing.T) {
		showRepo := &mocks.MockShowRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
				return showFixture(showID), nil
			},
		}
		allocRepo := &mocks.MockAllocationRepo{
			ReserveByIDsFunc: func(ctx context.Context, booking *entity.Booking, seatIDs []uuid.UUID, payment *entity.Payment) ([]*entity.Seat, error) {
				return nil, entity.ErrSeatsUnavailable
			},
		}
		svc := NewBookingService(&repository.Repository{Show: showRepo, Allocation: allocRepo}, zap.NewNop())

		_, err := svc.BookSeats(ctx, userID, &request.BookSeatsRequest{
			ShowID:  showID.String(),
			SeatIDs: []string{seatID.String()},
		})

		assert.ErrorIs(t, err, entity.ErrSeatsUnavailable)
	})
}

func TestBookingService_BookShow(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	showID := uuid.New()

	t.Run("settles payment in the same reservation", func(t *testing.T) {
		showRepo := &mocks.MockShowRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
				return showFixture(showID), nil
			},
		}
		allocRepo := &mocks.MockAllocationRepo{
			ReserveFunc: func(ctx context.Context, booking *entity.Booking, seatNos []string, payment *entity.Payment) ([]*entity.Seat, error) {
				assert.Equal(t, []string{"A1", "A2"}, seatNos)
				require.NotNil(t, payment)
				assert.Equal(t, "UPI", payment.PaymentMode)
				assert.Equal(t, entity.PaymentStatusSuccess, payment.Status)
				booking.TotalAmount = 700
				return []*entity.Seat{
					seatFixture(showID, "A1", 350),
					seatFixture(showID, "A2", 350),
				}, nil
			},
		}
		svc := NewBookingService(&repository.Repository{Show: showRepo, Allocation: allocRepo}, zap.NewNop())

		resp, err := svc.BookShow(ctx, userID, &request.BookShowRequest{
			ShowID:      showID.String(),
			SeatNos:     []string{"A1", "A2"},
			PaymentMode: "UPI",
		})

		require.NoError(t, err)
		assert.Equal(t, 700.0, resp.TotalAmount)
		assert.Equal(t, "UPI", resp.PaymentMode)
		assert.Equal(t, []string{"A1", "A2"}, resp.SeatNumbers)
	})

	t.Run("rejects empty seat numbers", func(t *testing.T) {
		svc := NewBookingService(&repository.Repository{}, zap.NewNop())

		_, err := svc.BookShow(ctx, userID, &request.BookShowRequest{
			ShowID:      showID.String(),
			PaymentMode: "UPI",
		})

		assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("rejects duplicate seat numbers", func(t *testing.T) {
		svc := NewBookingService(&repository.Repository{}, zap.NewNop())

		_, err := svc.BookShow(ctx, userID, &request.BookShowRequest{
			ShowID:      showID.String(),
			SeatNos:     []string{"A1", "A1"},
			PaymentMode: "UPI",
		})

		assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bookingID := uuid.New()

	t.Run("releases seats and returns a receipt", func(t *testing.T) {
		bookingRepo := &mocks.MockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return bookingFixture(bookingID, userID, uuid.New()), nil
			},
		}
		released := false
		allocRepo := &mocks.MockAllocationRepo{
			ReleaseFunc: func(ctx context.Context, id uuid.UUID) ([]string, error) {
				released = true
				assert.Equal(t, bookingID, id)
				return []string{"B1", "B2"}, nil
			},
		}
		svc := NewBookingService(&repository.Repository{Booking: bookingRepo, Allocation: allocRepo}, zap.NewNop())

		receipt, err := svc.CancelBooking(ctx, userID, bookingID)

		require.NoError(t, err)
		assert.True(t, released)
		assert.Equal(t, bookingID.String(), receipt.BookingID)
		assert.Equal(t, "Booking cancelled successfully", receipt.Message)
		assert.Equal(t, []string{"B1", "B2"}, receipt.SeatNumbers)
		assert.WithinDuration(t, time.Now(), receipt.Timestamp, time.Minute)
	})

	t.Run("refuses a foreign booking", func(t *testing.T) {
		bookingRepo := &mocks.MockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return bookingFixture(bookingID, uuid.New(), uuid.New()), nil
			},
		}
		svc := NewBookingService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

		_, err := svc.CancelBooking(ctx, userID, bookingID)

		assert.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("unknown booking", func(t *testing.T) {
		bookingRepo := &mocks.MockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return nil, nil
			},
		}
		svc := NewBookingService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

		_, err := svc.CancelBooking(ctx, userID, bookingID)

		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestBookingService_UpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("cancelling frees the seats before the status write", func(t *testing.T) {
		var calls []string
		bookingRepo := &mocks.MockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return bookingFixture(bookingID, uuid.New(), uuid.New()), nil
			},
			UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
				calls = append(calls, "update")
				assert.Equal(t, entity.BookingStatusCancelled, status)
				return nil
			},
		}
		allocRepo := &mocks.MockAllocationRepo{
			ReleaseSeatsFunc: func(ctx context.Context, id uuid.UUID) ([]string, error) {
				calls = append(calls, "release")
				return []string{"C1"}, nil
			},
		}
		seatRepo := &mocks.MockSeatRepo{
			FindByBookingIDFunc: func(ctx context.Context, id uuid.UUID) ([]*entity.Seat, error) {
				return nil, nil
			},
		}
		svc := NewBookingService(&repository.Repository{
			Booking:    bookingRepo,
			Allocation: allocRepo,
			Seat:       seatRepo,
		}, zap.NewNop())

		resp, err := svc.UpdateBookingStatus(ctx, bookingID, "CANCELLED")

		require.NoError(t, err)
		assert.Equal(t, []string{"release", "update"}, calls)
		assert.Equal(t, entity.BookingStatusCancelled, resp.Status)
	})

	t.Run("non-cancel statuses do not touch the seats", func(t *testing.T) {
		bookingRepo := &mocks.MockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return bookingFixture(bookingID, uuid.New(), uuid.New()), nil
			},
			UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
				return nil
			},
		}
		allocRepo := &mocks.MockAllocationRepo{
			ReleaseSeatsFunc: func(ctx context.Context, id uuid.UUID) ([]string, error) {
				t.Fatal("seats must not be released")
				return nil, nil
			},
		}
		seatRepo := &mocks.MockSeatRepo{
			FindByBookingIDFunc: func(ctx context.Context, id uuid.UUID) ([]*entity.Seat, error) {
				return nil, nil
			},
		}
		svc := NewBookingService(&repository.Repository{
			Booking:    bookingRepo,
			Allocation: allocRepo,
			Seat:       seatRepo,
		}, zap.NewNop())

		resp, err := svc.UpdateBookingStatus(ctx, bookingID, "PENDING")

		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusPending, resp.Status)
	})

	t.Run("empty status", func(t *testing.T) {
		svc := NewBookingService(&repository.Repository{}, zap.NewNop())

		_, err := svc.UpdateBookingStatus(ctx, bookingID, "")

		assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestBookingService_GetBookingByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	bookingID := uuid.New()

	bookingRepo := &mocks.MockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return bookingFixture(bookingID, ownerID, uuid.New()), nil
		},
	}
	seatRepo := &mocks.MockSeatRepo{
		FindByBookingIDFunc: func(ctx context.Context, id uuid.UUID) ([]*entity.Seat, error) {
			return []*entity.Seat{seatFixture(uuid.New(), "D4", 250)}, nil
		},
	}
	svc := NewBookingService(&repository.Repository{Booking: bookingRepo, Seat: seatRepo}, zap.NewNop())

	t.Run("owner can read", func(t *testing.T) {
		resp, err := svc.GetBookingByID(ctx, ownerID, string(entity.RoleCustomer), bookingID)

		require.NoError(t, err)
		assert.Equal(t, []string{"D4"}, resp.SeatNumbers)
	})

	t.Run("admin can read any booking", func(t *testing.T) {
		_, err := svc.GetBookingByID(ctx, uuid.New(), string(entity.RoleAdmin), bookingID)

		require.NoError(t, err)
	})

	t.Run("other customers cannot", func(t *testing.T) {
		_, err := svc.GetBookingByID(ctx, uuid.New(), string(entity.RoleCustomer), bookingID)

		assert.ErrorIs(t, err, entity.ErrForbidden)
	})
}

func TestBookingService_GetBookedSeatNumbers(t *testing.T) {
	ctx := context.Background()
	showID := uuid.New()
	seatA := seatFixture(showID, "A1", 100)
	seatB := seatFixture(showID, "A2", 100)

	showRepo := &mocks.MockShowRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
			return showFixture(showID), nil
		},
	}
	bookingSeatRepo := &mocks.MockBookingSeatRepo{
		FindBookedSeatIDsByShowFunc: func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
			return []uuid.UUID{seatA.ID, seatB.ID}, nil
		},
	}
	seatRepo := &mocks.MockSeatRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
			if id == seatA.ID {
				return seatA, nil
			}
			return seatB, nil
		},
	}
	svc := NewBookingService(&repository.Repository{
		Show:        showRepo,
		BookingSeat: bookingSeatRepo,
		Seat:        seatRepo,
	}, zap.NewNop())

	seatNos, err := svc.GetBookedSeatNumbers(ctx, showID)

	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, seatNos)
}

func TestBookingService_GetBookingsByDateRange(t *testing.T) {
	ctx := context.Background()

	t.Run("end before start", func(t *testing.T) {
		svc := NewBookingService(&repository.Repository{}, zap.NewNop())

		from := time.Now()
		_, err := svc.GetBookingsByDateRange(ctx, from, from.Add(-time.Hour))

		assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("valid range delegates to the projection", func(t *testing.T) {
		mode := "CARD"
		amount := 420.0
		bookingRepo := &mocks.MockBookingRepo{
			FindDetailsByDateRangeFunc: func(ctx context.Context, from, to time.Time) ([]*entity.BookingDetail, error) {
				return []*entity.BookingDetail{{
					BookingID:   uuid.New(),
					UserName:    "alice",
					MovieTitle:  "Inception",
					Status:      entity.BookingStatusConfirmed,
					PaymentMode: &mode,
					TotalAmount: &amount,
					SeatNos:     []string{"E5"},
				}}, nil
			},
		}
		svc := NewBookingService(&repository.Repository{Booking: bookingRepo}, zap.NewNop())

		from := time.Now().Add(-24 * time.Hour)
		details, err := svc.GetBookingsByDateRange(ctx, from, time.Now())

		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "CARD", details[0].PaymentMode)
		assert.Equal(t, 420.0, details[0].TotalAmount)
	})
}

func TestBookingService_GetUserBookings(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	bookingRepo := &mocks.MockBookingRepo{
		FindByUserIDFunc: func(ctx context.Context, id uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
			assert.Equal(t, 10, limit)
			assert.Equal(t, 0, offset)
			return []*entity.Booking{bookingFixture(uuid.New(), userID, uuid.New())}, nil
		},
		CountByUserIDFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 1, nil
		},
	}
	seatRepo := &mocks.MockSeatRepo{
		FindByBookingIDFunc: func(ctx context.Context, id uuid.UUID) ([]*entity.Seat, error) {
			return []*entity.Seat{seatFixture(uuid.New(), "F6", 300)}, nil
		},
	}
	svc := NewBookingService(&repository.Repository{Booking: bookingRepo, Seat: seatRepo}, zap.NewNop())

	resp, err := svc.GetUserBookings(ctx, userID, &request.PaginatedRequest{Page: 1, PerPage: 10})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, []string{"F6"}, resp.Data[0].SeatNumbers)
	assert.Equal(t, int64(1), resp.Pagination.Total)
}
