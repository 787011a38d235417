package usecase

import (
	"context"
	"testing"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeatService_AddSeats(t *testing.T) {
	ctx := context.Background()
	showID := uuid.New()

	showRepo := &mocks.MockShowRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
			return showFixture(showID), nil
		},
	}

	t.Run("creates the batch unbooked", func(t *testing.T) {
		var created []*entity.Seat
		seatRepo := &mocks.MockSeatRepo{
			CreateBatchFunc: func(ctx context.Context, seats []*entity.Seat) error {
				created = seats
				return nil
			},
		}
		svc := NewSeatService(&repository.Repository{Show: showRepo, Seat: seatRepo}, zap.NewNop())

		resp, err := svc.AddSeats(ctx, &request.AddSeatsRequest{
			ShowID: showID.String(),
			Seats: []request.SeatInput{
				{SeatNo: "A1", Price: 200},
				{SeatNo: "A2", Price: 200},
			},
		})

		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, showID, created[0].ShowID)
		assert.False(t, created[0].IsBooked)
		assert.Len(t, resp, 2)
	})

	t.Run("rejects duplicate seat numbers in the batch", func(t *testing.T) {
		svc := NewSeatService(&repository.Repository{Show: showRepo}, zap.NewNop())

		_, err := svc.AddSeats(ctx, &request.AddSeatsRequest{
			ShowID: showID.String(),
			Seats: []request.SeatInput{
				{SeatNo: "A1", Price: 200},
				{SeatNo: "A1", Price: 250},
			},
		})

		assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("unknown show", func(t *testing.T) {
		missingShowRepo := &mocks.MockShowRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
				return nil, nil
			},
		}
		svc := NewSeatService(&repository.Repository{Show: missingShowRepo}, zap.NewNop())

		_, err := svc.AddSeats(ctx, &request.AddSeatsRequest{
			ShowID: showID.String(),
			Seats:  []request.SeatInput{{SeatNo: "A1", Price: 200}},
		})

		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestSeatService_UpdateSeat(t *testing.T) {
	ctx := context.Background()
	seatID := uuid.New()

	t.Run("updates a free seat", func(t *testing.T) {
		seat := &entity.Seat{
			Base:   entity.Base{ID: seatID},
			ShowID: uuid.New(),
			SeatNo: "A1",
			Price:  200,
		}
		var updated *entity.Seat
		seatRepo := &mocks.MockSeatRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
				return seat, nil
			},
			UpdateFunc: func(ctx context.Context, s *entity.Seat) error {
				updated = s
				return nil
			},
		}
		svc := NewSeatService(&repository.Repository{Seat: seatRepo}, zap.NewNop())

		resp, err := svc.UpdateSeat(ctx, seatID, &request.UpdateSeatRequest{SeatNo: "B1", Price: 300})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "B1", updated.SeatNo)
		assert.Equal(t, 300.0, updated.Price)
		assert.Equal(t, "B1", resp.SeatNo)
	})

	t.Run("refuses a booked seat", func(t *testing.T) {
		seatRepo := &mocks.MockSeatRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
				return &entity.Seat{Base: entity.Base{ID: seatID}, SeatNo: "A1", IsBooked: true}, nil
			},
		}
		svc := NewSeatService(&repository.Repository{Seat: seatRepo}, zap.NewNop())

		_, err := svc.UpdateSeat(ctx, seatID, &request.UpdateSeatRequest{SeatNo: "B1", Price: 300})

		assert.ErrorIs(t, err, entity.ErrInvalidState)
	})
}

func TestSeatService_DeleteSeat(t *testing.T) {
	ctx := context.Background()
	seatID := uuid.New()

	t.Run("refuses a booked seat", func(t *testing.T) {
		seatRepo := &mocks.MockSeatRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
				return &entity.Seat{Base: entity.Base{ID: seatID}, SeatNo: "A1", IsBooked: true}, nil
			},
		}
		svc := NewSeatService(&repository.Repository{Seat: seatRepo}, zap.NewNop())

		err := svc.DeleteSeat(ctx, seatID)

		assert.ErrorIs(t, err, entity.ErrInvalidState)
	})

	t.Run("deletes a free seat", func(t *testing.T) {
		deleted := false
		seatRepo := &mocks.MockSeatRepo{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
				return &entity.Seat{Base: entity.Base{ID: seatID}, SeatNo: "A1"}, nil
			},
			DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
				deleted = true
				return nil
			},
		}
		svc := NewSeatService(&repository.Repository{Seat: seatRepo}, zap.NewNop())

		require.NoError(t, svc.DeleteSeat(ctx, seatID))
		assert.True(t, deleted)
	})
}
