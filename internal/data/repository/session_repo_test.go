package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movie-booking/internal/data/entity"
)

func TestSessionRepository_FindValidSession(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil for a token with no live row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		token := uuid.NewString()
		mock.ExpectQuery(`SELECT id, user_id, token`).
			WithArgs(token).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "user_id", "token", "user_agent", "ip_address",
				"expires_at", "revoked_at", "created_at",
			}))

		repo := NewSessionRepository(mock, zap.NewNop())
		session, err := repo.FindValidSession(ctx, token)

		require.NoError(t, err)
		assert.Nil(t, session)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("soft deletes the session", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		token := uuid.NewString()
		mock.ExpectExec(`UPDATE sessions`).
			WithArgs(token).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := NewSessionRepository(mock, zap.NewNop())
		require.NoError(t, repo.Revoke(ctx, token))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("revoking twice reports not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		token := uuid.NewString()
		mock.ExpectExec(`UPDATE sessions`).
			WithArgs(token).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := NewSessionRepository(mock, zap.NewNop())
		err = repo.Revoke(ctx, token)

		assert.ErrorIs(t, err, entity.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_CleanExpiredSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes rows past the retention window", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM sessions`).
			WithArgs(pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))

		repo := NewSessionRepository(mock, zap.NewNop())
		require.NoError(t, repo.CleanExpiredSessions(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("the cutoff trails expiry by the retention window", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		var cutoff time.Time
		mock.ExpectExec(`DELETE FROM sessions`).
			WithArgs(timeCapture{&cutoff}).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := NewSessionRepository(mock, zap.NewNop())
		require.NoError(t, repo.CleanExpiredSessions(ctx))

		assert.WithinDuration(t, time.Now().Add(-sessionRetention), cutoff, time.Minute)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// timeCapture matches any time.Time argument and records it for assertions.
type timeCapture struct {
	dst *time.Time
}

func (c timeCapture) Match(v any) bool {
	ts, ok := v.(time.Time)
	if ok {
		*c.dst = ts
	}
	return ok
}
