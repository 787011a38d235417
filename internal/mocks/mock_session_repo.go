package mocks

import (
	"context"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

type MockSessionRepo struct {
	CreateFunc                func(ctx context.Context, session *entity.Session) error
	FindValidSessionFunc      func(ctx context.Context, token string) (*entity.Session, error)
	RevokeFunc                func(ctx context.Context, token string) error
	RevokeAllUserSessionsFunc func(ctx context.Context, userID uuid.UUID) error
	CleanExpiredSessionsFunc  func(ctx context.Context) error
}

func (m *MockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.CreateFunc(ctx, session)
}

func (m *MockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return m.FindValidSessionFunc(ctx, token)
}

func (m *MockSessionRepo) Revoke(ctx context.Context, token string) error {
	return m.RevokeFunc(ctx, token)
}

func (m *MockSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return m.RevokeAllUserSessionsFunc(ctx, userID)
}

func (m *MockSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return m.CleanExpiredSessionsFunc(ctx)
}
