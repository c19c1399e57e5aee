package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/pkg/ctxutil"
)

func newTestService(repo notificationRepo, users userRepo, sink Sink) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(logger, repo, users, sink)
}

func okSink() *sinkMock {
	return &sinkMock{PushFunc: func(ctx context.Context, userID uuid.UUID, n *domain.Notification) error { return nil }}
}

func TestService_Alert_OnePerRecipient(t *testing.T) {
	t.Parallel()

	admins := []*domain.User{
		{ID: uuid.New(), Role: domain.UserRoleAdmin},
		{ID: uuid.New(), Role: domain.UserRoleAdmin},
	}
	users := &userRepoMock{
		ListByRolesFunc: func(ctx context.Context, roles ...domain.UserRole) ([]*domain.User, error) {
			assert.Equal(t, []domain.UserRole{domain.UserRoleAdmin}, roles)
			return admins, nil
		},
	}
	repo := &notificationRepoMock{
		CreateFunc: func(ctx context.Context, n *domain.Notification) error { return nil },
	}
	sink := okSink()

	sent, err := newTestService(repo, users, sink).Alert(context.Background(),
		[]domain.UserRole{domain.UserRoleAdmin}, "Consumption issues", "Rice: short", domain.NotificationAlert)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	require.Len(t, repo.CreateCalls(), 2)
	assert.Equal(t, admins[1].ID, repo.CreateCalls()[1].N.UserID)
	assert.Equal(t, domain.NotificationAlert, repo.CreateCalls()[0].N.Type)
	assert.Len(t, sink.PushCalls(), 2)
}

func TestService_Alert_SinkFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		ListByRolesFunc: func(ctx context.Context, roles ...domain.UserRole) ([]*domain.User, error) {
			return []*domain.User{{ID: uuid.New()}}, nil
		},
	}
	repo := &notificationRepoMock{CreateFunc: func(ctx context.Context, n *domain.Notification) error { return nil }}
	sink := &sinkMock{PushFunc: func(ctx context.Context, userID uuid.UUID, n *domain.Notification) error {
		return errors.New("socket closed")
	}}

	sent, err := newTestService(repo, users, sink).Alert(context.Background(),
		[]domain.UserRole{domain.UserRoleAdmin}, "t", "m", domain.NotificationInfo)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestService_Alert_StoreFailure(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		ListByRolesFunc: func(ctx context.Context, roles ...domain.UserRole) ([]*domain.User, error) {
			return []*domain.User{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		},
	}
	boom := errors.New("db down")
	repo := &notificationRepoMock{CreateFunc: func(ctx context.Context, n *domain.Notification) error { return boom }}
	sink := okSink()

	sent, err := newTestService(repo, users, sink).Alert(context.Background(),
		[]domain.UserRole{domain.UserRoleAdmin}, "t", "m", domain.NotificationAlert)

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, sent)
	assert.Len(t, repo.CreateCalls(), 2)
	assert.Empty(t, sink.PushCalls())
}

func TestService_Alert_ContinuesPastFailedRecipient(t *testing.T) {
	t.Parallel()

	admins := []*domain.User{
		{ID: uuid.New(), Role: domain.UserRoleAdmin},
		{ID: uuid.New(), Role: domain.UserRoleAdmin},
		{ID: uuid.New(), Role: domain.UserRoleAdmin},
	}
	users := &userRepoMock{
		ListByRolesFunc: func(ctx context.Context, roles ...domain.UserRole) ([]*domain.User, error) {
			return admins, nil
		},
	}
	transient := errors.New("transient")
	repo := &notificationRepoMock{
		CreateFunc: func(ctx context.Context, n *domain.Notification) error {
			if n.UserID == admins[0].ID {
				return transient
			}
			return nil
		},
	}
	sink := okSink()

	sent, err := newTestService(repo, users, sink).Alert(context.Background(),
		[]domain.UserRole{domain.UserRoleAdmin}, "Consumption issues", "Dal: short", domain.NotificationAlert)

	require.ErrorIs(t, err, transient)
	assert.ErrorContains(t, err, admins[0].ID.String())
	assert.Equal(t, 2, sent)
	require.Len(t, repo.CreateCalls(), 3)

	pushed := make([]uuid.UUID, 0, 2)
	for _, c := range sink.PushCalls() {
		pushed = append(pushed, c.UserID)
	}
	assert.ElementsMatch(t, []uuid.UUID{admins[1].ID, admins[2].ID}, pushed)
}

func TestService_NotifyOncePerDay(t *testing.T) {
	t.Parallel()

	dayStart := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	user := &domain.User{ID: uuid.New(), Role: domain.UserRoleKitchen}

	tests := []struct {
		name        string
		exists      bool
		wantCreated bool
	}{
		{name: "first today", exists: false, wantCreated: true},
		{name: "already sent today", exists: true, wantCreated: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &notificationRepoMock{
				ExistsSinceFunc: func(ctx context.Context, userID uuid.UUID, title string, since time.Time) (bool, error) {
					assert.Equal(t, user.ID, userID)
					assert.Equal(t, "Low stock: Rice", title)
					assert.Equal(t, dayStart, since)
					return tt.exists, nil
				},
				CreateFunc: func(ctx context.Context, n *domain.Notification) error { return nil },
			}
			sink := okSink()

			created, err := newTestService(repo, nil, sink).NotifyOncePerDay(context.Background(),
				user, "Low stock: Rice", "Rice is low", domain.NotificationWarning, dayStart)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			if tt.wantCreated {
				assert.Len(t, repo.CreateCalls(), 1)
				assert.Len(t, sink.PushCalls(), 1)
			} else {
				assert.Empty(t, repo.CreateCalls())
				assert.Empty(t, sink.PushCalls())
			}
		})
	}
}

func TestService_List(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &notificationRepoMock{
		ListByUserFunc: func(ctx context.Context, id uuid.UUID, unreadOnly bool, limit, offset int) ([]*domain.Notification, error) {
			return []*domain.Notification{{ID: uuid.New(), UserID: id}}, nil
		},
	}
	svc := newTestService(repo, nil, nil)

	t.Run("default limit", func(t *testing.T) {
		got, err := svc.List(ctxutil.WithUserID(context.Background(), userID), ListInput{UnreadOnly: true})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		calls := repo.ListByUserCalls()
		require.NotEmpty(t, calls)
		assert.Equal(t, DefaultLimit, calls[len(calls)-1].Limit)
		assert.True(t, calls[len(calls)-1].UnreadOnly)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := svc.List(context.Background(), ListInput{})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("limit too large", func(t *testing.T) {
		_, err := svc.List(ctxutil.WithUserID(context.Background(), userID), ListInput{Limit: MaxLimit + 1})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_MarkRead_NotFound(t *testing.T) {
	t.Parallel()

	repo := &notificationRepoMock{
		MarkReadFunc: func(ctx context.Context, userID, id uuid.UUID) error { return domain.ErrNotFound },
	}
	err := newTestService(repo, nil, nil).MarkRead(ctxutil.WithUserID(context.Background(), uuid.New()), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
