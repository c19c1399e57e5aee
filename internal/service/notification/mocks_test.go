package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	CreateFunc      func(ctx context.Context, n *domain.Notification) error
	ExistsSinceFunc func(ctx context.Context, userID uuid.UUID, title string, since time.Time) (bool, error)
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*domain.Notification, error)
	MarkReadFunc    func(ctx context.Context, userID, id uuid.UUID) error

	calls struct {
		Create []struct {
			N *domain.Notification
		}
		ExistsSince []struct {
			UserID uuid.UUID
			Title  string
			Since  time.Time
		}
		ListByUser []struct {
			UserID     uuid.UUID
			UnreadOnly bool
			Limit      int
			Offset     int
		}
		MarkRead []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *notificationRepoMock) Create(ctx context.Context, n *domain.Notification) error {
	if mock.CreateFunc == nil {
		panic("notificationRepoMock.CreateFunc: method is nil but notificationRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ N *domain.Notification }{N: n})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *notificationRepoMock) CreateCalls() []struct{ N *domain.Notification } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *notificationRepoMock) ExistsSince(ctx context.Context, userID uuid.UUID, title string, since time.Time) (bool, error) {
	if mock.ExistsSinceFunc == nil {
		panic("notificationRepoMock.ExistsSinceFunc: method is nil but notificationRepo.ExistsSince was just called")
	}
	mock.lock.Lock()
	mock.calls.ExistsSince = append(mock.calls.ExistsSince, struct {
		UserID uuid.UUID
		Title  string
		Since  time.Time
	}{UserID: userID, Title: title, Since: since})
	mock.lock.Unlock()
	return mock.ExistsSinceFunc(ctx, userID, title, since)
}

func (mock *notificationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*domain.Notification, error) {
	if mock.ListByUserFunc == nil {
		panic("notificationRepoMock.ListByUserFunc: method is nil but notificationRepo.ListByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		UserID     uuid.UUID
		UnreadOnly bool
		Limit      int
		Offset     int
	}{UserID: userID, UnreadOnly: unreadOnly, Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.ListByUserFunc(ctx, userID, unreadOnly, limit, offset)
}

func (mock *notificationRepoMock) ListByUserCalls() []struct {
	UserID     uuid.UUID
	UnreadOnly bool
	Limit      int
	Offset     int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByUser
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, struct {
		UserID uuid.UUID
		ID     uuid.UUID
	}{UserID: userID, ID: id})
	mock.lock.Unlock()
	return mock.MarkReadFunc(ctx, userID, id)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListByRolesFunc func(ctx context.Context, roles ...domain.UserRole) ([]*domain.User, error)

	calls struct {
		ListByRoles []struct {
			Roles []domain.UserRole
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) ListByRoles(ctx context.Context, roles ...domain.UserRole) ([]*domain.User, error) {
	if mock.ListByRolesFunc == nil {
		panic("userRepoMock.ListByRolesFunc: method is nil but userRepo.ListByRoles was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByRoles = append(mock.calls.ListByRoles, struct{ Roles []domain.UserRole }{Roles: roles})
	mock.lock.Unlock()
	return mock.ListByRolesFunc(ctx, roles...)
}

func (mock *userRepoMock) ListByRolesCalls() []struct{ Roles []domain.UserRole } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByRoles
}

var _ Sink = &sinkMock{}

type sinkMock struct {
	PushFunc func(ctx context.Context, userID uuid.UUID, n *domain.Notification) error

	calls struct {
		Push []struct {
			UserID uuid.UUID
			N      *domain.Notification
		}
	}
	lock sync.RWMutex
}

func (mock *sinkMock) Push(ctx context.Context, userID uuid.UUID, n *domain.Notification) error {
	if mock.PushFunc == nil {
		panic("sinkMock.PushFunc: method is nil but Sink.Push was just called")
	}
	mock.lock.Lock()
	mock.calls.Push = append(mock.calls.Push, struct {
		UserID uuid.UUID
		N      *domain.Notification
	}{UserID: userID, N: n})
	mock.lock.Unlock()
	return mock.PushFunc(ctx, userID, n)
}

func (mock *sinkMock) PushCalls() []struct {
	UserID uuid.UUID
	N      *domain.Notification
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Push
}
