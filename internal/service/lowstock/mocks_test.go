package lowstock

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	ListLowFunc func(ctx context.Context) ([]*domain.InventoryItem, error)

	calls struct {
		ListLow []struct{}
	}
	lock sync.RWMutex
}

func (mock *itemRepoMock) ListLow(ctx context.Context) ([]*domain.InventoryItem, error) {
	if mock.ListLowFunc == nil {
		panic("itemRepoMock.ListLowFunc: method is nil but itemRepo.ListLow was just called")
	}
	mock.lock.Lock()
	mock.calls.ListLow = append(mock.calls.ListLow, struct{}{})
	mock.lock.Unlock()
	return mock.ListLowFunc(ctx)
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

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyOncePerDayFunc func(ctx context.Context, user *domain.User, title, message string, typ domain.NotificationType, dayStart time.Time) (bool, error)

	calls struct {
		NotifyOncePerDay []struct {
			User     *domain.User
			Title    string
			Message  string
			Typ      domain.NotificationType
			DayStart time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *notifierMock) NotifyOncePerDay(ctx context.Context, user *domain.User, title, message string, typ domain.NotificationType, dayStart time.Time) (bool, error) {
	if mock.NotifyOncePerDayFunc == nil {
		panic("notifierMock.NotifyOncePerDayFunc: method is nil but notifier.NotifyOncePerDay was just called")
	}
	mock.lock.Lock()
	mock.calls.NotifyOncePerDay = append(mock.calls.NotifyOncePerDay, struct {
		User     *domain.User
		Title    string
		Message  string
		Typ      domain.NotificationType
		DayStart time.Time
	}{User: user, Title: title, Message: message, Typ: typ, DayStart: dayStart})
	mock.lock.Unlock()
	return mock.NotifyOncePerDayFunc(ctx, user, title, message, typ, dayStart)
}

func (mock *notifierMock) NotifyOncePerDayCalls() []struct {
	User     *domain.User
	Title    string
	Message  string
	Typ      domain.NotificationType
	DayStart time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.NotifyOncePerDay
}
