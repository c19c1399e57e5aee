package consumption

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// planRepoMock
// ---------------------------------------------------------------------------

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	GetByWeekdayFunc func(ctx context.Context, weekday string) (*domain.MealPlan, error)

	calls struct {
		GetByWeekday []struct{ Weekday string }
	}
	lock sync.RWMutex
}

func (mock *planRepoMock) GetByWeekday(ctx context.Context, weekday string) (*domain.MealPlan, error) {
	if mock.GetByWeekdayFunc == nil {
		panic("planRepoMock.GetByWeekdayFunc: method is nil but planRepo.GetByWeekday was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByWeekday = append(mock.calls.GetByWeekday, struct{ Weekday string }{Weekday: weekday})
	mock.lock.Unlock()
	return mock.GetByWeekdayFunc(ctx, weekday)
}

func (mock *planRepoMock) GetByWeekdayCalls() []struct{ Weekday string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByWeekday
}

// ---------------------------------------------------------------------------
// itemRepoMock
// ---------------------------------------------------------------------------

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	DebitFunc   func(ctx context.Context, id uuid.UUID, amount decimal.Decimal, now time.Time) (decimal.Decimal, error)

	calls struct {
		GetByID []struct{ ID uuid.UUID }
		Debit   []struct {
			ID     uuid.UUID
			Amount decimal.Decimal
		}
	}
	lock sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if mock.DebitFunc == nil {
		panic("itemRepoMock.DebitFunc: method is nil but itemRepo.Debit was just called")
	}
	mock.lock.Lock()
	mock.calls.Debit = append(mock.calls.Debit, struct {
		ID     uuid.UUID
		Amount decimal.Decimal
	}{ID: id, Amount: amount})
	mock.lock.Unlock()
	return mock.DebitFunc(ctx, id, amount, now)
}

func (mock *itemRepoMock) DebitCalls() []struct {
	ID     uuid.UUID
	Amount decimal.Decimal
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Debit
}

// ---------------------------------------------------------------------------
// usageRepoMock
// ---------------------------------------------------------------------------

var _ usageRepo = &usageRepoMock{}

type usageRepoMock struct {
	CreateFunc      func(ctx context.Context, u *domain.InventoryUsage) (*domain.InventoryUsage, error)
	ExistsByKeyFunc func(ctx context.Context, key string) (bool, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.InventoryUsage, error)
	ListFunc        func(ctx context.Context, f domain.UsageFilter) ([]*domain.InventoryUsage, int, error)

	calls struct {
		Create      []struct{ U *domain.InventoryUsage }
		ExistsByKey []struct{ Key string }
		List        []struct{ F domain.UsageFilter }
	}
	lock sync.RWMutex
}

func (mock *usageRepoMock) Create(ctx context.Context, u *domain.InventoryUsage) (*domain.InventoryUsage, error) {
	if mock.CreateFunc == nil {
		panic("usageRepoMock.CreateFunc: method is nil but usageRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ U *domain.InventoryUsage }{U: u})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *usageRepoMock) CreateCalls() []struct{ U *domain.InventoryUsage } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *usageRepoMock) ExistsByKey(ctx context.Context, key string) (bool, error) {
	if mock.ExistsByKeyFunc == nil {
		panic("usageRepoMock.ExistsByKeyFunc: method is nil but usageRepo.ExistsByKey was just called")
	}
	mock.lock.Lock()
	mock.calls.ExistsByKey = append(mock.calls.ExistsByKey, struct{ Key string }{Key: key})
	mock.lock.Unlock()
	return mock.ExistsByKeyFunc(ctx, key)
}

func (mock *usageRepoMock) ExistsByKeyCalls() []struct{ Key string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ExistsByKey
}

func (mock *usageRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryUsage, error) {
	if mock.GetByIDFunc == nil {
		panic("usageRepoMock.GetByIDFunc: method is nil but usageRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *usageRepoMock) List(ctx context.Context, f domain.UsageFilter) ([]*domain.InventoryUsage, int, error) {
	if mock.ListFunc == nil {
		panic("usageRepoMock.ListFunc: method is nil but usageRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ F domain.UsageFilter }{F: f})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *usageRepoMock) ListCalls() []struct{ F domain.UsageFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

// ---------------------------------------------------------------------------
// attendanceLookupMock
// ---------------------------------------------------------------------------

var _ attendanceLookup = &attendanceLookupMock{}

type attendanceLookupMock struct {
	AttendanceCountFunc func(ctx context.Context, sessionType domain.SessionType, date time.Time) (int, uuid.UUID, error)

	calls struct {
		AttendanceCount []struct {
			SessionType domain.SessionType
			Date        time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *attendanceLookupMock) AttendanceCount(ctx context.Context, sessionType domain.SessionType, date time.Time) (int, uuid.UUID, error) {
	if mock.AttendanceCountFunc == nil {
		panic("attendanceLookupMock.AttendanceCountFunc: method is nil but attendanceLookup.AttendanceCount was just called")
	}
	mock.lock.Lock()
	mock.calls.AttendanceCount = append(mock.calls.AttendanceCount, struct {
		SessionType domain.SessionType
		Date        time.Time
	}{SessionType: sessionType, Date: date})
	mock.lock.Unlock()
	return mock.AttendanceCountFunc(ctx, sessionType, date)
}

func (mock *attendanceLookupMock) AttendanceCountCalls() []struct {
	SessionType domain.SessionType
	Date        time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AttendanceCount
}

// ---------------------------------------------------------------------------
// alerterMock
// ---------------------------------------------------------------------------

var _ alerter = &alerterMock{}

type alerterMock struct {
	AlertFunc func(ctx context.Context, roles []domain.UserRole, title, message string, typ domain.NotificationType) (int, error)

	calls struct {
		Alert []struct {
			Roles   []domain.UserRole
			Title   string
			Message string
			Typ     domain.NotificationType
		}
	}
	lock sync.RWMutex
}

func (mock *alerterMock) Alert(ctx context.Context, roles []domain.UserRole, title, message string, typ domain.NotificationType) (int, error) {
	if mock.AlertFunc == nil {
		panic("alerterMock.AlertFunc: method is nil but alerter.Alert was just called")
	}
	mock.lock.Lock()
	mock.calls.Alert = append(mock.calls.Alert, struct {
		Roles   []domain.UserRole
		Title   string
		Message string
		Typ     domain.NotificationType
	}{Roles: roles, Title: title, Message: message, Typ: typ})
	mock.lock.Unlock()
	return mock.AlertFunc(ctx, roles, title, message, typ)
}

func (mock *alerterMock) AlertCalls() []struct {
	Roles   []domain.UserRole
	Title   string
	Message string
	Typ     domain.NotificationType
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Alert
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
