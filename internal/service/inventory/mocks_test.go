package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	ListFunc    func(ctx context.Context, f domain.ItemFilter) ([]*domain.InventoryItem, int, error)
	CreateFunc  func(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	UpdateFunc  func(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List   []struct{ F domain.ItemFilter }
		Create []struct{ Item *domain.InventoryItem }
		Update []struct{ Item *domain.InventoryItem }
	}
	lock sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) List(ctx context.Context, f domain.ItemFilter) ([]*domain.InventoryItem, int, error) {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ F domain.ItemFilter }{F: f})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *itemRepoMock) ListCalls() []struct{ F domain.ItemFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Item *domain.InventoryItem }{Item: item})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct{ Item *domain.InventoryItem } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *itemRepoMock) Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Item *domain.InventoryItem }{Item: item})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, item)
}

func (mock *itemRepoMock) UpdateCalls() []struct{ Item *domain.InventoryItem } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *itemRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}
