package mealplan

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	GetByWeekdayFunc func(ctx context.Context, weekday string) (*domain.MealPlan, error)
	ListFunc         func(ctx context.Context) ([]*domain.MealPlan, error)
	UpsertFunc       func(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error)

	calls struct {
		Upsert []struct{ Plan *domain.MealPlan }
	}
	lock sync.RWMutex
}

func (mock *planRepoMock) GetByWeekday(ctx context.Context, weekday string) (*domain.MealPlan, error) {
	if mock.GetByWeekdayFunc == nil {
		panic("planRepoMock.GetByWeekdayFunc: method is nil but planRepo.GetByWeekday was just called")
	}
	return mock.GetByWeekdayFunc(ctx, weekday)
}

func (mock *planRepoMock) List(ctx context.Context) ([]*domain.MealPlan, error) {
	if mock.ListFunc == nil {
		panic("planRepoMock.ListFunc: method is nil but planRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *planRepoMock) Upsert(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error) {
	if mock.UpsertFunc == nil {
		panic("planRepoMock.UpsertFunc: method is nil but planRepo.Upsert was just called")
	}
	mock.lock.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct{ Plan *domain.MealPlan }{Plan: plan})
	mock.lock.Unlock()
	return mock.UpsertFunc(ctx, plan)
}

func (mock *planRepoMock) UpsertCalls() []struct{ Plan *domain.MealPlan } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Upsert
}

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)

	calls struct {
		GetByID []struct{ ID uuid.UUID }
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

func (mock *itemRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}
