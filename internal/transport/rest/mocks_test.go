package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/internal/scheduler"
	"github.com/heartmarshall/hostel-backend/internal/service/consumption"
	"github.com/heartmarshall/hostel-backend/internal/service/inventory"
)

var (
	_ inventoryService = &inventoryServiceMock{}
	_ usageService     = &usageServiceMock{}
	_ jobRunner        = &jobRunnerMock{}
)

type inventoryServiceMock struct {
	CreateFunc func(ctx context.Context, input inventory.CreateItemInput) (*domain.InventoryItem, error)
	UpdateFunc func(ctx context.Context, input inventory.UpdateItemInput) (*domain.InventoryItem, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	ListFunc   func(ctx context.Context, input inventory.ListInput) ([]*domain.InventoryItem, int, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Create []inventory.CreateItemInput
		Update []inventory.UpdateItemInput
		List   []inventory.ListInput
		Delete []uuid.UUID
	}
}

func (m *inventoryServiceMock) Create(ctx context.Context, input inventory.CreateItemInput) (*domain.InventoryItem, error) {
	if m.CreateFunc == nil {
		panic("inventoryServiceMock.CreateFunc: method is nil but inventoryService.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, input)
	m.mu.Unlock()
	return m.CreateFunc(ctx, input)
}

func (m *inventoryServiceMock) Update(ctx context.Context, input inventory.UpdateItemInput) (*domain.InventoryItem, error) {
	if m.UpdateFunc == nil {
		panic("inventoryServiceMock.UpdateFunc: method is nil but inventoryService.Update was just called")
	}
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, input)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, input)
}

func (m *inventoryServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	if m.GetFunc == nil {
		panic("inventoryServiceMock.GetFunc: method is nil but inventoryService.Get was just called")
	}
	return m.GetFunc(ctx, id)
}

func (m *inventoryServiceMock) List(ctx context.Context, input inventory.ListInput) ([]*domain.InventoryItem, int, error) {
	if m.ListFunc == nil {
		panic("inventoryServiceMock.ListFunc: method is nil but inventoryService.List was just called")
	}
	m.mu.Lock()
	m.calls.List = append(m.calls.List, input)
	m.mu.Unlock()
	return m.ListFunc(ctx, input)
}

func (m *inventoryServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("inventoryServiceMock.DeleteFunc: method is nil but inventoryService.Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

type usageServiceMock struct {
	RecordManualFunc func(ctx context.Context, input consumption.ManualInput) (*domain.InventoryUsage, error)
	RunMealFunc      func(ctx context.Context, meal domain.MealType, date time.Time) (*consumption.RunResult, error)
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.InventoryUsage, error)
	ListFunc         func(ctx context.Context, input consumption.ListInput) ([]*domain.InventoryUsage, int, error)

	mu    sync.Mutex
	calls struct {
		RecordManual []consumption.ManualInput
		RunMeal      []struct {
			Meal domain.MealType
			Date time.Time
		}
		List []consumption.ListInput
	}
}

func (m *usageServiceMock) RecordManual(ctx context.Context, input consumption.ManualInput) (*domain.InventoryUsage, error) {
	if m.RecordManualFunc == nil {
		panic("usageServiceMock.RecordManualFunc: method is nil but usageService.RecordManual was just called")
	}
	m.mu.Lock()
	m.calls.RecordManual = append(m.calls.RecordManual, input)
	m.mu.Unlock()
	return m.RecordManualFunc(ctx, input)
}

func (m *usageServiceMock) RunMeal(ctx context.Context, meal domain.MealType, date time.Time) (*consumption.RunResult, error) {
	if m.RunMealFunc == nil {
		panic("usageServiceMock.RunMealFunc: method is nil but usageService.RunMeal was just called")
	}
	m.mu.Lock()
	m.calls.RunMeal = append(m.calls.RunMeal, struct {
		Meal domain.MealType
		Date time.Time
	}{meal, date})
	m.mu.Unlock()
	return m.RunMealFunc(ctx, meal, date)
}

func (m *usageServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.InventoryUsage, error) {
	if m.GetFunc == nil {
		panic("usageServiceMock.GetFunc: method is nil but usageService.Get was just called")
	}
	return m.GetFunc(ctx, id)
}

func (m *usageServiceMock) List(ctx context.Context, input consumption.ListInput) ([]*domain.InventoryUsage, int, error) {
	if m.ListFunc == nil {
		panic("usageServiceMock.ListFunc: method is nil but usageService.List was just called")
	}
	m.mu.Lock()
	m.calls.List = append(m.calls.List, input)
	m.mu.Unlock()
	return m.ListFunc(ctx, input)
}

type jobRunnerMock struct {
	JobsFunc    func() []scheduler.JobInfo
	TriggerFunc func(ctx context.Context, name string, at time.Time) error

	mu    sync.Mutex
	calls struct {
		Trigger []struct {
			Name string
			At   time.Time
		}
	}
}

func (m *jobRunnerMock) Jobs() []scheduler.JobInfo {
	if m.JobsFunc == nil {
		panic("jobRunnerMock.JobsFunc: method is nil but jobRunner.Jobs was just called")
	}
	return m.JobsFunc()
}

func (m *jobRunnerMock) Trigger(ctx context.Context, name string, at time.Time) error {
	if m.TriggerFunc == nil {
		panic("jobRunnerMock.TriggerFunc: method is nil but jobRunner.Trigger was just called")
	}
	m.mu.Lock()
	m.calls.Trigger = append(m.calls.Trigger, struct {
		Name string
		At   time.Time
	}{name, at})
	m.mu.Unlock()
	return m.TriggerFunc(ctx, name, at)
}
