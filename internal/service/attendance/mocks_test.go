package attendance

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.AttendanceSession, error)
	GetByDateFunc     func(ctx context.Context, sessionType domain.SessionType, date time.Time) (*domain.AttendanceSession, error)
	ListFunc          func(ctx context.Context, from, to time.Time, limit, offset int) ([]*domain.AttendanceSession, error)
	CreateFunc        func(ctx context.Context, s *domain.AttendanceSession) (*domain.AttendanceSession, error)
	UpdateRecordsFunc func(ctx context.Context, s *domain.AttendanceSession) (*domain.AttendanceSession, error)

	calls struct {
		GetByDate []struct {
			SessionType domain.SessionType
			Date        time.Time
		}
		List []struct {
			From, To      time.Time
			Limit, Offset int
		}
		Create        []struct{ S *domain.AttendanceSession }
		UpdateRecords []struct{ S *domain.AttendanceSession }
	}
	lock sync.RWMutex
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.AttendanceSession, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sessionRepoMock) GetByDate(ctx context.Context, sessionType domain.SessionType, date time.Time) (*domain.AttendanceSession, error) {
	if mock.GetByDateFunc == nil {
		panic("sessionRepoMock.GetByDateFunc: method is nil but sessionRepo.GetByDate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByDate = append(mock.calls.GetByDate, struct {
		SessionType domain.SessionType
		Date        time.Time
	}{SessionType: sessionType, Date: date})
	mock.lock.Unlock()
	return mock.GetByDateFunc(ctx, sessionType, date)
}

func (mock *sessionRepoMock) GetByDateCalls() []struct {
	SessionType domain.SessionType
	Date        time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByDate
}

func (mock *sessionRepoMock) List(ctx context.Context, from, to time.Time, limit, offset int) ([]*domain.AttendanceSession, error) {
	if mock.ListFunc == nil {
		panic("sessionRepoMock.ListFunc: method is nil but sessionRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		From, To      time.Time
		Limit, Offset int
	}{From: from, To: to, Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, from, to, limit, offset)
}

func (mock *sessionRepoMock) ListCalls() []struct {
	From, To      time.Time
	Limit, Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *sessionRepoMock) Create(ctx context.Context, s *domain.AttendanceSession) (*domain.AttendanceSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ S *domain.AttendanceSession }{S: s})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct{ S *domain.AttendanceSession } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *sessionRepoMock) UpdateRecords(ctx context.Context, s *domain.AttendanceSession) (*domain.AttendanceSession, error) {
	if mock.UpdateRecordsFunc == nil {
		panic("sessionRepoMock.UpdateRecordsFunc: method is nil but sessionRepo.UpdateRecords was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateRecords = append(mock.calls.UpdateRecords, struct{ S *domain.AttendanceSession }{S: s})
	mock.lock.Unlock()
	return mock.UpdateRecordsFunc(ctx, s)
}

func (mock *sessionRepoMock) UpdateRecordsCalls() []struct{ S *domain.AttendanceSession } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateRecords
}

var _ studentRepo = &studentRepoMock{}

type studentRepoMock struct {
	CountExistingFunc func(ctx context.Context, ids []uuid.UUID) (int, error)
}

func (mock *studentRepoMock) CountExisting(ctx context.Context, ids []uuid.UUID) (int, error) {
	if mock.CountExistingFunc == nil {
		panic("studentRepoMock.CountExistingFunc: method is nil but studentRepo.CountExisting was just called")
	}
	return mock.CountExistingFunc(ctx, ids)
}
