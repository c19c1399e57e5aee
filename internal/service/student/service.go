// Package student manages the resident roster.
package student

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

type studentRepo interface {
	Create(ctx context.Context, s *domain.Student) error
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]*domain.Student, error)
}

type Service struct {
	log      *slog.Logger
	students studentRepo
}

func NewService(log *slog.Logger, students studentRepo) *Service {
	return &Service{
		log:      log.With("service", "student"),
		students: students,
	}
}

// CreateInput holds the parameters for registering a student.
type CreateInput struct {
	Name       string
	RoomNumber string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := domain.CleanName(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	room := strings.TrimSpace(i.RoomNumber)
	if room == "" {
		errs = append(errs, domain.FieldError{Field: "roomNumber", Message: "required"})
	} else if len(room) > 20 {
		errs = append(errs, domain.FieldError{Field: "roomNumber", Message: "max 20 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create registers an active student.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Student, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	st := &domain.Student{
		ID:         uuid.New(),
		Name:       domain.CleanName(input.Name),
		RoomNumber: strings.ToUpper(strings.TrimSpace(input.RoomNumber)),
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.students.Create(ctx, st); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}

	s.log.InfoContext(ctx, "student created",
		slog.String("student_id", st.ID.String()),
		slog.String("room", st.RoomNumber))
	return st, nil
}

// List returns students ordered by room.
func (s *Service) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*domain.Student, error) {
	if limit < 0 || limit > MaxLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", MaxLimit))
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must be non-negative")
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	return s.students.List(ctx, activeOnly, limit, offset)
}
