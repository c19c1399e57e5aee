package attendance

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// RecordInput is the mark of one student.
type RecordInput struct {
	StudentID uuid.UUID
	Status    domain.AttendanceStatus
}

// CreateSessionInput holds the parameters for recording a roll call.
type CreateSessionInput struct {
	SessionType domain.SessionType
	Date        time.Time
	Records     []RecordInput
}

// Validate checks all fields and collects all errors.
func (i CreateSessionInput) Validate() error {
	var errs []domain.FieldError

	if !i.SessionType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sessionType", Message: "must be morning or evening"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	errs = append(errs, validateRecords(i.Records)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRecordsInput replaces the records of an existing session.
type UpdateRecordsInput struct {
	SessionID uuid.UUID
	Records   []RecordInput
}

// Validate checks all fields and collects all errors.
func (i UpdateRecordsInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "sessionId", Message: "required"})
	}
	errs = append(errs, validateRecords(i.Records)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateRecords(records []RecordInput) []domain.FieldError {
	var errs []domain.FieldError
	seen := make(map[uuid.UUID]bool, len(records))
	for idx, r := range records {
		field := fmt.Sprintf("records[%d]", idx)
		if r.StudentID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: field + ".studentId", Message: "required"})
		} else if seen[r.StudentID] {
			errs = append(errs, domain.FieldError{Field: field + ".studentId", Message: "duplicate student"})
		}
		seen[r.StudentID] = true
		if !r.Status.IsValid() {
			errs = append(errs, domain.FieldError{Field: field + ".status", Message: "must be present or absent"})
		}
	}
	return errs
}

// ListInput narrows a session listing. Zero dates are open bounds.
type ListInput struct {
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if !i.From.IsZero() && !i.To.IsZero() && i.To.Before(i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
