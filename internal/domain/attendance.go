package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is the mark of one student in a session.
type AttendanceRecord struct {
	StudentID uuid.UUID
	Status    AttendanceStatus
}

// AttendanceSession is the roll call of one session on one calendar day.
// Counts are derived from Records and never set independently.
type AttendanceSession struct {
	ID            uuid.UUID
	SessionType   SessionType
	SessionDate   time.Time
	PresentCount  int
	AbsentCount   int
	TotalStudents int
	Records       []AttendanceRecord
	MarkedBy      uuid.UUID
	MarkedAt      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Recount derives present, absent and total counts from the records.
func (s *AttendanceSession) Recount() {
	s.PresentCount, s.AbsentCount = 0, 0
	for _, r := range s.Records {
		if r.Status == StatusPresent {
			s.PresentCount++
		} else {
			s.AbsentCount++
		}
	}
	s.TotalStudents = len(s.Records)
}
