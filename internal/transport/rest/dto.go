package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/internal/service/consumption"
)

// Page wraps a listing with the total matching count.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ItemResponse is an inventory item on the wire.
type ItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	Unit         string          `json:"unit"`
	MinimumStock decimal.Decimal `json:"minimumStock"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	LowStock     bool            `json:"lowStock"`
	LastUpdated  time.Time       `json:"lastUpdated"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func toItemResponse(i *domain.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		Category:     string(i.Category),
		CurrentStock: i.CurrentStock,
		Unit:         string(i.Unit),
		MinimumStock: i.MinimumStock,
		CostPerUnit:  i.CostPerUnit,
		LowStock:     i.IsLow(),
		LastUpdated:  i.LastUpdated,
		CreatedAt:    i.CreatedAt,
	}
}

// MealPlanResponse is the plan of one weekday.
type MealPlanResponse struct {
	ID        uuid.UUID       `json:"id"`
	Weekday   string          `json:"weekday"`
	Breakfast domain.MealSlot `json:"breakfast"`
	Lunch     domain.MealSlot `json:"lunch"`
	Dinner    domain.MealSlot `json:"dinner"`
	UpdatedBy uuid.UUID       `json:"updatedBy"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func toMealPlanResponse(p *domain.MealPlan) MealPlanResponse {
	return MealPlanResponse{
		ID:        p.ID,
		Weekday:   p.Weekday,
		Breakfast: nonNilSlot(p.Breakfast),
		Lunch:     nonNilSlot(p.Lunch),
		Dinner:    nonNilSlot(p.Dinner),
		UpdatedBy: p.UpdatedBy,
		UpdatedAt: p.UpdatedAt,
	}
}

// nonNilSlot keeps empty meals as [] rather than null in JSON.
func nonNilSlot(s domain.MealSlot) domain.MealSlot {
	if s.Foods == nil {
		s.Foods = []string{}
	}
	if s.Inventory == nil {
		s.Inventory = []domain.PlanItem{}
	}
	return s
}

// AttendanceRecordResponse is one student's mark.
type AttendanceRecordResponse struct {
	StudentID uuid.UUID `json:"studentId"`
	Status    string    `json:"status"`
}

// AttendanceResponse is a roll call session.
type AttendanceResponse struct {
	ID            uuid.UUID                  `json:"id"`
	SessionType   string                     `json:"sessionType"`
	SessionDate   string                     `json:"sessionDate"`
	PresentCount  int                        `json:"presentCount"`
	AbsentCount   int                        `json:"absentCount"`
	TotalStudents int                        `json:"totalStudents"`
	Records       []AttendanceRecordResponse `json:"records"`
	MarkedBy      uuid.UUID                  `json:"markedBy"`
	MarkedAt      time.Time                  `json:"markedAt"`
	UpdatedAt     time.Time                  `json:"updatedAt"`
}

func toAttendanceResponse(s *domain.AttendanceSession) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            s.ID,
		SessionType:   string(s.SessionType),
		SessionDate:   domain.FormatDate(s.SessionDate),
		PresentCount:  s.PresentCount,
		AbsentCount:   s.AbsentCount,
		TotalStudents: s.TotalStudents,
		Records:       make([]AttendanceRecordResponse, len(s.Records)),
		MarkedBy:      s.MarkedBy,
		MarkedAt:      s.MarkedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	for i, r := range s.Records {
		resp.Records[i] = AttendanceRecordResponse{StudentID: r.StudentID, Status: string(r.Status)}
	}
	return resp
}

// UsageResponse is an inventory usage record.
type UsageResponse struct {
	ID                  uuid.UUID          `json:"id"`
	UsageDate           string             `json:"usageDate"`
	MealType            string             `json:"mealType"`
	Items               []domain.UsageItem `json:"items"`
	AttendanceCount     int                `json:"attendanceCount"`
	AttendanceSessionID *uuid.UUID         `json:"attendanceSessionId,omitempty"`
	RecordedBy          uuid.UUID          `json:"recordedBy"`
	Source              string             `json:"source"`
	Notes               string             `json:"notes,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
}

func toUsageResponse(u *domain.InventoryUsage) UsageResponse {
	items := u.Items
	if items == nil {
		items = []domain.UsageItem{}
	}
	return UsageResponse{
		ID:                  u.ID,
		UsageDate:           domain.FormatDate(u.UsageDate),
		MealType:            string(u.MealType),
		Items:               items,
		AttendanceCount:     u.AttendanceCount,
		AttendanceSessionID: u.AttendanceSessionID,
		RecordedBy:          u.RecordedBy,
		Source:              string(u.Source),
		Notes:               u.Notes,
		CreatedAt:           u.CreatedAt,
	}
}

// NotificationResponse is one inbox entry.
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func toNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// StudentResponse is a resident.
type StudentResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	RoomNumber string    `json:"roomNumber"`
	Active     bool      `json:"active"`
}

func toStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{ID: s.ID, Name: s.Name, RoomNumber: s.RoomNumber, Active: s.Active}
}

// DebitResponse is one item debited by a consumption run.
type DebitResponse struct {
	ItemID       uuid.UUID       `json:"itemId"`
	ItemName     string          `json:"itemName"`
	Unit         string          `json:"unit"`
	BaseQuantity decimal.Decimal `json:"baseQuantity"`
	Deducted     decimal.Decimal `json:"deducted"`
	Remaining    decimal.Decimal `json:"remaining"`
}

// RunResponse reports a triggered consumption run.
type RunResponse struct {
	MealType        string          `json:"mealType"`
	Date            string          `json:"date"`
	Outcome         string          `json:"outcome"`
	AttendanceCount int             `json:"attendanceCount"`
	Successes       []DebitResponse `json:"successes"`
	Errors          []string        `json:"errors"`
	Usage           *UsageResponse  `json:"usage,omitempty"`
}

func toRunResponse(res *consumption.RunResult) RunResponse {
	successes := mapSlice(res.Successes, func(s consumption.ItemSuccess) DebitResponse {
		return DebitResponse{
			ItemID:       s.ItemID,
			ItemName:     s.ItemName,
			Unit:         string(s.Unit),
			BaseQuantity: s.BaseQuantity,
			Deducted:     s.Deducted,
			Remaining:    s.Remaining,
		}
	})

	resp := RunResponse{
		MealType:        string(res.MealType),
		Date:            domain.FormatDate(res.Date),
		Outcome:         string(res.Outcome),
		AttendanceCount: res.AttendanceCount,
		Successes:       successes,
		Errors:          res.Errors,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	if res.Usage != nil {
		u := toUsageResponse(res.Usage)
		resp.Usage = &u
	}
	return resp
}

func mapSlice[S any, D any](in []S, f func(S) D) []D {
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
