package domain

// MealType is one of the three daily meal slots.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealTypes lists every meal slot in serving order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner}

func (m MealType) String() string { return string(m) }

func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// SessionType is the attendance check of a day.
type SessionType string

const (
	SessionMorning SessionType = "morning"
	SessionEvening SessionType = "evening"
)

func (s SessionType) String() string { return string(s) }

func (s SessionType) IsValid() bool {
	switch s {
	case SessionMorning, SessionEvening:
		return true
	}
	return false
}

// ItemCategory groups inventory items.
type ItemCategory string

const (
	CategoryGrains     ItemCategory = "grains"
	CategoryVegetables ItemCategory = "vegetables"
	CategoryFruits     ItemCategory = "fruits"
	CategoryDairy      ItemCategory = "dairy"
	CategoryMeat       ItemCategory = "meat"
	CategorySpices     ItemCategory = "spices"
	CategoryBeverages  ItemCategory = "beverages"
	CategoryCleaning   ItemCategory = "cleaning"
	CategoryOther      ItemCategory = "other"
)

func (c ItemCategory) String() string { return string(c) }

func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryGrains, CategoryVegetables, CategoryFruits, CategoryDairy, CategoryMeat,
		CategorySpices, CategoryBeverages, CategoryCleaning, CategoryOther:
		return true
	}
	return false
}

// Unit is the measuring unit of an inventory item.
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitPieces     Unit = "pcs"
	UnitPackets    Unit = "packets"
	UnitDozen      Unit = "dozen"
)

func (u Unit) String() string { return string(u) }

func (u Unit) IsValid() bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitPieces, UnitPackets, UnitDozen:
		return true
	}
	return false
}

// NotificationType is the severity of a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationAlert   NotificationType = "alert"
)

func (n NotificationType) String() string { return string(n) }

func (n NotificationType) IsValid() bool {
	switch n {
	case NotificationInfo, NotificationSuccess, NotificationWarning, NotificationAlert:
		return true
	}
	return false
}

// AttendanceStatus is the mark of a single student in a session.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
)

func (s AttendanceStatus) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// UsageSource tells how an InventoryUsage was produced.
type UsageSource string

const (
	UsageScheduled UsageSource = "scheduled"
	UsageManual    UsageSource = "manual"
)

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleKitchen UserRole = "kitchen"
	UserRoleWarden  UserRole = "warden"
	UserRoleStudent UserRole = "student"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleKitchen, UserRoleWarden, UserRoleStudent:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// CanManageKitchen reports whether the role may record usage and edit stock.
func (r UserRole) CanManageKitchen() bool {
	return r == UserRoleAdmin || r == UserRoleKitchen
}
