package domain

// Default schedule values
// Сетка слотов фиксирована на 30 минут независимо от длительности услуги:
// равномерные, удобные для выбора времена вместо выравнивания по длительности
const (
	DefaultSlotStepMinutes = 30
	DefaultOpenTime        = "09:00"
	DefaultCloseTime       = "18:00"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxServiceNameLength      = 200

	MinWeekday = 0 // Sunday
	MaxWeekday = 6 // Saturday
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
