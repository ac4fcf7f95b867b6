package domain

import (
	"time"

	"github.com/m04kA/HF-AvailabilityService/pkg/types"
)

// ScheduleConfig represents the shop's operating schedule
// A degenerate configuration (openTime >= closeTime, or no working days) is not
// an error: slot enumeration simply yields no availability for it
type ScheduleConfig struct {
	WorkingDays     []int // дни недели 0-6, 0 = воскресенье
	OpenTime        types.TimeString
	CloseTime       types.TimeString
	SlotStepMinutes int // шаг сетки слотов, по умолчанию 30

	UpdatedAt time.Time
}

// ScheduleUpdate частичное обновление расписания
// nil-поля остаются без изменений
type ScheduleUpdate struct {
	WorkingDays     *[]int
	OpenTime        *types.TimeString
	CloseTime       *types.TimeString
	SlotStepMinutes *int
}

// IsEmpty returns true if the update changes nothing
func (u *ScheduleUpdate) IsEmpty() bool {
	return u.WorkingDays == nil && u.OpenTime == nil && u.CloseTime == nil && u.SlotStepMinutes == nil
}

// WorksOn returns true if the shop accepts appointments on the given weekday
func (c *ScheduleConfig) WorksOn(weekday time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// Window returns the operating window [open, close) in minutes of day.
// ok is false for an unparsable or degenerate (open >= close) configuration.
func (c *ScheduleConfig) Window() (open, close int, ok bool) {
	open, err := c.OpenTime.MinuteOfDay()
	if err != nil {
		return 0, 0, false
	}
	close, err = c.CloseTime.MinuteOfDay()
	if err != nil {
		return 0, 0, false
	}
	if open >= close {
		return open, close, false
	}
	return open, close, true
}

// Step returns the slot grid step, falling back to the default for unset values
func (c *ScheduleConfig) Step() int {
	if c.SlotStepMinutes <= 0 {
		return DefaultSlotStepMinutes
	}
	return c.SlotStepMinutes
}
