package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleConfig_WorksOn(t *testing.T) {
	schedule := ScheduleConfig{WorkingDays: []int{1, 2, 3, 4, 5, 6}}

	assert.True(t, schedule.WorksOn(time.Monday))
	assert.True(t, schedule.WorksOn(time.Saturday))
	assert.False(t, schedule.WorksOn(time.Sunday))

	empty := ScheduleConfig{}
	assert.False(t, empty.WorksOn(time.Monday))
}

func TestScheduleConfig_Window(t *testing.T) {
	schedule := ScheduleConfig{OpenTime: "09:00", CloseTime: "18:00"}
	open, close, ok := schedule.Window()
	assert.True(t, ok)
	assert.Equal(t, 540, open)
	assert.Equal(t, 1080, close)

	// Вырожденное окно
	inverted := ScheduleConfig{OpenTime: "18:00", CloseTime: "09:00"}
	_, _, ok = inverted.Window()
	assert.False(t, ok)

	zeroWidth := ScheduleConfig{OpenTime: "10:00", CloseTime: "10:00"}
	_, _, ok = zeroWidth.Window()
	assert.False(t, ok)

	// Нечитаемое время
	unparsable := ScheduleConfig{OpenTime: "bad", CloseTime: "18:00"}
	_, _, ok = unparsable.Window()
	assert.False(t, ok)
}

func TestScheduleConfig_Step(t *testing.T) {
	tests := []struct {
		step int
		want int
	}{
		{step: 0, want: 30},
		{step: -5, want: 30},
		{step: 15, want: 15},
	}

	for _, tt := range tests {
		schedule := ScheduleConfig{SlotStepMinutes: tt.step}
		assert.Equal(t, tt.want, schedule.Step())
	}
}
