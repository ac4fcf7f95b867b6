package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HF-AvailabilityService/pkg/types"
)

// Appointment represents a booked slot on the shop's single shared calendar
type Appointment struct {
	ID            uuid.UUID
	ServiceTypeID uuid.UUID // ссылка по id, переживает удаление услуги из каталога
	Date          time.Time // дата без времени
	StartTime     types.TimeString
	DurationMinutes int

	// Denormalized snapshot of the service type at booking time.
	// Catalog edits after booking never change an existing appointment.
	ServiceName string
	Price       float64

	CreatedAt time.Time
}

// Interval returns the occupied time range [start, start+duration) in minutes of day
func (a *Appointment) Interval() (Interval, error) {
	start, err := a.StartTime.MinuteOfDay()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: start + a.DurationMinutes}, nil
}

// IsOnDate returns true if the appointment is booked for the given calendar date
func (a *Appointment) IsOnDate(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
