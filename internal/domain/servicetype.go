package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType represents a bookable service in the catalog (e.g. "Classic Cut", 30m, $25)
type ServiceType struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
