package domain

import "time"

// Service represents an entry of the service catalog
type Service struct {
	ID              int64
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
