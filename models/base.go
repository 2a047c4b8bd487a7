package models

import (
	"fmt"
	"time"
)

// Timestamps is embedded by every table.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GuardError is returned by BeforeSave hooks when a write violates one of the
// non-negative amount guards. The same guards exist as CHECK constraints.
type GuardError struct {
	Table  string
	Column string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%s.%s must not be negative", e.Table, e.Column)
}

func negative(v *float64) bool {
	return v != nil && *v < 0
}
