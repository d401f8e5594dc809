package domain

import (
	"time"
)

// Priority represents the priority level of a todo.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is assigned when a todo is created without an explicit priority.
const DefaultPriority = PriorityMedium

// ParsePriority converts a raw string into a Priority.
// An empty string yields the default; anything outside the enum is rejected.
func ParsePriority(s string) (Priority, bool) {
	if s == "" {
		return DefaultPriority, true
	}
	p := Priority(s)
	return p, p.Valid()
}

// Valid reports whether the priority is one of the three known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank returns the numeric sort weight for the priority.
// Unrecognized values rank below low so they sink to the bottom of listings.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// String returns the priority as its wire representation.
func (p Priority) String() string {
	return string(p)
}

// Todo represents a single todo item in the domain model.
// This is a pure domain model without database-specific concerns.
type Todo struct {
	ID        int64
	Content   string
	Priority  Priority
	CreatedAt time.Time
}

// IsValid checks if the todo has valid data.
func (t Todo) IsValid() bool {
	return t.Content != "" && t.Priority.Valid()
}

// String returns the todo content for display purposes.
func (t Todo) String() string {
	return t.Content
}
