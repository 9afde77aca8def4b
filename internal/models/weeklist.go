package models

import "time"

const (
	StateActive    = "active"
	StateInactive  = "inactive"
	StateCompleted = "completed"
)

// Weeklist is persisted as a single row with the task
// collection embedded as a JSONB array, so every mutation
// replaces the whole aggregate.
type Weeklist struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Tasks     []Task    `json:"tasks"`
	EndTime   time.Time `json:"endTime"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Task struct {
	ID            string     `json:"id"`
	Task          string     `json:"task"`
	IsCompleted   bool       `json:"isCompleted"`
	CompletedTime *time.Time `json:"completedTime,omitempty"`
}
