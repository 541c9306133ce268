package domain

import "time"

// Project priorities.
const (
	ProjectPriorityLow    = "low"
	ProjectPriorityMedium = "medium"
	ProjectPriorityHigh   = "high"
)

// Project groups tasks on the planner board. Deleting a project cascades to
// its tasks at the database level.
type Project struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	EventID     *string    `json:"event_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Color       string     `json:"color,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ValidProjectPriority reports whether p is one of the three allowed values.
// Empty is allowed and treated as medium by the usecase layer.
func ValidProjectPriority(p string) bool {
	switch p {
	case "", ProjectPriorityLow, ProjectPriorityMedium, ProjectPriorityHigh:
		return true
	}
	return false
}
