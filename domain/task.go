package domain

import (
	"regexp"
	"strings"
	"time"
)

// Task and project statuses. These are the only valid values.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// Task priorities as stored on the task row. Zero means "not set".
const (
	PriorityLow    = 1
	PriorityNormal = 2
	PriorityHigh   = 3
)

// Task is a single unit of work owned by exactly one project.
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    int        `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Result      string     `json:"result,omitempty"`
	Images      []string   `json:"images,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Task) IsDone() bool {
	return t != nil && t.Status == StatusDone
}

// ValidStatus reports whether s is one of the three allowed status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ValidTaskPriority accepts the 1..3 range or zero for "not set".
func ValidTaskPriority(p int) bool {
	return p >= 0 && p <= PriorityHigh
}

// Older clients stored the answer inline in the description instead of the
// dedicated result column. Compatibility shim, not a primary code path.
var legacyAnswerRe = regexp.MustCompile(`(?mi)^\s*(?:answer|result)\s*:\s*(.+)$`)

// ResolvedResult returns the task's result text. The dedicated result field
// is authoritative; the legacy embedded answer is consulted only when it is
// absent.
func (t *Task) ResolvedResult() string {
	if t == nil {
		return ""
	}
	if strings.TrimSpace(t.Result) != "" {
		return strings.TrimSpace(t.Result)
	}
	if m := legacyAnswerRe.FindStringSubmatch(t.Description); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
