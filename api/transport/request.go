package transport

type EventRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	Location    string `json:"location"`
	Color       string `json:"color"`
}

type ProjectRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	EventID     string `json:"event_id"`
	DueDate     string `json:"due_date"`
	Color       string `json:"color"`
}

type TaskRequest struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    int    `json:"priority"`
	DueDate     string `json:"due_date"`
	Result      string `json:"result"`
}

type SavingsRequest struct {
	BalanceCents int64 `json:"balance_cents"`
	GoalCents    int64 `json:"goal_cents"`
}

type NotifyTestRequest struct {
	TimeOfDay      string `json:"time_of_day"`
	ConnectionOnly bool   `json:"connection_only"`
}

type NotifyToggleRequest struct {
	Enabled bool `json:"enabled"`
}
