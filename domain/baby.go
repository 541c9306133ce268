package domain

import "time"

// BabySavings is the single savings tracker row. Amounts are kept in cents
// to avoid floating-point drift.
type BabySavings struct {
	BalanceCents int64     `json:"balance_cents"`
	GoalCents    int64     `json:"goal_cents"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BabyItem is a planned purchase on the baby checklist.
type BabyItem struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	PriceCents int64     `json:"price_cents"`
	Purchased  bool      `json:"purchased"`
	ImagePath  string    `json:"image_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
