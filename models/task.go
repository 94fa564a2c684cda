package models

import (
	"time"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DefaultCategory is applied when a task is created without one.
const DefaultCategory = "General"

// Task belongs to exactly one user. UserID and CreatedAt are set at creation
// and never updated. DueDate is stored as given, without validation.
type Task struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200)" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Priority    string    `gorm:"type:varchar(20);default:medium" json:"priority"`
	Category    string    `gorm:"type:varchar(100);default:General" json:"category"`
	DueDate     string    `gorm:"type:varchar(50)" json:"due_date"`
	Completed   int       `gorm:"default:0" json:"completed"`
	UserID      string    `gorm:"type:varchar(50);index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`

	Subtasks []Subtask `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"subtasks"`
}

// ValidPriority reports whether p is one of the three known levels.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
