package models

// Subtask belongs to exactly one task and is removed by the storage engine
// when its parent task is deleted.
type Subtask struct {
	ID        string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title     string `gorm:"type:varchar(200)" json:"title"`
	Completed int    `gorm:"default:0" json:"completed"`
	TaskID    string `gorm:"type:varchar(50);index" json:"task_id"`
}
