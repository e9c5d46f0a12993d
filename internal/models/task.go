package models

import "time"

// Wire formats for dates and times. Due dates and meeting dates travel as
// bare dates, reminder times as a space-separated datetime.
const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04:05"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Task represents a to-do item with a due date
type Task struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:2000" json:"description,omitempty"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	Color       string    `gorm:"size:32" json:"color,omitempty"`

	Participants []Participant `gorm:"many2many:task_participant" json:"-"`
	Categories   []Category    `gorm:"many2many:category_task" json:"-"`
	Reminders    []Reminder    `gorm:"foreignKey:TaskID" json:"-"`
}

// TableName specifies the table name for the Task model
func (Task) TableName() string {
	return "tasks"
}

// CreateTaskRequest represents the data needed to create a task
type CreateTaskRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	DueDate        string `json:"due_date" binding:"required"`
	Color          string `json:"color"`
	ParticipantIDs []uint `json:"participant_ids"`
	CategoryIDs    []uint `json:"category_ids"`
}

// UpdateTaskRequest is a partial patch. Nil fields are left untouched.
// A present participant or category list, even an empty one, replaces the
// full association set.
type UpdateTaskRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	DueDate        *string `json:"due_date"`
	Color          *string `json:"color"`
	ParticipantIDs *[]uint `json:"participant_ids"`
	CategoryIDs    *[]uint `json:"category_ids"`
}
