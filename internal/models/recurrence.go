package models

import "time"

// RecurrenceFrequency is the closed set of supported repeat frequencies
type RecurrenceFrequency string

const (
	Daily   RecurrenceFrequency = "daily"
	Weekly  RecurrenceFrequency = "weekly"
	Monthly RecurrenceFrequency = "monthly"
	Yearly  RecurrenceFrequency = "yearly"
)

// RecurrenceRule is stored metadata describing how a meeting conceptually
// repeats. No component expands a rule into concrete occurrence dates.
type RecurrenceRule struct {
	ID        uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	MeetingID uint                `gorm:"uniqueIndex;not null" json:"meeting_id"`
	Frequency RecurrenceFrequency `gorm:"size:16;not null" json:"frequency"`
	Interval  int                 `gorm:"not null;default:1" json:"interval"`
	EndDate   *time.Time          `json:"end_date,omitempty"`

	Meeting Meeting `gorm:"foreignKey:MeetingID" json:"-"`
}

// TableName specifies the table name for the RecurrenceRule model
func (RecurrenceRule) TableName() string {
	return "recurrence_rules"
}

// CreateRecurrenceRequest creates a meeting together with its recurrence
// rule. Both rows are written in a single transaction.
type CreateRecurrenceRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Date        string              `json:"date" binding:"required"`
	StartTime   string              `json:"start_time" binding:"required"`
	EndTime     string              `json:"end_time" binding:"required"`
	Color       string              `json:"color"`
	Frequency   RecurrenceFrequency `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	Interval    int                 `json:"interval"`
	EndDate     string              `json:"end_date"`
}
