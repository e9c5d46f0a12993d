package models

import "time"

// Meeting represents a calendar meeting. Start and end times are stored as
// HH:MM:SS strings alongside the date column; the two are not validated
// against each other.
type Meeting struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:2000" json:"description,omitempty"`
	Date        time.Time `gorm:"not null" json:"date"`
	StartTime   string    `gorm:"size:16;not null" json:"start_time"`
	EndTime     string    `gorm:"size:16;not null" json:"end_time"`
	Color       string    `gorm:"size:32" json:"color,omitempty"`

	Participants   []Participant   `gorm:"many2many:meeting_participant" json:"-"`
	Categories     []Category      `gorm:"many2many:category_meeting" json:"-"`
	RecurrenceRule *RecurrenceRule `gorm:"foreignKey:MeetingID" json:"-"`
	Reminders      []Reminder      `gorm:"foreignKey:MeetingID" json:"-"`
}

// TableName specifies the table name for the Meeting model
func (Meeting) TableName() string {
	return "meetings"
}

// CreateMeetingRequest represents the data needed to create a meeting
type CreateMeetingRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	Date           string `json:"date" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	Color          string `json:"color"`
	ParticipantIDs []uint `json:"participant_ids"`
	CategoryIDs    []uint `json:"category_ids"`
}

// UpdateMeetingRequest is a partial patch with the same semantics as
// UpdateTaskRequest.
type UpdateMeetingRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Date           *string `json:"date"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	Color          *string `json:"color"`
	ParticipantIDs *[]uint `json:"participant_ids"`
	CategoryIDs    *[]uint `json:"category_ids"`
}
