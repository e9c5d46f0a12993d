package models

import "time"

// Reminder is an inert note pinned to exactly one task or meeting. Nothing
// fires reminders; they are delivered only on demand via the notifications
// endpoints.
type Reminder struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Message      string    `gorm:"size:2000;not null" json:"message"`
	ReminderTime time.Time `gorm:"not null" json:"reminder_time"`
	TaskID       *uint     `json:"task_id"`
	MeetingID    *uint     `json:"meeting_id"`

	Participants []Participant `gorm:"many2many:reminder_participant" json:"-"`
}

// TableName specifies the table name for the Reminder model
func (Reminder) TableName() string {
	return "reminders"
}

// CreateReminderRequest represents the data needed to create a reminder.
// Exactly one of TaskID and MeetingID must be set.
type CreateReminderRequest struct {
	Message        string `json:"message" binding:"required"`
	ReminderTime   string `json:"reminder_time" binding:"required"`
	TaskID         *uint  `json:"task_id"`
	MeetingID      *uint  `json:"meeting_id"`
	ParticipantIDs []uint `json:"participant_ids"`
}
