package models

// Association join tables carry their own autoincrement id so related rows
// can be read back in the order they were attached. The FK pair stays
// unique per table.

type TaskParticipant struct {
	ID            uint `gorm:"primaryKey;autoIncrement"`
	TaskID        uint `gorm:"not null;uniqueIndex:uq_task_participant"`
	ParticipantID uint `gorm:"not null;uniqueIndex:uq_task_participant"`
}

func (TaskParticipant) TableName() string {
	return "task_participant"
}

type MeetingParticipant struct {
	ID            uint `gorm:"primaryKey;autoIncrement"`
	MeetingID     uint `gorm:"not null;uniqueIndex:uq_meeting_participant"`
	ParticipantID uint `gorm:"not null;uniqueIndex:uq_meeting_participant"`
}

func (MeetingParticipant) TableName() string {
	return "meeting_participant"
}

type CategoryTask struct {
	ID         uint `gorm:"primaryKey;autoIncrement"`
	TaskID     uint `gorm:"not null;uniqueIndex:uq_category_task"`
	CategoryID uint `gorm:"not null;uniqueIndex:uq_category_task"`
}

func (CategoryTask) TableName() string {
	return "category_task"
}

type CategoryMeeting struct {
	ID         uint `gorm:"primaryKey;autoIncrement"`
	MeetingID  uint `gorm:"not null;uniqueIndex:uq_category_meeting"`
	CategoryID uint `gorm:"not null;uniqueIndex:uq_category_meeting"`
}

func (CategoryMeeting) TableName() string {
	return "category_meeting"
}

type ReminderParticipant struct {
	ID            uint `gorm:"primaryKey;autoIncrement"`
	ReminderID    uint `gorm:"not null;uniqueIndex:uq_reminder_participant"`
	ParticipantID uint `gorm:"not null;uniqueIndex:uq_reminder_participant"`
}

func (ReminderParticipant) TableName() string {
	return "reminder_participant"
}
