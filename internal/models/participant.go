package models

// Participant represents a person who can be attached to tasks, meetings
// and reminders. The password hash is never serialized.
type Participant struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Email      string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	HashedPass string `gorm:"size:255;not null" json:"-"`

	Tasks     []Task     `gorm:"many2many:task_participant" json:"-"`
	Meetings  []Meeting  `gorm:"many2many:meeting_participant" json:"-"`
	Reminders []Reminder `gorm:"many2many:reminder_participant" json:"-"`
}

// TableName specifies the table name for the Participant model
func (Participant) TableName() string {
	return "participants"
}

// CreateParticipantRequest represents the data needed to create a participant
// without credentials. Accounts with a password go through /signup instead.
type CreateParticipantRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// SignupRequest represents the data needed to register an account
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the data needed for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
