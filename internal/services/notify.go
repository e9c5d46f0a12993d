package services

import (
	"fmt"

	"booksmart/internal/models"
)

// Notifier formats meeting invitations and task assignments and delivers
// them one recipient at a time. The first transport failure aborts the
// loop; earlier sends are not rolled back or reported individually.
type Notifier struct {
	sender Sender
}

func NewNotifier(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

// MeetingInvite emails every participant of a meeting
func (n *Notifier) MeetingInvite(meeting models.Meeting, recipients []models.Participant) error {
	subject := fmt.Sprintf("You're Invited: %s", meeting.Title)
	body := fmt.Sprintf(`Hi there,

I hope this message finds you well! You're invited to join the meeting %q, and we'd love to have you there.

Here are the details:
- Description: %s
- Date: %s
- Time: %s to %s

Feel free to reach out if you have any questions or need further details. Looking forward to your participation!

Warm regards,
The Team
`,
		meeting.Title,
		orDefault(meeting.Description, "No description provided"),
		meeting.Date.Format(models.DateFormat),
		meeting.StartTime,
		meeting.EndTime,
	)

	return n.deliver(subject, body, recipients)
}

// TaskAssignment emails every participant assigned to a task
func (n *Notifier) TaskAssignment(task models.Task, recipients []models.Participant) error {
	subject := fmt.Sprintf("Task Assigned: %s", task.Title)
	body := fmt.Sprintf(`Hi there,

You've been assigned to the task %q, and we're counting on you to get it done!

Here's what you need to know:
- Description: %s
- Due Date: %s

Let us know if you have any questions or if there's anything you need to complete the task. We're here to help!

Best regards,
The Team
`,
		task.Title,
		orDefault(task.Description, "No description provided"),
		task.DueDate.Format(models.DateFormat),
	)

	return n.deliver(subject, body, recipients)
}

func (n *Notifier) deliver(subject, body string, recipients []models.Participant) error {
	for _, p := range recipients {
		if err := n.sender.Send(p.Name, p.Email, subject, body); err != nil {
			return err
		}
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
