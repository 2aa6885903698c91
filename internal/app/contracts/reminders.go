package contracts

import "context"

type ReminderMessage struct {
	PatientID   string `json:"patient_id"`
	VaccineCode string `json:"vaccine_code"`
	VaccineText string `json:"vaccine_text,omitempty"`
	DueDate     string `json:"due_date"`
}

type ReminderPublisher interface {
	PublishDueReminder(ctx context.Context, message ReminderMessage) error
}
