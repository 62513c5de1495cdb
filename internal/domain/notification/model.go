package notification

import "time"

// Type classifies a notification for presentation.
type Type string

const (
	TypeAppointment Type = "appointment"
	TypeOutbreak    Type = "outbreak"
	TypeReminder    Type = "reminder"
	TypeGeneral     Type = "general"
)

// Notification is a message delivered to the patient.
type Notification struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patientId"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
