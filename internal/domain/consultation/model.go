package consultation

import (
	"fmt"
	"time"
)

// CallType selects the consultation medium.
type CallType string

const (
	CallVideo CallType = "video"
	CallAudio CallType = "audio"
)

// Status is set by backend/doctor actions; the client only reads it.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Doctor is a read-only catalog entry; the client never owns or mutates it.
type Doctor struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	IsAvailable    bool    `json:"isAvailable"`
	Rating         float64 `json:"rating"`
	Experience     int     `json:"experience"`
}

// Consultation links a patient and a doctor for a scheduled call.
type Consultation struct {
	ID               string    `json:"id"`
	PatientID        string    `json:"patientId"`
	DoctorID         string    `json:"doctorId"`
	Type             CallType  `json:"type"`
	Status           Status    `json:"status"`
	ScheduledAt      time.Time `json:"scheduledAt"`
	Duration         int       `json:"duration,omitempty"`
	Symptoms         string    `json:"symptoms"`
	Diagnosis        string    `json:"diagnosis,omitempty"`
	Prescription     string    `json:"prescription,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	FollowUpRequired bool      `json:"followUpRequired,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Request is the consultation request payload.
type Request struct {
	DoctorID    string    `json:"doctorId"`
	Type        CallType  `json:"type,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt,omitempty"`
	Symptoms    string    `json:"symptoms,omitempty"`
}

func (r Request) Validate() error {
	if r.DoctorID == "" {
		return fmt.Errorf("doctor id is required")
	}
	if r.Type != "" && r.Type != CallVideo && r.Type != CallAudio {
		return fmt.Errorf("call type must be %q or %q, got %q", CallVideo, CallAudio, r.Type)
	}
	return nil
}

// CallSession is the credential pair for joining a consultation call.
type CallSession struct {
	CallToken   string `json:"callToken"`
	ChannelName string `json:"channelName"`
}
