package symptom

import (
	"fmt"
	"time"
)

// Severity grades a structured symptom report.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Status is the report lifecycle. Transitions are monotonic:
// draft → submitted → reviewed, never backwards.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusReviewed  Status = "reviewed"
)

// StructuredReport is the structured portion of a symptom report.
type StructuredReport struct {
	Symptoms        []string `json:"symptoms"`
	Duration        string   `json:"duration"`
	Severity        Severity `json:"severity"`
	AdditionalNotes string   `json:"additionalNotes"`
}

// Report is a patient's recorded symptom report.
type Report struct {
	ID               string           `json:"id"`
	PatientID        string           `json:"patientId"`
	OriginalAudio    string           `json:"originalAudio,omitempty"`
	Transcription    string           `json:"transcription"`
	TranslatedText   string           `json:"translatedText"`
	StructuredReport StructuredReport `json:"structuredReport"`
	Status           Status           `json:"status"`
	DoctorID         string           `json:"doctorId,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// Draft is the create payload. Empty fields are defaulted server-side.
type Draft struct {
	Transcription    string            `json:"transcription,omitempty"`
	TranslatedText   string            `json:"translatedText,omitempty"`
	StructuredReport *StructuredReport `json:"structuredReport,omitempty"`
	Status           Status            `json:"status,omitempty"`
	DoctorID         string            `json:"doctorId,omitempty"`
}

func (d Draft) Validate() error {
	if d.Transcription == "" {
		return fmt.Errorf("transcription is required")
	}
	return nil
}

// Patch is a partial report update; nil fields are left unchanged.
type Patch struct {
	Transcription    *string           `json:"transcription,omitempty"`
	TranslatedText   *string           `json:"translatedText,omitempty"`
	StructuredReport *StructuredReport `json:"structuredReport,omitempty"`
	DoctorID         *string           `json:"doctorId,omitempty"`
}

// TranscriptionResult pairs the raw transcription with its translation.
type TranscriptionResult struct {
	Transcription string `json:"transcription"`
	Translation   string `json:"translation"`
}
