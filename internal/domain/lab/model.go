package lab

import (
	"fmt"
	"time"
)

// Result is a lab report. Results are written by the medical team on the
// backend; the client only lists and uploads them.
type Result struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patientId"`
	TestName       string    `json:"testName"`
	TestDate       string    `json:"testDate"`
	Results        string    `json:"results"`
	FileURL        string    `json:"fileUrl,omitempty"`
	DoctorComments string    `json:"doctorComments,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Upload describes a document to submit for processing.
type Upload struct {
	TestName string
	TestDate string
	FileName string
}

func (u Upload) Validate() error {
	if u.TestName == "" {
		return fmt.Errorf("test name is required")
	}
	if u.TestDate == "" {
		return fmt.Errorf("test date is required")
	}
	if u.FileName == "" {
		return fmt.Errorf("file name is required")
	}
	return nil
}
