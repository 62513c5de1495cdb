package mock

import (
	"time"

	"github.com/telecare/telecare/internal/domain/auth"
	"github.com/telecare/telecare/internal/domain/consultation"
	"github.com/telecare/telecare/internal/domain/lab"
	"github.com/telecare/telecare/internal/domain/notification"
	"github.com/telecare/telecare/internal/domain/symptom"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedUser() auth.User {
	return auth.User{
		ID:          "1",
		Email:       "patient@demo.com",
		FirstName:   "John",
		LastName:    "Doe",
		Phone:       "+1-555-0123",
		DateOfBirth: "1985-06-15",
		Gender:      auth.GenderMale,
		Address:     "123 Main Street, Rural Town, State 12345",
		EmergencyContact: auth.EmergencyContact{
			Name:     "Jane Doe",
			Phone:    "+1-555-0124",
			Relation: "Spouse",
		},
		PreferredLanguage: "en",
		CreatedAt:         mustTime("2024-01-15T10:00:00Z"),
		UpdatedAt:         mustTime("2024-12-15T10:00:00Z"),
	}
}

func seedDoctors() []consultation.Doctor {
	return []consultation.Doctor{
		{ID: "dr1", Name: "Dr. Sarah Johnson", Specialization: "General Medicine", IsAvailable: true, Rating: 4.8, Experience: 12},
		{ID: "dr2", Name: "Dr. Michael Chen", Specialization: "Pediatrics", IsAvailable: true, Rating: 4.9, Experience: 8},
		{ID: "dr3", Name: "Dr. Priya Sharma", Specialization: "Internal Medicine", IsAvailable: false, Rating: 4.7, Experience: 15},
		{ID: "dr4", Name: "Dr. Robert Wilson", Specialization: "Cardiology", IsAvailable: true, Rating: 4.9, Experience: 20},
		{ID: "dr5", Name: "Dr. Maria Garcia", Specialization: "Dermatology", IsAvailable: true, Rating: 4.6, Experience: 10},
	}
}

func seedConsultations(now time.Time) []consultation.Consultation {
	return []consultation.Consultation{
		{
			ID:          "cons1",
			PatientID:   "1",
			DoctorID:    "dr1",
			Type:        consultation.CallVideo,
			Status:      consultation.StatusScheduled,
			ScheduledAt: now.Add(2 * 24 * time.Hour),
			Symptoms:    "Persistent headache and mild fever for 3 days",
			CreatedAt:   mustTime("2024-12-13T10:00:00Z"),
			UpdatedAt:   mustTime("2024-12-13T10:00:00Z"),
		},
		{
			ID:               "cons2",
			PatientID:        "1",
			DoctorID:         "dr2",
			Type:             consultation.CallAudio,
			Status:           consultation.StatusCompleted,
			ScheduledAt:      mustTime("2024-12-10T14:00:00Z"),
			Duration:         25,
			Symptoms:         "Stomach pain after meals",
			Diagnosis:        "Mild gastritis, likely due to dietary habits",
			Prescription:     "Antacid tablets, take 1 tablet after meals for 7 days. Avoid spicy foods.",
			Notes:            "Patient should follow up if symptoms persist after medication course.",
			FollowUpRequired: false,
			CreatedAt:        mustTime("2024-12-08T10:00:00Z"),
			UpdatedAt:        mustTime("2024-12-10T14:25:00Z"),
		},
		{
			ID:           "cons3",
			PatientID:    "1",
			DoctorID:     "dr3",
			Type:         consultation.CallVideo,
			Status:       consultation.StatusCompleted,
			ScheduledAt:  mustTime("2024-12-05T09:00:00Z"),
			Duration:     30,
			Symptoms:     "Seasonal allergies and runny nose",
			Diagnosis:    "Allergic rhinitis",
			Prescription: "Antihistamine tablets, take 1 daily for 10 days. Nasal spray as needed.",
			Notes:        "Recommend avoiding outdoor activities during high pollen days.",
			CreatedAt:    mustTime("2024-12-03T10:00:00Z"),
			UpdatedAt:    mustTime("2024-12-05T09:30:00Z"),
		},
	}
}

func seedLabResults() []lab.Result {
	return []lab.Result{
		{
			ID:             "lab1",
			PatientID:      "1",
			TestName:       "Complete Blood Count (CBC)",
			TestDate:       "2024-12-10",
			Results:        "Hemoglobin: 14.2 g/dL (Normal)\nWhite Blood Cells: 7,200/μL (Normal)\nPlatelets: 285,000/μL (Normal)\nHematocrit: 42% (Normal)",
			DoctorComments: "All values are within normal range. Good overall blood health.",
			CreatedAt:      mustTime("2024-12-11T10:00:00Z"),
		},
		{
			ID:             "lab2",
			PatientID:      "1",
			TestName:       "Lipid Profile",
			TestDate:       "2024-12-08",
			Results:        "Total Cholesterol: 195 mg/dL (Borderline)\nLDL: 125 mg/dL (Borderline)\nHDL: 45 mg/dL (Low)\nTriglycerides: 150 mg/dL (Normal)",
			DoctorComments: "HDL cholesterol is slightly low. Recommend increasing physical activity and omega-3 rich foods.",
			CreatedAt:      mustTime("2024-12-09T10:00:00Z"),
		},
		{
			ID:             "lab3",
			PatientID:      "1",
			TestName:       "Chest X-Ray",
			TestDate:       "2024-11-28",
			Results:        "Clear lung fields. No signs of infection or abnormalities. Heart size normal.",
			FileURL:        "https://example.com/xray-chest-20241128.pdf",
			DoctorComments: "Normal chest X-ray. No concerns.",
			CreatedAt:      mustTime("2024-11-29T10:00:00Z"),
		},
	}
}

func seedNotifications(now time.Time) []notification.Notification {
	return []notification.Notification{
		{
			ID:        "notif1",
			PatientID: "1",
			Type:      notification.TypeAppointment,
			Title:     "Upcoming Appointment Reminder",
			Message:   "You have a video consultation with Dr. Sarah Johnson scheduled for tomorrow at 2:00 PM. Please ensure you have a stable internet connection.",
			IsRead:    false,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "notif2",
			PatientID: "1",
			Type:      notification.TypeOutbreak,
			Title:     "Health Alert: Flu Outbreak",
			Message:   "There has been an increase in flu cases in your area. Please take preventive measures and contact us if you experience symptoms.",
			IsRead:    false,
			CreatedAt: now.Add(-6 * time.Hour),
		},
		{
			ID:        "notif3",
			PatientID: "1",
			Type:      notification.TypeReminder,
			Title:     "Medication Reminder",
			Message:   "Don't forget to take your prescribed antacid tablet after dinner.",
			IsRead:    true,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        "notif4",
			PatientID: "1",
			Type:      notification.TypeGeneral,
			Title:     "Lab Results Available",
			Message:   "Your Complete Blood Count (CBC) results are now available in the Lab Results section.",
			IsRead:    true,
			CreatedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:        "notif5",
			PatientID: "1",
			Type:      notification.TypeAppointment,
			Title:     "Consultation Completed",
			Message:   "Your consultation with Dr. Michael Chen has been completed. Prescription and notes are available in your consultation history.",
			IsRead:    true,
			CreatedAt: now.Add(-5 * 24 * time.Hour),
		},
	}
}

func seedSymptomReports() []symptom.Report {
	return []symptom.Report{
		{
			ID:             "symp1",
			PatientID:      "1",
			Transcription:  "I have been experiencing persistent headaches for the past three days, along with mild fever and body aches.",
			TranslatedText: "I have been experiencing persistent headaches for the past three days, along with mild fever and body aches.",
			StructuredReport: symptom.StructuredReport{
				Symptoms:        []string{"headache", "fever", "body aches"},
				Duration:        "3 days",
				Severity:        symptom.SeverityModerate,
				AdditionalNotes: "Symptoms started gradually and have been consistent",
			},
			Status:    symptom.StatusReviewed,
			DoctorID:  "dr1",
			CreatedAt: mustTime("2024-12-12T10:00:00Z"),
			UpdatedAt: mustTime("2024-12-12T15:00:00Z"),
		},
		{
			ID:             "symp2",
			PatientID:      "1",
			Transcription:  "Stomach pain after eating, especially spicy food. Also feeling nauseous sometimes.",
			TranslatedText: "Stomach pain after eating, especially spicy food. Also feeling nauseous sometimes.",
			StructuredReport: symptom.StructuredReport{
				Symptoms:        []string{"stomach pain", "nausea"},
				Duration:        "1 week",
				Severity:        symptom.SeverityMild,
				AdditionalNotes: "Triggered by spicy foods",
			},
			Status:    symptom.StatusSubmitted,
			CreatedAt: mustTime("2024-12-07T10:00:00Z"),
			UpdatedAt: mustTime("2024-12-07T10:00:00Z"),
		},
	}
}

// transcripts maps a spoken language to its canned transcription. The
// English entry doubles as the translation for every other language.
var transcripts = map[string]string{
	"en": "I have been feeling unwell with headache and fever since yesterday.",
	"hi": "मुझे कल से सिरदर्द और बुखार के साथ अस्वस्थ महसूस हो रहा है।",
	"bn": "আমি গতকাল থেকে মাথাব্যথা এবং জ্বর নিয়ে অসুস্থ বোধ করছি।",
	"te": "నేను నిన్న నుండి తలనొప్పి మరియు జ్వరంతో అనారోగ్యంగా ఉన్నాను.",
	"mr": "मला कालपासून डोकेदुखी आणि ताप येत आहे.",
	"ta": "நேற்றிலிருந்து தலைவலி மற்றும் காய்ச்சலுடன் உடல்நிலை சரியில்லை.",
}
