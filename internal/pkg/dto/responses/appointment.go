package responses

import "time"

// Appointment is the denormalized read view: rows are annotated with patient
// and doctor display names server-side.
type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorID    string    `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	IsEmergency bool      `json:"is_emergency"`
	QueueNumber int       `json:"queue_number,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}
