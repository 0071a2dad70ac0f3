package requests

// CreateAppointment carries a PatientID so staff can book on behalf of any
// patient. For patient-role sessions the field is overridden with the linked
// patient id before the insert, whatever the client sent.
type CreateAppointment struct {
	PatientID   string `json:"patient_id,omitempty"`
	DoctorID    string `json:"doctor_id" validate:"required"`
	ScheduledAt string `json:"scheduled_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	IsEmergency bool   `json:"is_emergency"`
	Notes       string `json:"notes,omitempty"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

type UpdateAppointment struct {
	DoctorID    string `json:"doctor_id" validate:"required"`
	ScheduledAt string `json:"scheduled_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	IsEmergency bool   `json:"is_emergency"`
	Notes       string `json:"notes,omitempty"`
}
