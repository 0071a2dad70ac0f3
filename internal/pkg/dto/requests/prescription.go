package requests

type CreatePrescription struct {
	PatientID  string `json:"patient_id" validate:"required"`
	DoctorID   string `json:"doctor_id" validate:"required"`
	MedicineID string `json:"medicine_id" validate:"required"`
	Dosage     string `json:"dosage" validate:"required"`
	Duration   string `json:"duration,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type UpdatePrescription struct {
	MedicineID string `json:"medicine_id" validate:"required"`
	Dosage     string `json:"dosage" validate:"required"`
	Duration   string `json:"duration,omitempty"`
	Notes      string `json:"notes,omitempty"`
}
