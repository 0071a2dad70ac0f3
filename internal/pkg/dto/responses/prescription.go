package responses

type Prescription struct {
	ID           string `json:"id"`
	PatientID    string `json:"patient_id"`
	PatientName  string `json:"patient_name,omitempty"`
	DoctorID     string `json:"doctor_id"`
	DoctorName   string `json:"doctor_name,omitempty"`
	MedicineID   string `json:"medicine_id"`
	MedicineName string `json:"medicine_name,omitempty"`
	Dosage       string `json:"dosage"`
	Duration     string `json:"duration,omitempty"`
	Notes        string `json:"notes,omitempty"`
}
