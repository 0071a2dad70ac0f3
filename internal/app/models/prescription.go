package models

type Prescription struct {
	ID         string `bson:"_id,omitempty"`
	PatientID  string `bson:"patientId"`
	DoctorID   string `bson:"doctorId"`
	MedicineID string `bson:"medicineId"`
	Dosage     string `bson:"dosage"`
	Duration   string `bson:"duration"`
	Notes      string `bson:"notes,omitempty"`
	TimeModel  `bson:",inline"`
}
