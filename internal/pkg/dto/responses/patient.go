package responses

type Patient struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	BloodGroup   string `json:"blood_group,omitempty"`
	Address      string `json:"address,omitempty"`
	MedicalNotes string `json:"medical_notes,omitempty"`
}

// PatientScopedList wraps patient-visible collections. ProfileLinked=false
// with the not-found message replaces the list for unlinked patient accounts.
type PatientScopedList struct {
	ProfileLinked bool        `json:"profile_linked"`
	Message       string      `json:"message,omitempty"`
	Items         interface{} `json:"items"`
}
