package requests

type CreatePatient struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=7,max=20"`
	Age          int    `json:"age" validate:"gte=0"`
	Gender       string `json:"gender" validate:"required,oneof=male female other"`
	BloodGroup   string `json:"blood_group,omitempty"`
	Address      string `json:"address,omitempty"`
	MedicalNotes string `json:"medical_notes,omitempty"`
}

type UpdatePatient struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Phone        string `json:"phone" validate:"required,min=7,max=20"`
	Age          int    `json:"age" validate:"gte=0"`
	Gender       string `json:"gender" validate:"required,oneof=male female other"`
	BloodGroup   string `json:"blood_group,omitempty"`
	Address      string `json:"address,omitempty"`
	MedicalNotes string `json:"medical_notes,omitempty"`
}
