package requests

type CreatePayment struct {
	PatientID     string  `json:"patient_id" validate:"required"`
	AppointmentID string  `json:"appointment_id,omitempty"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	Method        string  `json:"method" validate:"required,oneof=cash card insurance"`
}

type UpdatePaymentStatus struct {
	Status string `json:"status" validate:"required,oneof=pending paid failed"`
}
