package responses

type Payment struct {
	ID            string  `json:"id"`
	PatientID     string  `json:"patient_id"`
	PatientName   string  `json:"patient_name,omitempty"`
	AppointmentID string  `json:"appointment_id,omitempty"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
}

type PaymentReceipt struct {
	PaymentID  string `json:"payment_id"`
	ReceiptURL string `json:"receipt_url"`
}
