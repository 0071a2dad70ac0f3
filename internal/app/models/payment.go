package models

type Payment struct {
	ID            string  `bson:"_id,omitempty"`
	PatientID     string  `bson:"patientId"`
	AppointmentID string  `bson:"appointmentId,omitempty"`
	Amount        float64 `bson:"amount"`
	Method        string  `bson:"method"`
	Status        string  `bson:"status"`
	ReceiptObject string  `bson:"receiptObject,omitempty"`
	TimeModel     `bson:",inline"`
}
