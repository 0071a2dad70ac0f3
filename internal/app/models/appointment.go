package models

import "time"

type Appointment struct {
	ID          string    `bson:"_id,omitempty"`
	PatientID   string    `bson:"patientId"`
	DoctorID    string    `bson:"doctorId"`
	ScheduledAt time.Time `bson:"scheduledAt"`
	Status      string    `bson:"status"`
	IsEmergency bool      `bson:"isEmergency"`
	QueueNumber int       `bson:"queueNumber"`
	Notes       string    `bson:"notes,omitempty"`
	TimeModel   `bson:",inline"`
}
