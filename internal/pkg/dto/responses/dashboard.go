package responses

// HospitalStats is the staff dashboard: hospital-wide counters.
type HospitalStats struct {
	TotalPatients     int64 `json:"total_patients"`
	TotalDoctors      int64 `json:"total_doctors"`
	AppointmentsToday int64 `json:"appointments_today"`
	PendingPayments   int64 `json:"pending_payments"`
	LowStockMedicines int64 `json:"low_stock_medicines"`
}

// PatientStats is the reduced own-records metric set for patient sessions.
type PatientStats struct {
	ProfileLinked        bool    `json:"profile_linked"`
	Message              string  `json:"message,omitempty"`
	UpcomingAppointments int64   `json:"upcoming_appointments"`
	ActivePrescriptions  int64   `json:"active_prescriptions"`
	UnpaidAmount         float64 `json:"unpaid_amount"`
}
