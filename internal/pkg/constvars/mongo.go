package constvars

const (
	MongoCollectionAccounts      = "accounts"
	MongoCollectionPatients      = "patients"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionMedicines     = "medicines"
	MongoCollectionPrescriptions = "prescriptions"
	MongoCollectionPayments      = "payments"
)
