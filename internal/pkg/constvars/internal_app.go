package constvars

type ContextKey string

const (
	ResourcePatients      = "patients"
	ResourceDoctors       = "doctors"
	ResourceAppointments  = "appointments"
	ResourceMedicines     = "medicines"
	ResourcePrescriptions = "prescriptions"
	ResourcePayments      = "payments"
	ResourceDashboard     = "dashboard"
	ResourceAuth          = "auth"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDCR_SVC_"
)

const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RoleReceptionist = "receptionist"
	RolePatient      = "patient"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	SessionKeyPrefix      = "session:"
	LoginAttemptKeyPrefix = "login_attempts:"
)
