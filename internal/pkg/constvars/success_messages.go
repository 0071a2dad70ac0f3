package constvars

const (
	RegisterSuccess = "account successfully registered"
	LoginSuccess    = "successfully logged in"
	LogoutSuccess   = "successfully logged out"

	PatientProfileNotLinked = "patient profile not found"

	ListRetrievedSuccess   = "data successfully retrieved"
	DetailRetrievedSuccess = "detail successfully retrieved"
	CreatedSuccess         = "data successfully created"
	UpdatedSuccess         = "data successfully updated"
	DeletedSuccess         = "data successfully deleted"

	ReceiptGeneratedSuccess = "receipt successfully generated"
	StatsRetrievedSuccess   = "statistics successfully retrieved"
)
