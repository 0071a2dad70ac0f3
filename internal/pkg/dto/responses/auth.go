package responses

type Register struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
}

type Login struct {
	Token         string `json:"token"`
	Role          string `json:"role"`
	PatientID     string `json:"patient_id,omitempty"`
	ProfileLinked bool   `json:"profile_linked"`
}
