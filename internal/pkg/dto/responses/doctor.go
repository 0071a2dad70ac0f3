package responses

type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
	Qualification  string `json:"qualification,omitempty"`
	IsAvailable    bool   `json:"is_available"`
}
