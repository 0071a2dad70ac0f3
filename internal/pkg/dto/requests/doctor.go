package requests

type CreateDoctor struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,min=7,max=20"`
	Specialization string `json:"specialization" validate:"required"`
	Qualification  string `json:"qualification,omitempty"`
	IsAvailable    bool   `json:"is_available"`
}

type UpdateDoctor struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Phone          string `json:"phone" validate:"required,min=7,max=20"`
	Specialization string `json:"specialization" validate:"required"`
	Qualification  string `json:"qualification,omitempty"`
	IsAvailable    bool   `json:"is_available"`
}
