package requests

// Register creates an Account. Self-service signup always creates a patient
// account; only an admin session may set another role.
type Register struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"password"`
	Role     string `json:"role,omitempty" validate:"omitempty,role"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
