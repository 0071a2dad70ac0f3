package models

// Account is the login identity. Role is fixed at creation and is never
// inferred from request context after login.
type Account struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Name      string `bson:"name"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	IsActive  bool   `bson:"isActive"`
	TimeModel `bson:",inline"`
}
