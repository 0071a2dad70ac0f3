package models

type Doctor struct {
	ID             string `bson:"_id,omitempty"`
	Name           string `bson:"name"`
	Email          string `bson:"email"`
	Phone          string `bson:"phone"`
	Specialization string `bson:"specialization"`
	Qualification  string `bson:"qualification"`
	IsAvailable    bool   `bson:"isAvailable"`
	TimeModel      `bson:",inline"`
}
