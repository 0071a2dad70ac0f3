package models

// Patient is the medical record, distinct from Account. A patient-role
// account is linked to at most one Patient row by exact email match.
type Patient struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	Phone        string `bson:"phone"`
	Age          int    `bson:"age"`
	Gender       string `bson:"gender"`
	BloodGroup   string `bson:"bloodGroup"`
	Address      string `bson:"address"`
	MedicalNotes string `bson:"medicalNotes,omitempty"`
	TimeModel    `bson:",inline"`
}
