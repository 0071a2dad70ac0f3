package models

type Medicine struct {
	ID           string  `bson:"_id,omitempty"`
	Name         string  `bson:"name"`
	Manufacturer string  `bson:"manufacturer"`
	Category     string  `bson:"category"`
	Price        float64 `bson:"price"`
	Stock        int     `bson:"stock"`
	TimeModel    `bson:",inline"`
}
