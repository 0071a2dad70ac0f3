package responses

type Medicine struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	Category     string  `json:"category,omitempty"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
}
