package requests

type CreateMedicine struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	Category     string  `json:"category,omitempty"`
	Price        float64 `json:"price" validate:"gte=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
}

type UpdateMedicine struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	Category     string  `json:"category,omitempty"`
	Price        float64 `json:"price" validate:"gte=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
}
