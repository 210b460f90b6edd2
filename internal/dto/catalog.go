package dto

type CreateMaterialRequestDTO struct {
	Name         string  `json:"name" validate:"required,min=1,max=100" example:"Oak Plank"`
	Description  string  `json:"description" validate:"required,min=1,max=500" example:"Solid oak flooring plank"`
	PricePerUnit float64 `json:"price_per_unit" validate:"required,gt=0" example:"4.5"`
	Unit         string  `json:"unit" validate:"required,min=1,max=20" example:"sq ft"`
	Stock        int     `json:"stock" validate:"gte=0" example:"120"`
}

type MaterialResponseDTO struct {
	ID           int     `json:"id" example:"1"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PricePerUnit float64 `json:"price_per_unit"`
	Unit         string  `json:"unit"`
	Stock        int     `json:"stock"`
}

type CreateServiceRequestDTO struct {
	Name        string  `json:"name" validate:"required,min=1,max=100" example:"Hardwood Installation"`
	Description string  `json:"description" validate:"required,min=1,max=500" example:"Installation of hardwood flooring"`
	BasePrice   float64 `json:"base_price" validate:"required,gt=0" example:"250"`
}

type ServiceResponseDTO struct {
	ID          int     `json:"id" example:"1"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
}
