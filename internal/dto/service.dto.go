package dto

import "github.com/shopspring/decimal"

type CreateServiceRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	Description string           `json:"description"`
	Duration    int              `json:"duration" binding:"required,min=1"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	IsActive    *bool            `json:"is_active"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description"`
	Duration    *int             `json:"duration" binding:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price"`
	IsActive    *bool            `json:"is_active"`
}
