package models

import (
	"time"

	"github.com/google/uuid"
)

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Product is a catalog record owned by a single user. Costing fields hold
// decimal strings.
type Product struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	Name         string     `json:"name"`
	SKU          string     `json:"sku"`
	SupplierCode string     `json:"supplierCode,omitempty"`
	InternalCode string     `json:"internalCode,omitempty"`
	EAN          string     `json:"ean,omitempty"`
	Brand        string     `json:"brand,omitempty"`
	Category     string     `json:"category,omitempty"`
	SupplierID   *uuid.UUID `json:"supplierId,omitempty"`
	Dimensions   Dimensions `json:"dimensions"`
	Weight       float64    `json:"weight"`
	CostItem     string     `json:"costItem,omitempty"`
	PackCost     string     `json:"packCost,omitempty"`
	TaxPercent   string     `json:"taxPercent,omitempty"`
	Observations string     `json:"observations,omitempty"`
	Description  string     `json:"description,omitempty"`
	BulletPoints []string   `json:"bulletPoints"`
	Photo        *string    `json:"photo,omitempty"`
	Active       bool       `json:"active"`
	Channels     []Channel  `json:"channels"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (p *Product) HasPhoto() bool {
	return p.Photo != nil && *p.Photo != ""
}

type CreateProductRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=200"`
	SKU          string     `json:"sku" validate:"required,min=1,max=64"`
	SupplierCode string     `json:"supplierCode,omitempty" validate:"omitempty,max=64"`
	InternalCode string     `json:"internalCode,omitempty" validate:"omitempty,max=64"`
	EAN          string     `json:"ean,omitempty" validate:"omitempty,numeric,max=14"`
	Brand        string     `json:"brand,omitempty" validate:"omitempty,max=100"`
	Category     string     `json:"category,omitempty" validate:"omitempty,max=100"`
	SupplierID   *uuid.UUID `json:"supplierId,omitempty"`
	Dimensions   Dimensions `json:"dimensions"`
	Weight       float64    `json:"weight" validate:"gte=0"`
	CostItem     string     `json:"costItem,omitempty" validate:"omitempty,numeric"`
	PackCost     string     `json:"packCost,omitempty" validate:"omitempty,numeric"`
	TaxPercent   string     `json:"taxPercent,omitempty" validate:"omitempty,numeric"`
	Observations string     `json:"observations,omitempty"`
	Description  string     `json:"description,omitempty"`
	BulletPoints []string   `json:"bulletPoints,omitempty" validate:"omitempty,max=10,dive,max=500"`
	Photo        *string    `json:"photo,omitempty" validate:"omitempty,max=1024"`
	Active       *bool      `json:"active,omitempty"`
	Channels     []Channel  `json:"channels,omitempty" validate:"omitempty,dive"`
}

type UpdateProductRequest struct {
	Name         *string     `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	SKU          *string     `json:"sku,omitempty" validate:"omitempty,min=1,max=64"`
	SupplierCode *string     `json:"supplierCode,omitempty" validate:"omitempty,max=64"`
	InternalCode *string     `json:"internalCode,omitempty" validate:"omitempty,max=64"`
	EAN          *string     `json:"ean,omitempty" validate:"omitempty,numeric,max=14"`
	Brand        *string     `json:"brand,omitempty" validate:"omitempty,max=100"`
	Category     *string     `json:"category,omitempty" validate:"omitempty,max=100"`
	SupplierID   *uuid.UUID  `json:"supplierId,omitempty"`
	Dimensions   *Dimensions `json:"dimensions,omitempty"`
	Weight       *float64    `json:"weight,omitempty" validate:"omitempty,gte=0"`
	CostItem     *string     `json:"costItem,omitempty" validate:"omitempty,numeric"`
	PackCost     *string     `json:"packCost,omitempty" validate:"omitempty,numeric"`
	TaxPercent   *string     `json:"taxPercent,omitempty" validate:"omitempty,numeric"`
	Observations *string     `json:"observations,omitempty"`
	Description  *string     `json:"description,omitempty"`
	BulletPoints []string    `json:"bulletPoints,omitempty" validate:"omitempty,max=10,dive,max=500"`
	Photo        *string     `json:"photo,omitempty" validate:"omitempty,max=1024"`
	Active       *bool       `json:"active,omitempty"`
}

// BulkUpdateRequest applies the same partial change to many products.
type BulkUpdateRequest struct {
	IDs     []uuid.UUID          `json:"ids" validate:"required,min=1,max=500"`
	Changes UpdateProductRequest `json:"changes"`
}

type BulkUpdateFailure struct {
	ID      uuid.UUID `json:"id"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
}

type BulkUpdateResult struct {
	Updated  int                 `json:"updated"`
	Failures []BulkUpdateFailure `json:"failures"`
}
