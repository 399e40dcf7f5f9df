package models

import "github.com/google/uuid"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type SortField string

const (
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByCostItem  SortField = "costItem"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ProductFilter predicates are optional and combined with AND.
type ProductFilter struct {
	Search     string     `json:"search,omitempty"`
	Brand      string     `json:"brand,omitempty"`
	Category   string     `json:"category,omitempty"`
	SupplierID *uuid.UUID `json:"supplierId,omitempty"`
	Active     *bool      `json:"active,omitempty"`
	HasPhoto   *bool      `json:"hasPhoto,omitempty"`
	MinCost    *float64   `json:"minCost,omitempty"`
	MaxCost    *float64   `json:"maxCost,omitempty"`
}

type Pagination struct {
	Page      int       `json:"page" validate:"min=1"`
	Limit     int       `json:"limit" validate:"min=1,max=100"`
	SortBy    SortField `json:"sortBy,omitempty" validate:"omitempty,oneof=name createdAt updatedAt costItem"`
	SortOrder SortOrder `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
}

// ListProductsQuery is the validated form of the listing query string.
type ListProductsQuery struct {
	Filter     ProductFilter `json:"filter"`
	Pagination Pagination    `json:"pagination"`
}

type ProductListResult struct {
	Products   []*Product `json:"products"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
	HasNext    bool       `json:"hasNext"`
	HasPrev    bool       `json:"hasPrev"`
}

type ProductSummary struct {
	TotalProducts    int    `json:"totalProducts"`
	ActiveProducts   int    `json:"activeProducts"`
	InactiveProducts int    `json:"inactiveProducts"`
	WithPhoto        int    `json:"withPhoto"`
	WithoutPhoto     int    `json:"withoutPhoto"`
	Brands           int    `json:"brands"`
	Categories       int    `json:"categories"`
	TotalCostValue   string `json:"totalCostValue"`
}

type FilterOptions struct {
	Brands      []string    `json:"brands"`
	Categories  []string    `json:"categories"`
	SupplierIDs []uuid.UUID `json:"supplierIds"`
}
