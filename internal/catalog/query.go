// Package catalog filters, sorts and paginates a user's product slice in
// memory, and derives the aggregates shown next to the listing.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
	"github.com/shopspring/decimal"
)

// Cost parses a decimal string; missing or malformed values count as zero.
func Cost(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}

	return d
}

// bound converts a cost filter to a decimal. NaN and infinite values are
// ignored.
func bound(v *float64) *decimal.Decimal {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}

	d := decimal.NewFromFloat(*v)
	return &d
}

// Matches reports whether p satisfies every predicate present in f.
func Matches(p *models.Product, f models.ProductFilter) bool {

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.SKU), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) {
			return false
		}
	}

	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}

	if f.Category != "" && p.Category != f.Category {
		return false
	}

	if f.SupplierID != nil && (p.SupplierID == nil || *p.SupplierID != *f.SupplierID) {
		return false
	}

	if f.Active != nil && p.Active != *f.Active {
		return false
	}

	if f.HasPhoto != nil && p.HasPhoto() != *f.HasPhoto {
		return false
	}

	minCost, maxCost := bound(f.MinCost), bound(f.MaxCost)
	if minCost != nil || maxCost != nil {
		cost := Cost(p.CostItem)
		if minCost != nil && cost.LessThan(*minCost) {
			return false
		}
		if maxCost != nil && cost.GreaterThan(*maxCost) {
			return false
		}
	}

	return true
}

func Filter(products []*models.Product, f models.ProductFilter) []*models.Product {
	matches := make([]*models.Product, 0, len(products))

	for _, p := range products {
		if Matches(p, f) {
			matches = append(matches, p)
		}
	}

	return matches
}

func compare(a, b *models.Product, field models.SortField) int {
	switch field {
	case models.SortByName:
		return strings.Compare(a.Name, b.Name)
	case models.SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case models.SortByUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case models.SortByCostItem:
		return Cost(a.CostItem).Cmp(Cost(b.CostItem))
	}

	return 0
}

// Sort orders products in place. Ties keep their incoming order.
func Sort(products []*models.Product, field models.SortField, order models.SortOrder) {
	if field == "" {
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		c := compare(products[i], products[j], field)
		if order == models.SortDesc {
			return c > 0
		}
		return c < 0
	})
}

// Normalize fills in pagination defaults and clamps the limit.
func Normalize(p models.Pagination) models.Pagination {
	if p.Page < 1 {
		p.Page = models.DefaultPage
	}

	if p.Limit < 1 {
		p.Limit = models.DefaultLimit
	}

	if p.Limit > models.MaxLimit {
		p.Limit = models.MaxLimit
	}

	if p.SortOrder == "" {
		p.SortOrder = models.SortAsc
	}

	return p
}

// Query filters, sorts and pages products. The input slice is not modified.
func Query(products []*models.Product, f models.ProductFilter, p models.Pagination) *models.ProductListResult {
	p = Normalize(p)

	matches := Filter(products, f)
	Sort(matches, p.SortBy, p.SortOrder)

	total := len(matches)
	totalPages := (total + p.Limit - 1) / p.Limit

	// compare page numbers first so huge pages cannot overflow the offset
	page := []*models.Product{}
	if p.Page <= totalPages {
		offset := (p.Page - 1) * p.Limit
		end := min(offset+p.Limit, total)
		page = matches[offset:end]
	}

	return &models.ProductListResult{
		Products:   page,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
