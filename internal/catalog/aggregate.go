package catalog

import (
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func Summarize(products []*models.Product) *models.ProductSummary {
	summary := &models.ProductSummary{TotalProducts: len(products)}

	brands := map[string]struct{}{}
	categories := map[string]struct{}{}
	total := decimal.Zero

	for _, p := range products {
		if p.Active {
			summary.ActiveProducts++
		} else {
			summary.InactiveProducts++
		}

		if p.HasPhoto() {
			summary.WithPhoto++
		} else {
			summary.WithoutPhoto++
		}

		if p.Brand != "" {
			brands[p.Brand] = struct{}{}
		}
		if p.Category != "" {
			categories[p.Category] = struct{}{}
		}

		total = total.Add(Cost(p.CostItem))
	}

	summary.Brands = len(brands)
	summary.Categories = len(categories)
	summary.TotalCostValue = total.StringFixed(2)

	return summary
}

// Options lists the distinct values a listing can be filtered by, sorted.
func Options(products []*models.Product) *models.FilterOptions {
	brands := map[string]struct{}{}
	categories := map[string]struct{}{}
	suppliers := map[uuid.UUID]struct{}{}

	for _, p := range products {
		if p.Brand != "" {
			brands[p.Brand] = struct{}{}
		}
		if p.Category != "" {
			categories[p.Category] = struct{}{}
		}
		if p.SupplierID != nil {
			suppliers[*p.SupplierID] = struct{}{}
		}
	}

	opts := &models.FilterOptions{
		Brands:      sortedKeys(brands),
		Categories:  sortedKeys(categories),
		SupplierIDs: make([]uuid.UUID, 0, len(suppliers)),
	}

	for id := range suppliers {
		opts.SupplierIDs = append(opts.SupplierIDs, id)
	}
	slices.SortFunc(opts.SupplierIDs, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})

	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
