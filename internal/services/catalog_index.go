package service

import (
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
)

// catalogIndex finds the existing product an import row collides with.
// Products written earlier in the same import are added so later rows see
// them too.
type catalogIndex struct {
	bySKU      map[string][]*models.Product
	byName     map[string][]*models.Product
	bySupplier map[string][]*models.Product
	matchName  bool
	matchCode  bool
}

func newCatalogIndex(products []*models.Product, matchName, matchCode bool) *catalogIndex {
	idx := &catalogIndex{
		bySKU:      make(map[string][]*models.Product, len(products)),
		byName:     make(map[string][]*models.Product, len(products)),
		bySupplier: map[string][]*models.Product{},
		matchName:  matchName,
		matchCode:  matchCode,
	}

	for _, p := range products {
		idx.add(p)
	}

	return idx
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (idx *catalogIndex) add(p *models.Product) {
	idx.bySKU[p.SKU] = append(idx.bySKU[p.SKU], p)

	if key := nameKey(p.Name); key != "" {
		idx.byName[key] = append(idx.byName[key], p)
	}

	if p.SupplierCode != "" {
		idx.bySupplier[p.SupplierCode] = append(idx.bySupplier[p.SupplierCode], p)
	}
}

func without(m map[string][]*models.Product, key string, p *models.Product) {
	list := slices.DeleteFunc(m[key], func(q *models.Product) bool { return q == p })
	if len(list) == 0 {
		delete(m, key)
		return
	}
	m[key] = list
}

func (idx *catalogIndex) replace(old, updated *models.Product) {
	without(idx.bySKU, old.SKU, old)
	without(idx.byName, nameKey(old.Name), old)
	without(idx.bySupplier, old.SupplierCode, old)

	idx.add(updated)
}

func first(m map[string][]*models.Product, key string) (*models.Product, bool) {
	if list := m[key]; len(list) > 0 {
		return list[0], true
	}
	return nil, false
}

// match looks up sku first, then name and supplier code when enabled. The
// earliest product wins when several share a key.
func (idx *catalogIndex) match(candidate *models.Product) (*models.Product, models.ConflictType) {
	if p, ok := first(idx.bySKU, candidate.SKU); ok {
		return p, models.ConflictSKU
	}

	if idx.matchName {
		if p, ok := first(idx.byName, nameKey(candidate.Name)); ok {
			return p, models.ConflictName
		}
	}

	if idx.matchCode && candidate.SupplierCode != "" {
		if p, ok := first(idx.bySupplier, candidate.SupplierCode); ok {
			return p, models.ConflictSupplierCode
		}
	}

	return nil, ""
}
