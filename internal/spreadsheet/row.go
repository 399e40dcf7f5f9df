package spreadsheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type rowParser struct {
	row    models.ImportRow
	errors []models.ImportError
}

func (p *rowParser) fail(column, value, format string, args ...any) {
	p.errors = append(p.errors, models.ImportError{
		Row:     p.row.Number,
		Field:   column,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

func (p *rowParser) text(column string) string {
	return strings.TrimSpace(p.row.Get(column))
}

func (p *rowParser) float(column string) float64 {
	raw := p.text(column)
	if raw == "" {
		return 0
	}

	value, ok := NormalizeNumber(raw)
	if !ok {
		p.fail(column, raw, "must be a number; use ',' for decimals and '.' for thousands")
		return 0
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		p.fail(column, raw, "must be a non-negative number")
		return 0
	}

	return v
}

func (p *rowParser) integer(column string) int {
	raw := p.text(column)
	if raw == "" {
		return 0
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		p.fail(column, raw, "must be a non-negative integer")
		return 0
	}

	return v
}

// decimalString validates a decimal cell and keeps its digits as written,
// minus thousands separators and with a decimal point.
func (p *rowParser) decimalString(column string) string {
	raw := p.text(column)
	if raw == "" {
		return ""
	}

	value, ok := NormalizeNumber(raw)
	if !ok {
		p.fail(column, raw, "must be a decimal number; use ',' for decimals and '.' for thousands")
		return ""
	}

	if _, err := decimal.NewFromString(value); err != nil {
		p.fail(column, raw, "must be a decimal number")
		return ""
	}

	return value
}

func (p *rowParser) id(column string) *uuid.UUID {
	raw := p.text(column)
	if raw == "" {
		return nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		p.fail(column, raw, "must be a valid UUID")
		return nil
	}

	return &id
}

func (p *rowParser) boolean(column string, fallback bool) bool {
	raw := p.text(column)

	v, err := ParseBool(raw, fallback)
	if err != nil {
		p.fail(column, raw, "must be sim or nao")
		return fallback
	}

	return v
}

// ProductFromRow builds a product from a decoded row. Required columns are
// checked by the caller; the returned errors cover malformed optional cells.
func ProductFromRow(row models.ImportRow) (*models.Product, []models.ImportError) {
	p := &rowParser{row: row}

	product := &models.Product{
		Name:         p.text(ColName),
		SKU:          p.text(ColSKU),
		SupplierCode: p.text(ColSupplierCode),
		InternalCode: p.text(ColInternalCode),
		EAN:          p.text(ColEAN),
		Brand:        p.text(ColBrand),
		Category:     p.text(ColCategory),
		SupplierID:   p.id(ColSupplierID),
		Dimensions: models.Dimensions{
			Length: p.float(ColLength),
			Width:  p.float(ColWidth),
			Height: p.float(ColHeight),
		},
		Weight:       p.float(ColWeight),
		CostItem:     p.decimalString(ColCostItem),
		PackCost:     p.decimalString(ColPackCost),
		TaxPercent:   p.decimalString(ColTaxPercent),
		Observations: p.text(ColObservations),
		Description:  p.text(ColDescription),
		BulletPoints: splitList(p.text(ColBulletPoints), BulletSeparator),
		Active:       p.boolean(ColActive, true),
		Channels:     []models.Channel{},
	}

	if photo := p.text(ColPhoto); photo != "" {
		product.Photo = &photo
	}

	return product, p.errors
}

// ChannelFromRow returns the target product id and the channel described by
// the row. A nil id means produto_id was missing or malformed.
func ChannelFromRow(row models.ImportRow) (*uuid.UUID, models.Channel, []models.ImportError) {
	p := &rowParser{row: row}

	productID := p.id(ColProductID)

	ch := models.Channel{
		Name:        p.text(ColChannel),
		Active:      p.boolean(ColActive, true),
		Price:       p.decimalString(ColPrice),
		Stock:       p.integer(ColStock),
		Title:       p.text(ColTitle),
		Description: p.text(ColDescription),
		Categories:  splitList(p.text(ColCategories), CategorySeparator),
		Keywords:    splitList(p.text(ColKeywords), KeywordSeparator),
		Amazon: models.AmazonListing{
			ASIN:     p.text(ColAmazonASIN),
			Category: p.text(ColAmazonCat),
		},
		MercadoLivre: models.MercadoLivreListing{
			ID:       p.text(ColMercadoLivre),
			Category: p.text(ColMercadoLivCat),
		},
		Shopify: models.ShopifyListing{Handle: p.text(ColShopify)},
		Magento: models.MagentoListing{SKU: p.text(ColMagento)},
	}

	return productID, ch, p.errors
}

func formatFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func productCells(p *models.Product) []string {
	supplierID := ""
	if p.SupplierID != nil {
		supplierID = p.SupplierID.String()
	}

	photo := ""
	if p.Photo != nil {
		photo = *p.Photo
	}

	return []string{
		p.Name,
		p.SKU,
		p.SupplierCode,
		p.InternalCode,
		p.EAN,
		p.Brand,
		p.Category,
		supplierID,
		formatFloat(p.Dimensions.Length),
		formatFloat(p.Dimensions.Width),
		formatFloat(p.Dimensions.Height),
		formatFloat(p.Weight),
		p.CostItem,
		p.PackCost,
		p.TaxPercent,
		p.Observations,
		p.Description,
		strings.Join(p.BulletPoints, BulletSeparator),
		photo,
		FormatBool(p.Active),
	}
}

func channelCells(p *models.Product, ch models.Channel) []string {
	return []string{
		p.ID.String(),
		p.SKU,
		ch.Name,
		FormatBool(ch.Active),
		ch.Price,
		strconv.Itoa(ch.Stock),
		ch.Title,
		ch.Description,
		strings.Join(ch.Categories, CategorySeparator),
		strings.Join(ch.Keywords, KeywordSeparator),
		ch.Amazon.ASIN,
		ch.Amazon.Category,
		ch.MercadoLivre.ID,
		ch.MercadoLivre.Category,
		ch.Shopify.Handle,
		ch.Magento.SKU,
	}
}

func sampleCells(columns []Column) []string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = c.Example
	}
	return cells
}
