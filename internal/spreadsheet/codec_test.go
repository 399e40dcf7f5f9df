package spreadsheet_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
	"github.com/aaravmahajanofficial/catalog-admin/internal/spreadsheet"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ptr[T any](v T) *T { return &v }

// buildWorkbook writes rows to the first sheet of a new workbook.
func buildWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf.Bytes()
}

func sampleProducts() []*models.Product {
	supplier := uuid.MustParse("3f2b8a1e-9c4d-4e1f-8a7b-2c6d9e0f1a2b")

	return []*models.Product{
		{
			ID:           uuid.New(),
			Name:         "Camiseta Básica",
			SKU:          "CAM-001",
			SupplierCode: "F-1",
			InternalCode: "I-1",
			EAN:          "7891234567895",
			Brand:        "Acme",
			Category:     "Roupas",
			SupplierID:   &supplier,
			Dimensions:   models.Dimensions{Length: 30, Width: 20, Height: 2.5},
			Weight:       0.25,
			CostItem:     "19.90",
			PackCost:     "1.5",
			TaxPercent:   "12",
			Observations: "obs",
			Description:  "Algodão",
			BulletPoints: []string{"Macia", "Gola careca"},
			Photo:        ptr("https://cdn/x.jpg"),
			Active:       true,
			Channels: []models.Channel{
				{Name: "amazon", Active: true, Price: "49.90", Stock: 10, Title: "Camiseta", Categories: []string{"Moda", "Camisetas"}, Keywords: []string{"algodao", "azul"}, Amazon: models.AmazonListing{ASIN: "B0C1"}},
				{Name: "shopify", Active: false, Price: "45", Categories: []string{}, Keywords: []string{}, Shopify: models.ShopifyListing{Handle: "camiseta"}},
			},
			CreatedAt: time.Now(),
		},
		{
			ID:           uuid.New(),
			Name:         "Caneca",
			SKU:          "CAN-002",
			BulletPoints: []string{},
			Active:       false,
			Channels:     []models.Channel{},
		},
	}
}

func TestEncodeDecodeProducts_RoundTrip(t *testing.T) {
	// Arrange
	products := sampleProducts()

	// Act
	data, err := spreadsheet.EncodeProducts(products, true)
	require.NoError(t, err)

	rows, err := spreadsheet.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// Assert
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, 3, rows[1].Number)

	for i, row := range rows {
		got, errs := spreadsheet.ProductFromRow(row)
		require.Empty(t, errs)

		want := products[i]
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.SKU, got.SKU)
		assert.Equal(t, want.SupplierCode, got.SupplierCode)
		assert.Equal(t, want.InternalCode, got.InternalCode)
		assert.Equal(t, want.EAN, got.EAN)
		assert.Equal(t, want.Brand, got.Brand)
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.SupplierID, got.SupplierID)
		assert.Equal(t, want.Dimensions, got.Dimensions)
		assert.Equal(t, want.Weight, got.Weight)
		assert.Equal(t, want.CostItem, got.CostItem)
		assert.Equal(t, want.PackCost, got.PackCost)
		assert.Equal(t, want.TaxPercent, got.TaxPercent)
		assert.Equal(t, want.Observations, got.Observations)
		assert.Equal(t, want.Description, got.Description)
		assert.Equal(t, want.BulletPoints, got.BulletPoints)
		assert.Equal(t, want.Photo, got.Photo)
		assert.Equal(t, want.Active, got.Active)
	}
}

func TestEncodeDecodeChannels_RoundTrip(t *testing.T) {
	products := sampleProducts()

	data, err := spreadsheet.EncodeChannels(products, true)
	require.NoError(t, err)

	rows, err := spreadsheet.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2, "one row per channel; products without channels add none")

	for i, row := range rows {
		id, ch, errs := spreadsheet.ChannelFromRow(row)
		require.Empty(t, errs)
		require.NotNil(t, id)

		assert.Equal(t, products[0].ID, *id)
		assert.Equal(t, products[0].Channels[i], ch)
	}
}

func TestEncodeProducts_Workbook(t *testing.T) {
	data, err := spreadsheet.EncodeProducts(sampleProducts(), true)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{spreadsheet.ProductSheet, spreadsheet.InstructionsSheet}, f.GetSheetList())

	header, err := f.GetRows(spreadsheet.ProductSheet)
	require.NoError(t, err)
	assert.Equal(t, "nome *", header[0][0])
	assert.Equal(t, "sku *", header[0][1])
	assert.Equal(t, "codigo_fornecedor", header[0][2])
	assert.Len(t, header[0], len(spreadsheet.ProductColumns))

	instructions, err := f.GetRows(spreadsheet.InstructionsSheet)
	require.NoError(t, err)

	var documented []string
	for _, row := range instructions {
		if len(row) == 5 && row[0] != "Coluna" {
			documented = append(documented, row[0])
		}
	}
	require.Len(t, documented, len(spreadsheet.ProductColumns))
	assert.Equal(t, spreadsheet.ColName, documented[0])
}

func TestTemplate(t *testing.T) {
	t.Run("Products template has header and sample row", func(t *testing.T) {
		data, err := spreadsheet.Template(models.ImportTypeProducts)
		require.NoError(t, err)

		rows, err := spreadsheet.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 1)

		p, errs := spreadsheet.ProductFromRow(rows[0])
		assert.Empty(t, errs, "sample row must itself be importable")
		assert.Equal(t, "CAM-AZ-001", p.SKU)
		assert.Equal(t, []string{"Algodão", "Gola careca"}, p.BulletPoints)
	})

	t.Run("Channels template sample row parses", func(t *testing.T) {
		data, err := spreadsheet.Template(models.ImportTypeChannels)
		require.NoError(t, err)

		rows, err := spreadsheet.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 1)

		id, ch, errs := spreadsheet.ChannelFromRow(rows[0])
		assert.Empty(t, errs)
		assert.NotNil(t, id)
		assert.Equal(t, []string{"Moda", "Masculino", "Camisetas"}, ch.Categories)
	})

	t.Run("Unknown type", func(t *testing.T) {
		_, err := spreadsheet.Template("orders")
		assert.Error(t, err)
	})
}

func TestDecode(t *testing.T) {
	t.Run("Headers are normalized", func(t *testing.T) {
		data := buildWorkbook(t, [][]string{
			{" Nome *", "SKU*", "Código Fornecedor", "Observações", "Dimensões Altura"},
			{"Caneca", "CAN-1", "F-9", "frágil", "10"},
		})

		rows, err := spreadsheet.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 1)

		assert.Equal(t, map[string]string{
			"nome":              "Caneca",
			"sku":               "CAN-1",
			"codigo_fornecedor": "F-9",
			"observacoes":       "frágil",
			"dimensoes_altura":  "10",
		}, rows[0].Cells)
	})

	t.Run("Blank rows are skipped but numbering is kept", func(t *testing.T) {
		data := buildWorkbook(t, [][]string{
			{"nome", "sku"},
			{"A", "S1"},
			{"", ""},
			{"  ", ""},
			{"B", "S2"},
		})

		rows, err := spreadsheet.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, 2, rows[0].Number)
		assert.Equal(t, 5, rows[1].Number)
	})

	t.Run("Missing columns are absent", func(t *testing.T) {
		data := buildWorkbook(t, [][]string{
			{"nome"},
			{"Only name"},
		})

		rows, err := spreadsheet.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 1)

		_, ok := rows[0].Cells["sku"]
		assert.False(t, ok)
		assert.Equal(t, "", rows[0].Get("sku"))
	})

	t.Run("Header only", func(t *testing.T) {
		data := buildWorkbook(t, [][]string{{"nome", "sku"}})

		rows, err := spreadsheet.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("Empty sheet", func(t *testing.T) {
		data := buildWorkbook(t, nil)

		_, err := spreadsheet.Decode(bytes.NewReader(data))
		assert.ErrorIs(t, err, spreadsheet.ErrEmptyWorkbook)
	})

	t.Run("Not a workbook", func(t *testing.T) {
		_, err := spreadsheet.Decode(strings.NewReader("nome,sku\nA,S1\n"))
		assert.ErrorIs(t, err, spreadsheet.ErrInvalidWorkbook)
	})
}
