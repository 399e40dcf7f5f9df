package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
	"github.com/xuri/excelize/v2"
)

var (
	ErrInvalidWorkbook = errors.New("file is not a readable xlsx workbook")
	ErrEmptyWorkbook   = errors.New("workbook has no header row")
)

type writer struct {
	f          *excelize.File
	sheet      string
	columns    []Column
	nextRow    int
	headerCell int
	reqCell    int
}

func newWriter(sheet string, columns []Column) (*writer, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet %s: %w", sheet, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	requiredStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C65911"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	return &writer{f: f, sheet: sheet, columns: columns, nextRow: 1, headerCell: headerStyle, reqCell: requiredStyle}, nil
}

func (w *writer) writeHeader() error {
	for i, col := range w.columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}

		if err := w.f.SetCellStr(w.sheet, cell, col.Header()); err != nil {
			return err
		}

		style := w.headerCell
		if col.Required {
			style = w.reqCell
		}
		if err := w.f.SetCellStyle(w.sheet, cell, cell, style); err != nil {
			return err
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(w.sheet, name, name, 22); err != nil {
			return err
		}
	}

	w.nextRow = 2

	return w.f.SetPanes(w.sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func (w *writer) writeRow(cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, w.nextRow)
	if err != nil {
		return err
	}

	if err := w.f.SetSheetRow(w.sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d: %w", w.nextRow, err)
	}

	w.nextRow++

	return nil
}

func (w *writer) writeInstructions(title string) error {
	sheet := InstructionsSheet

	if _, err := w.f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]string{
		{title},
		{},
		{"Colunas marcadas com * são obrigatórias."},
		{"Listas: bullet_points separados por " + BulletSeparator + ", categorias por " + CategorySeparator + ", palavras_chave por " + KeywordSeparator + "."},
		{"Valores sim/nao aceitam também s, n, 1, 0, true e false."},
		{},
		{"Coluna", "Descrição", "Obrigatória", "Tipo", "Exemplo"},
	}

	for _, col := range w.columns {
		required := "nao"
		if col.Required {
			required = "sim"
		}
		rows = append(rows, []string{col.Key, col.Description, required, col.Type, col.Example})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := w.f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	for col, width := range map[string]float64{"A": 25, "B": 55, "C": 14, "D": 12, "E": 40} {
		if err := w.f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	return nil
}

func (w *writer) bytes() ([]byte, error) {
	defer w.f.Close()

	index, err := w.f.GetSheetIndex(w.sheet)
	if err == nil {
		w.f.SetActiveSheet(index)
	}

	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// EncodeProducts writes one row per product. With includeData false the
// sheet holds the header and a sample row instead.
func EncodeProducts(products []*models.Product, includeData bool) ([]byte, error) {
	w, err := newWriter(ProductSheet, ProductColumns)
	if err != nil {
		return nil, err
	}

	if err := encodeProducts(w, products, includeData); err != nil {
		w.f.Close()
		return nil, err
	}

	return w.bytes()
}

func encodeProducts(w *writer, products []*models.Product, includeData bool) error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	if !includeData {
		if err := w.writeRow(sampleCells(ProductColumns)); err != nil {
			return err
		}
		return w.writeInstructions("Instruções de importação de produtos")
	}

	for _, p := range products {
		if err := w.writeRow(productCells(p)); err != nil {
			return err
		}
	}

	return w.writeInstructions("Instruções de importação de produtos")
}

// EncodeChannels writes one row per (product, channel) pair.
func EncodeChannels(products []*models.Product, includeData bool) ([]byte, error) {
	w, err := newWriter(ChannelSheet, ChannelColumns)
	if err != nil {
		return nil, err
	}

	if err := encodeChannels(w, products, includeData); err != nil {
		w.f.Close()
		return nil, err
	}

	return w.bytes()
}

func encodeChannels(w *writer, products []*models.Product, includeData bool) error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	if !includeData {
		return w.writeRow(sampleCells(ChannelColumns))
	}

	for _, p := range products {
		for _, ch := range p.Channels {
			if err := w.writeRow(channelCells(p, ch)); err != nil {
				return err
			}
		}
	}

	return nil
}

func Template(t models.ImportType) ([]byte, error) {
	switch t {
	case models.ImportTypeProducts:
		return EncodeProducts(nil, false)
	case models.ImportTypeChannels:
		return EncodeChannels(nil, false)
	}

	return nil, fmt.Errorf("unknown import type %q", t)
}

// Decode reads the first sheet of an xlsx workbook. Row 1 is the header and
// every other non-blank row becomes an ImportRow numbered as in the sheet.
func Decode(r io.Reader) ([]models.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkbook, err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = NormalizeHeader(h)
	}

	out := make([]models.ImportRow, 0, len(rows)-1)

	for i, raw := range rows[1:] {
		cells := make(map[string]string, len(headers))
		blank := true

		for j, value := range raw {
			if j >= len(headers) || headers[j] == "" {
				continue
			}

			value = strings.TrimSpace(value)
			if value != "" {
				blank = false
			}
			cells[headers[j]] = value
		}

		if blank {
			continue
		}

		out = append(out, models.ImportRow{Number: i + 2, Cells: cells})
	}

	return out, nil
}
