package xlsxgrid

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
)

// Exporter writes the translation grid as a spreadsheet: one row per field
// (variable path + field name), one column per language.
type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "xlsx" }

const sheet = "Translations"

func (e *Exporter) Export(doc ports.ExportDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []interface{}{"Variable", "Field"}
	for _, lang := range doc.Languages {
		header = append(header, lang.Code)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for _, sec := range doc.Sections {
		for _, a := range sec.Assets {
			for _, field := range a.Fields {
				cells := []interface{}{field.VariablePath, field.FieldName}
				for _, lang := range doc.Languages {
					cells = append(cells, field.Values[lang.Code])
				}
				cell := fmt.Sprintf("A%d", row)
				if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
					return nil, err
				}
				row++
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
