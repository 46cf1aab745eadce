package exchange

import (
	"fmt"
	"io"
	"tracker/pkg/domain"

	"github.com/xuri/excelize/v2"
)

// excelSheet is the name of the single worksheet in exported workbooks.
const excelSheet = "Status Report"

// WriteExcel renders hydrated projects into an xlsx workbook using the same
// flat schema as the CSV export.
func WriteExcel(w io.Writer, projects []domain.Project) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return fmt.Errorf("could not name sheet: %w", err)
	}

	header := toCells(Header())
	if err := f.SetSheetRow(excelSheet, "A1", &header); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("could not create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fmt.Errorf("could not compute last column: %w", err)
	}
	if err := f.SetCellStyle(excelSheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("could not style header: %w", err)
	}

	for i, record := range Flatten(projects) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("could not compute cell name: %w", err)
		}
		cells := toCells(record)
		if err := f.SetSheetRow(excelSheet, cell, &cells); err != nil {
			return fmt.Errorf("could not write row: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}

	return nil
}

func toCells(record []string) []interface{} {
	cells := make([]interface{}, len(record))
	for i, value := range record {
		cells[i] = value
	}

	return cells
}
