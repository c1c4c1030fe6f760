package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXWriter implements SheetWriter by writing a local XLSX workbook.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter creates an XLSXWriter targeting the given file path.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Write renders the three tabs into a workbook and saves it to disk.
func (w *XLSXWriter) Write(_ context.Context, wb Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	tabs := []struct {
		name string
		grid [][]any
	}{
		{TabFunds, wb.Funds},
		{TabManagers, wb.Managers},
		{TabLatest, wb.Latest},
	}

	for i, tab := range tabs {
		if i == 0 {
			// Rename the default sheet instead of adding a new one.
			if err := f.SetSheetName("Sheet1", tab.name); err != nil {
				return fmt.Errorf("renaming default sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(tab.name); err != nil {
				return fmt.Errorf("creating sheet %s: %w", tab.name, err)
			}
		}

		for rowIdx, row := range tab.grid {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("computing cell name: %w", err)
			}
			if err := f.SetSheetRow(tab.name, cell, &row); err != nil {
				return fmt.Errorf("writing row %d of %s: %w", rowIdx+1, tab.name, err)
			}
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", w.path, err)
	}
	return nil
}
