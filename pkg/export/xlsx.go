// pkg/export/xlsx.go

// Package export renders the board as an Excel workbook.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gurkanbulca/kanban/internal/board"
)

// LabelsSheet is the name of the sheet listing the board labels.
const LabelsSheet = "Labels"

// Header is the first row of every column sheet.
var Header = []string{"Title", "Description", "Priority", "Due Date", "Overdue", "Labels", "Created At"}

// BoardToXLSX writes one sheet per column, in column order, plus a Labels
// sheet, and returns the workbook bytes. Overdue is evaluated at now.
func BoardToXLSX(columns []board.Column, labels []string, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, col := range columns {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", col.Title); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(col.Title); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", col.Title, err)
		}

		if err := writeHeader(f, col.Title, Header, headerStyle); err != nil {
			return nil, err
		}
		for r, t := range col.Tasks {
			overdue := "No"
			if t.Overdue(now) {
				overdue = "Yes"
			}
			row := []interface{}{
				t.Title,
				t.Description,
				string(t.Priority),
				t.DueDate,
				overdue,
				strings.Join(t.Labels, ", "),
				t.CreatedAt.UTC().Format(time.RFC3339),
			}
			if err := setRow(f, col.Title, r+2, row); err != nil {
				return nil, err
			}
		}
		if err := f.SetColWidth(col.Title, "A", "B", 40); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
		if err := f.SetColWidth(col.Title, "C", "G", 16); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	if len(columns) == 0 {
		if err := f.SetSheetName("Sheet1", LabelsSheet); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	} else if _, err := f.NewSheet(LabelsSheet); err != nil {
		return nil, fmt.Errorf("create sheet %q: %w", LabelsSheet, err)
	}
	if err := writeHeader(f, LabelsSheet, []string{"Label"}, headerStyle); err != nil {
		return nil, err
	}
	for r, l := range labels {
		if err := setRow(f, LabelsSheet, r+2, []interface{}{l}); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, names []string, style int) error {
	row := make([]interface{}, len(names))
	for i, n := range names {
		row[i] = n
	}
	if err := setRow(f, sheet, 1, row); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(names), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("style header of %q: %w", sheet, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %q: %w", row, sheet, err)
	}
	return nil
}
