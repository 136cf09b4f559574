package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// noneFoundMarker renders a section with zero matching rows as an explicit
// empty state instead of a bare header.
const noneFoundMarker = "none found"

// WriteWorkbook writes one report to dir as <Name>.xlsx, one sheet per
// section, and returns the file path.
func WriteWorkbook(dir string, r Report) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range r.Sections {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				return "", fmt.Errorf("sheet %s: %w", s.Name, err)
			}
		} else {
			if _, err := f.NewSheet(s.Name); err != nil {
				return "", fmt.Errorf("sheet %s: %w", s.Name, err)
			}
		}

		header := make([]interface{}, len(s.Columns))
		for ci, c := range s.Columns {
			header[ci] = c
		}
		if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
			return "", fmt.Errorf("sheet %s header: %w", s.Name, err)
		}

		if len(s.Rows) == 0 {
			if err := f.SetCellValue(s.Name, "A2", noneFoundMarker); err != nil {
				return "", fmt.Errorf("sheet %s: %w", s.Name, err)
			}
			continue
		}
		for ri, row := range s.Rows {
			cell := fmt.Sprintf("A%d", ri+2)
			if err := f.SetSheetRow(s.Name, cell, &row); err != nil {
				return "", fmt.Errorf("sheet %s row %d: %w", s.Name, ri, err)
			}
		}
	}

	path := filepath.Join(dir, r.Name+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

// WriteAll writes every report into dir, creating it if needed.
func WriteAll(dir string, reports []Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	paths := make([]string, 0, len(reports))
	for _, r := range reports {
		p, err := WriteWorkbook(dir, r)
		if err != nil {
			return nil, fmt.Errorf("report %s: %w", r.Name, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
