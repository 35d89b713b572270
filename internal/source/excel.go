package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// sheetRows opens a workbook and returns all rows of its first sheet.
func sheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s of %s: %w", sheets[0], path, err)
	}
	return rows, nil
}

// headerIndex maps trimmed header names to column positions.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return idx
}

// requireColumns returns a ConfigError naming every missing mandatory column.
func requireColumns(table string, idx map[string]int, columns ...string) error {
	var missing []string
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &ConfigError{Message: fmt.Sprintf("%s: missing required columns: %s", table, strings.Join(missing, ", "))}
	}
	return nil
}

// cell safely reads a column from a possibly short row.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// optionalColumn returns the position of a column or -1 when absent.
func optionalColumn(idx map[string]int, name string) int {
	if i, ok := idx[name]; ok {
		return i
	}
	return -1
}
