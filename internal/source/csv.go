package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// tableRows reads a tabular input regardless of format: .xlsx via excelize,
// .csv as a GBK-encoded export (the badge system writes its CSVs in GBK).
func tableRows(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return csvRows(path)
	}
	return sheetRows(path)
}

// RawRows exposes the untyped rows of an input table, used when the original
// columns must be carried through unchanged (raw punch splitting).
func RawRows(path string) ([][]string, error) {
	return tableRows(path)
}

func csvRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv %s: %w", path, err)
	}
	defer f.Close()

	decoder := transform.NewReader(f, simplifiedchinese.GBK.NewDecoder())
	reader := csv.NewReader(decoder)
	reader.FieldsPerRecord = -1 // ragged rows tolerated

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv %s: %w", path, err)
	}
	return rows, nil
}
