package source

import (
	"time"

	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// Shift schedule column headers (倒班记录).
const (
	colShiftID    = "工号"
	colShiftStart = "上班时间"
	colShiftEnd   = "下班时间"
)

// ShiftRow is one scheduled shift with full start/end timestamps. OK is false
// when the id is blank or either timestamp failed to parse; such rows are
// skipped by the filler.
type ShiftRow struct {
	EmployeeID string
	Start      time.Time
	End        time.Time
	OK         bool
}

// ReadShifts loads the shift schedule (.xlsx, or GBK .csv as exported by the
// scheduling system).
func ReadShifts(path string) ([]ShiftRow, error) {
	rows, err := tableRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &ConfigError{Message: "倒班记录: empty sheet"}
	}

	idx := headerIndex(rows[0])
	if err := requireColumns("倒班记录", idx, colShiftID, colShiftStart, colShiftEnd); err != nil {
		return nil, err
	}

	var result []ShiftRow
	for _, row := range rows[1:] {
		id := identity.NormalizeID(cell(row, idx[colShiftID]))
		start, startOK := identity.ParseDateTime(cell(row, idx[colShiftStart]))
		end, endOK := identity.ParseDateTime(cell(row, idx[colShiftEnd]))
		result = append(result, ShiftRow{
			EmployeeID: id,
			Start:      start,
			End:        end,
			OK:         id != "" && startOK && endOK,
		})
	}

	logrus.WithField("rows", len(result)).Info("Shift schedule loaded")
	return result, nil
}
