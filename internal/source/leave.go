package source

import (
	"strconv"
	"time"

	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// Leave log column headers (请假记录).
const (
	colLeaveID    = "工号"
	colLeaveStart = "请假开始日期"
	colLeaveEnd   = "请假结束日期"
	colLeaveType  = "请假类型"
	colLeaveDays  = "请假天数"
)

// LeaveRow is one approved leave window. Days is the per-date fraction of the
// day consumed by the leave (half-day leave arrives as 0.5); it defaults to a
// full day when the column is absent or blank.
type LeaveRow struct {
	EmployeeID string
	Start      time.Time
	StartOK    bool
	End        time.Time
	EndOK      bool
	Type       string
	Days       float64
}

// ReadLeave loads the leave registration sheet.
func ReadLeave(path string) ([]LeaveRow, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &ConfigError{Message: "请假记录: empty sheet"}
	}

	idx := headerIndex(rows[0])
	if err := requireColumns("请假记录", idx, colLeaveID, colLeaveStart, colLeaveEnd); err != nil {
		return nil, err
	}
	typeCol := optionalColumn(idx, colLeaveType)
	daysCol := optionalColumn(idx, colLeaveDays)

	var result []LeaveRow
	for _, row := range rows[1:] {
		start, startOK := identity.ParseDate(cell(row, idx[colLeaveStart]))
		end, endOK := identity.ParseDate(cell(row, idx[colLeaveEnd]))

		days := 1.0
		if raw := cell(row, daysCol); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				days = v
			}
		}

		result = append(result, LeaveRow{
			EmployeeID: identity.NormalizeID(cell(row, idx[colLeaveID])),
			Start:      start,
			StartOK:    startOK,
			End:        end,
			EndOK:      endOK,
			Type:       cell(row, typeCol),
			Days:       days,
		})
	}

	logrus.WithField("rows", len(result)).Info("Leave records loaded")
	return result, nil
}
