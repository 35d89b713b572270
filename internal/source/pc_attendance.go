package source

import (
	"time"

	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// PC attendance result column headers (PC考勤结果).
const (
	colPCName     = "姓名"
	colPCID       = "工号"
	colPCStatus   = "出勤状态"
	colPCDate     = "考勤日期"
	colPCClockIn  = "上班时间"
	colPCClockOut = "下班时间"
)

// PCRow is one day of badge-system attendance for one employee.
type PCRow struct {
	EmployeeID string
	Date       time.Time
	Status     string
	// Raw clock times; blank or not-a-time means no underlying punch.
	ClockIn  string
	ClockOut string
	// ClockTimesPresent is false when the sheet carries no clock columns at
	// all, in which case the status text is taken at face value.
	ClockTimesPresent bool
}

// ReadPCAttendance loads the badge-system result sheet and derives the
// analysis window from the earliest and latest valid attendance dates. Rows
// with an unparseable date are dropped.
func ReadPCAttendance(path string) ([]PCRow, time.Time, time.Time, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	if len(rows) == 0 {
		return nil, time.Time{}, time.Time{}, &ConfigError{Message: "PC考勤结果: empty sheet"}
	}

	idx := headerIndex(rows[0])
	if err := requireColumns("PC考勤结果", idx, colPCName, colPCID, colPCStatus, colPCDate); err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	inCol := optionalColumn(idx, colPCClockIn)
	outCol := optionalColumn(idx, colPCClockOut)

	var (
		result     []PCRow
		start, end time.Time
		dropped    int
	)
	for _, row := range rows[1:] {
		date, ok := identity.ParseDate(cell(row, idx[colPCDate]))
		if !ok {
			dropped++
			continue
		}
		result = append(result, PCRow{
			EmployeeID:        identity.NormalizeID(cell(row, idx[colPCID])),
			Date:              date,
			Status:            cell(row, idx[colPCStatus]),
			ClockIn:           cell(row, inCol),
			ClockOut:          cell(row, outCol),
			ClockTimesPresent: inCol >= 0 || outCol >= 0,
		})
		if start.IsZero() || date.Before(start) {
			start = date
		}
		if end.IsZero() || date.After(end) {
			end = date
		}
	}

	if len(result) == 0 {
		return nil, time.Time{}, time.Time{}, &ConfigError{Message: "PC考勤结果: no valid attendance dates"}
	}
	if dropped > 0 {
		logrus.WithField("rows", dropped).Warn("PC attendance rows with invalid dates dropped")
	}

	logrus.WithFields(logrus.Fields{
		"rows":  len(result),
		"start": identity.FormatDate(start),
		"end":   identity.FormatDate(end),
	}).Info("PC attendance loaded")
	return result, start, end, nil
}
