package engine

import (
	"attendance-analyzer/internal/source"

	"github.com/sirupsen/logrus"
)

// FillLeave marks every date of an approved leave window with the leave type
// and the per-date day fraction. A row with an unparseable start or end date
// is skipped entirely; never partially applied.
func FillLeave(idx Index, rows []source.LeaveRow) {
	applied, skipped := 0, 0
	for _, row := range rows {
		if !row.StartOK || !row.EndOK {
			logrus.WithFields(logrus.Fields{
				"employee_id": row.EmployeeID,
				"leave_type":  row.Type,
			}).Warn("Leave row with unparseable dates skipped")
			skipped++
			continue
		}

		for d := row.Start; !d.After(row.End); d = d.AddDate(0, 0, 1) {
			rec := idx.Get(row.EmployeeID, d)
			if rec == nil {
				warnMiss("请假记录", row.EmployeeID, d)
				continue
			}
			rec.LeaveRecorded = true
			rec.LeaveType = row.Type
			rec.LeaveDayFraction = row.Days
			applied++
		}
	}
	logrus.WithFields(logrus.Fields{
		"dates":   applied,
		"skipped": skipped,
	}).Info("Leave records filled")
}
