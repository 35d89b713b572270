package engine

import (
	"attendance-analyzer/internal/source"

	"github.com/sirupsen/logrus"
)

// FillTrips marks every date of a business-trip window. Rows with an
// unparseable start or end, or with the end before the start, are skipped.
func FillTrips(idx Index, rows []source.TripRow) {
	applied, skipped := 0, 0
	for _, row := range rows {
		if !row.StartOK || !row.EndOK {
			logrus.WithField("employee_id", row.EmployeeID).Warn("Trip row with unparseable dates skipped")
			skipped++
			continue
		}
		if row.End.Before(row.Start) {
			logrus.WithField("employee_id", row.EmployeeID).Warn("Trip row with end before start skipped")
			skipped++
			continue
		}

		for d := row.Start; !d.After(row.End); d = d.AddDate(0, 0, 1) {
			rec := idx.Get(row.EmployeeID, d)
			if rec == nil {
				warnMiss("出差记录", row.EmployeeID, d)
				continue
			}
			rec.TripRecorded = true
			rec.TripLocation = row.Location
			applied++
		}
	}
	logrus.WithFields(logrus.Fields{
		"dates":   applied,
		"skipped": skipped,
	}).Info("Business trips filled")
}
