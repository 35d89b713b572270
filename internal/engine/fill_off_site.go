package engine

import (
	"attendance-analyzer/internal/source"

	"github.com/sirupsen/logrus"
)

// FillOffSite marks every date of an approved off-site window. A missing or
// unparseable return date collapses the window to the start date; a row with
// no usable start date is skipped.
func FillOffSite(idx Index, rows []source.OffSiteRow) {
	applied, skipped := 0, 0
	for _, row := range rows {
		if !row.StartOK {
			logrus.WithField("employee_id", row.EmployeeID).Warn("Off-site row without usable start date skipped")
			skipped++
			continue
		}
		end := row.End
		if !row.EndOK {
			end = row.Start
		}

		for d := row.Start; !d.After(end); d = d.AddDate(0, 0, 1) {
			rec := idx.Get(row.EmployeeID, d)
			if rec == nil {
				warnMiss("离岗登记", row.EmployeeID, d)
				continue
			}
			rec.OffSiteRegistered = true
			applied++
		}
	}
	logrus.WithFields(logrus.Fields{
		"dates":   applied,
		"skipped": skipped,
	}).Info("Off-site registrations filled")
}
