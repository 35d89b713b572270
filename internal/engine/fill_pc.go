package engine

import (
	"time"

	"attendance-analyzer/internal/source"
	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

var clockLayouts = []string{"15:04:05", "15:04"}

// validClock reports whether a raw cell holds a usable clock time. Both a
// bare time of day and a full timestamp count.
func validClock(raw string) bool {
	if raw == "" {
		return false
	}
	for _, layout := range clockLayouts {
		if _, err := time.Parse(layout, raw); err == nil {
			return true
		}
	}
	_, ok := identity.ParseDateTime(raw)
	return ok
}

// FillPCAttendance copies the badge system's status onto each matching day.
// When the row carries neither a usable clock-in nor clock-out time the
// status is forced empty: the badge system keeps emitting stale status text
// for days with no underlying punches.
func FillPCAttendance(idx Index, rows []source.PCRow) {
	applied := 0
	for _, row := range rows {
		rec := idx.Get(row.EmployeeID, row.Date)
		if rec == nil {
			warnMiss("PC考勤结果", row.EmployeeID, row.Date)
			continue
		}
		if row.ClockTimesPresent && !validClock(row.ClockIn) && !validClock(row.ClockOut) {
			rec.PCStatus = ""
		} else {
			rec.PCStatus = row.Status
		}
		applied++
	}
	logrus.WithField("rows", applied).Info("PC attendance filled")
}
