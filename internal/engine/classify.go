package engine

import (
	"strings"

	"attendance-analyzer/internal/models"

	"github.com/sirupsen/logrus"
)

// shiftHeavyThreshold: an employee scheduled on this many distinct shift
// dates is treated as fully shift-covered; ambiguous days are not penalized
// and empty days are not counted as no-shows.
const shiftHeavyThreshold = 9

// Classify runs the single aggregation pass: it assigns exactly one outcome
// to every AttendanceDay under the precedence order (no evidence at all >
// business trip > leave > any normal signal > pc-status dispatch), marks
// anomalous days, and accumulates the per-person counters. Summaries are
// created lazily in first-seen record order.
func Classify(days []*models.AttendanceDay, holidays map[string]bool, shiftDayCounts map[string]int) []*models.PersonSummary {
	byEmployee := make(map[string]*models.PersonSummary)
	var summaries []*models.PersonSummary

	anomalies := 0
	for _, rec := range days {
		stat, ok := byEmployee[rec.EmployeeID]
		if !ok {
			stat = &models.PersonSummary{
				Name:       rec.Name,
				EmployeeID: rec.EmployeeID,
				Department: rec.Department,
			}
			byEmployee[rec.EmployeeID] = stat
			summaries = append(summaries, stat)
		}

		totalShiftDays := shiftDayCounts[rec.EmployeeID]

		if holidays[rec.DateKey()] {
			if rec.OvertimeHours > 0 {
				stat.HolidayWorkedDays++
			}
			// A holiday with no recorded leave counts toward nothing for
			// regular staff; heavily-shifted staff still get classified.
			if !rec.LeaveRecorded && totalShiftDays < shiftHeavyThreshold {
				continue
			}
		}

		switch {
		case rec.AllEmpty() && totalShiftDays < shiftHeavyThreshold:
			stat.NoShowDays++
			stat.AbsenceOrLeaveDays++
			rec.Anomalous = true
			anomalies++

		case rec.TripRecorded:
			stat.TripDays++

		case rec.LeaveRecorded:
			stat.NormalDays += 1 - rec.LeaveDayFraction
			stat.AbsenceOrLeaveDays++
			stat.AddLeave(models.ResolveLeaveCategory(rec.LeaveType), rec.LeaveDayFraction)

		case rec.PCNormal() || rec.OANormal() || rec.ShiftAttended:
			stat.NormalDays++

		default:
			if totalShiftDays < shiftHeavyThreshold {
				switch {
				case strings.Contains(rec.PCStatus, models.StatusLate):
					stat.LateDays++
				case strings.Contains(rec.PCStatus, models.StatusEarly):
					stat.EarlyLeaveDays++
				default:
					stat.AbsenceDays++
				}
				rec.Anomalous = true
				anomalies++
			}
			// Shift-heavy staff with an ambiguous day fall into no bucket.
		}

		stat.OvertimeHours += rec.OvertimeHours
	}

	logrus.WithFields(logrus.Fields{
		"records":   len(days),
		"people":    len(summaries),
		"anomalies": anomalies,
	}).Info("Classification pass complete")
	return summaries
}
