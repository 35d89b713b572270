package engine

import (
	"sort"
	"strings"
	"time"

	"attendance-analyzer/internal/models"
	"attendance-analyzer/internal/source"
	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// Clock-in/out tolerance windows around the scheduled shift boundaries.
const (
	clockInEarly  = 2 * time.Hour
	clockInLate   = 30 * time.Minute
	clockOutEarly = 30 * time.Minute
	clockOutLate  = 4 * time.Hour
)

// Guesthouse-type units are judged on total presence span instead of
// end-of-day overtime.
const (
	guesthouseMarker  = "招待所"
	guesthouseNormal  = 8 * time.Hour
	guesthouseMinimum = 7 * time.Hour
)

// standardEndHour/Minute is the end-of-day threshold beyond which whole hours
// count as overtime.
const (
	standardEndHour   = 18
	standardEndMinute = 30
)

// FillShiftAttendance reconciles the shift schedule against the raw punch
// pool. For each scheduled shift it pools punches from the shift's start date
// and, when the shift crosses midnight, from the end date as well, then
// accepts a clock-in within [start-2h, start+30m] and a clock-out within
// [end-30m, end+4h]. Only a shift with both is attended.
//
// Independently, every (employee, date) with punches gets either a forced
// badge status (guesthouse units, judged on earliest-to-latest span) or
// whole-hour overtime beyond 18:30.
//
// Returns the shift-day count per employee: the number of distinct dates on
// which the employee had a scheduled shift.
func FillShiftAttendance(idx Index, shifts []source.ShiftRow, punches []source.PunchRow) map[string]int {
	punchPool := make(map[Key][]time.Time)
	orgByKey := make(map[Key]string)
	for _, p := range punches {
		k := Key{EmployeeID: p.EmployeeID, Date: identity.FormatDate(p.Time)}
		punchPool[k] = append(punchPool[k], p.Time)
		if _, ok := orgByKey[k]; !ok {
			orgByKey[k] = p.Org
		}
	}
	for _, pool := range punchPool {
		sort.Slice(pool, func(i, j int) bool { return pool[i].Before(pool[j]) })
	}

	shiftDates := processShifts(idx, shifts, punchPool)
	processOvertimeAndGuesthouse(idx, punchPool, orgByKey)

	counts := make(map[string]int)
	for k := range shiftDates {
		counts[k.EmployeeID]++
	}
	return counts
}

func processShifts(idx Index, shifts []source.ShiftRow, punchPool map[Key][]time.Time) map[Key]bool {
	shiftDates := make(map[Key]bool)
	attended, skipped := 0, 0

	for _, shift := range shifts {
		if !shift.OK {
			skipped++
			continue
		}

		startDate := identity.DateOnly(shift.Start)
		endDate := identity.DateOnly(shift.End)
		startKey := Key{EmployeeID: shift.EmployeeID, Date: identity.FormatDate(startDate)}
		endKey := Key{EmployeeID: shift.EmployeeID, Date: identity.FormatDate(endDate)}

		shiftDates[startKey] = true
		if endKey != startKey {
			shiftDates[endKey] = true
		}

		pool := punchPool[startKey]
		if endKey != startKey {
			pool = append(append([]time.Time{}, pool...), punchPool[endKey]...)
		}

		inStart := shift.Start.Add(-clockInEarly)
		inEnd := shift.Start.Add(clockInLate)
		outStart := shift.End.Add(-clockOutEarly)
		outEnd := shift.End.Add(clockOutLate)

		hasIn, hasOut := false, false
		for _, t := range pool {
			if !t.Before(inStart) && !t.After(inEnd) {
				hasIn = true
			}
			if !t.Before(outStart) && !t.After(outEnd) {
				hasOut = true
			}
		}
		if !hasIn || !hasOut {
			continue
		}

		if rec := idx.Get(shift.EmployeeID, startDate); rec != nil {
			rec.ShiftAttended = true
		} else {
			warnMiss("倒班记录", shift.EmployeeID, startDate)
		}
		if endKey != startKey {
			if rec := idx.Get(shift.EmployeeID, endDate); rec != nil {
				rec.ShiftAttended = true
			} else {
				warnMiss("倒班记录", shift.EmployeeID, endDate)
			}
		}
		attended++
	}

	logrus.WithFields(logrus.Fields{
		"shifts":   len(shifts),
		"attended": attended,
		"skipped":  skipped,
	}).Info("Shift attendance filled")
	return shiftDates
}

func processOvertimeAndGuesthouse(idx Index, punchPool map[Key][]time.Time, orgByKey map[Key]string) {
	overtimeDays := 0
	for k, pool := range punchPool {
		if len(pool) == 0 {
			continue
		}
		earliest := pool[0]
		latest := pool[len(pool)-1]

		date, ok := identity.ParseDate(k.Date)
		if !ok {
			continue
		}
		rec := idx.Get(k.EmployeeID, date)
		if rec == nil {
			warnMiss("PC打卡记录", k.EmployeeID, date)
			continue
		}

		if strings.Contains(orgByKey[k], guesthouseMarker) {
			span := latest.Sub(earliest)
			switch {
			case span >= guesthouseNormal:
				rec.PCStatus = models.StatusNormal
			case span >= guesthouseMinimum:
				rec.PCStatus = models.StatusAbsent
			default:
				rec.PCStatus = ""
			}
			continue
		}

		standardEnd := time.Date(latest.Year(), latest.Month(), latest.Day(),
			standardEndHour, standardEndMinute, 0, 0, latest.Location())
		if overtime := latest.Sub(standardEnd); overtime > 0 {
			rec.OvertimeHours = int(overtime / time.Hour)
			if rec.OvertimeHours > 0 {
				overtimeDays++
			}
		}
	}
	logrus.WithField("days", overtimeDays).Info("Overtime derived from raw punches")
}
