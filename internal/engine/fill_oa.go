package engine

import (
	"attendance-analyzer/internal/models"
	"attendance-analyzer/internal/source"
	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// DefaultMorningCutoffHour is the strict upper bound for a punch to count as
// a morning arrival; some OA exports use an 8:00 workday start instead.
const DefaultMorningCutoffHour = 9

// eveningCutoffHour: a punch counts as an evening departure from 18:01 on.
// An exact 18:00 punch does not qualify.
const eveningCutoffHour = 18

// FillOAAttendance groups raw OA punches by (employee, date) and derives the
// day's OA status: normal needs at least one punch strictly before the
// morning cutoff and one after the evening cutoff. OAPunched is set whenever
// any punch exists for the day, independent of the status.
func FillOAAttendance(idx Index, punches []source.OAPunchRow, morningCutoffHour int) {
	if morningCutoffHour <= 0 {
		morningCutoffHour = DefaultMorningCutoffHour
	}

	type groupKey struct {
		id   string
		date string
	}
	type punchGroup struct {
		hasMorning bool
		hasEvening bool
		sample     source.OAPunchRow
	}

	groups := make(map[groupKey]*punchGroup)
	for _, p := range punches {
		k := groupKey{id: p.EmployeeID, date: identity.FormatDate(p.Time)}
		g, ok := groups[k]
		if !ok {
			g = &punchGroup{sample: p}
			groups[k] = g
		}
		if p.Time.Hour() < morningCutoffHour {
			g.hasMorning = true
		}
		if p.Time.Hour() > eveningCutoffHour ||
			(p.Time.Hour() == eveningCutoffHour && p.Time.Minute() > 0) {
			g.hasEvening = true
		}
	}

	applied := 0
	for _, g := range groups {
		rec := idx.Get(g.sample.EmployeeID, identity.DateOnly(g.sample.Time))
		if rec == nil {
			warnMiss("OA打卡", g.sample.EmployeeID, g.sample.Time)
			continue
		}
		if g.hasMorning && g.hasEvening {
			rec.OAStatus = models.StatusNormal
		} else {
			rec.OAStatus = models.StatusAbnormal
		}
		rec.OAPunched = true
		applied++
	}
	logrus.WithFields(logrus.Fields{
		"groups":  len(groups),
		"applied": applied,
	}).Info("OA attendance filled")
}
