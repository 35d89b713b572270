package source

import (
	"time"

	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// OA punch log column headers (OA打卡).
const (
	colOAID   = "编号"
	colOATime = "打卡时间"
)

// OAPunchRow is a single raw punch from the office-automation system.
type OAPunchRow struct {
	EmployeeID string
	Time       time.Time
}

// ReadOAPunches loads the raw OA punch log. Punches with an unparseable
// timestamp are dropped with a warning.
func ReadOAPunches(path string) ([]OAPunchRow, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &ConfigError{Message: "OA打卡: empty sheet"}
	}

	idx := headerIndex(rows[0])
	if err := requireColumns("OA打卡", idx, colOAID, colOATime); err != nil {
		return nil, err
	}

	var (
		punches []OAPunchRow
		dropped int
	)
	for _, row := range rows[1:] {
		t, ok := identity.ParseDateTime(cell(row, idx[colOATime]))
		if !ok {
			dropped++
			continue
		}
		punches = append(punches, OAPunchRow{
			EmployeeID: identity.NormalizeID(cell(row, idx[colOAID])),
			Time:       t,
		})
	}

	if dropped > 0 {
		logrus.WithField("rows", dropped).Warn("OA punches with invalid timestamps dropped")
	}
	logrus.WithField("rows", len(punches)).Info("OA punches loaded")
	return punches, nil
}
