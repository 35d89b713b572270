package source

import (
	"time"

	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// Raw punch record column headers (PC打卡记录).
const (
	colPunchID   = "工号"
	colPunchTime = "考勤时间"
	colPunchOrg  = "所属组织"
)

// PunchRow is one raw badge punch with the punching unit's organization path.
type PunchRow struct {
	EmployeeID string
	Time       time.Time
	Org        string
}

// ReadPunches loads the raw punch export (.csv in GBK, or .xlsx). Punches
// with unparseable timestamps are dropped with a warning.
func ReadPunches(path string) ([]PunchRow, error) {
	rows, err := tableRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &ConfigError{Message: "PC打卡记录: empty sheet"}
	}

	idx := headerIndex(rows[0])
	if err := requireColumns("PC打卡记录", idx, colPunchID, colPunchTime); err != nil {
		return nil, err
	}
	orgCol := optionalColumn(idx, colPunchOrg)

	var (
		punches []PunchRow
		dropped int
	)
	for _, row := range rows[1:] {
		t, ok := identity.ParseDateTime(cell(row, idx[colPunchTime]))
		if !ok {
			dropped++
			continue
		}
		punches = append(punches, PunchRow{
			EmployeeID: identity.NormalizeID(cell(row, idx[colPunchID])),
			Time:       t,
			Org:        cell(row, orgCol),
		})
	}

	if dropped > 0 {
		logrus.WithField("rows", dropped).Warn("Raw punches with invalid timestamps dropped")
	}
	logrus.WithField("rows", len(punches)).Info("Raw punch records loaded")
	return punches, nil
}
