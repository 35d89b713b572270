package source

import (
	"time"

	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// Off-site registration column headers (离岗登记).
const (
	colOffSiteID    = "人员编码"
	colOffSiteStart = "离岗日期"
	colOffSiteEnd   = "返岗日期"
)

// OffSiteRow is one approved off-site window. A missing return date collapses
// the window to the start date.
type OffSiteRow struct {
	EmployeeID string
	Start      time.Time
	StartOK    bool
	End        time.Time
	EndOK      bool
}

// ReadOffSite loads the off-site registration sheet.
func ReadOffSite(path string) ([]OffSiteRow, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &ConfigError{Message: "离岗登记: empty sheet"}
	}

	idx := headerIndex(rows[0])
	if err := requireColumns("离岗登记", idx, colOffSiteID, colOffSiteStart); err != nil {
		return nil, err
	}
	endCol := optionalColumn(idx, colOffSiteEnd)

	var result []OffSiteRow
	for _, row := range rows[1:] {
		start, startOK := identity.ParseDate(cell(row, idx[colOffSiteStart]))
		end, endOK := identity.ParseDate(cell(row, endCol))
		result = append(result, OffSiteRow{
			EmployeeID: identity.NormalizeID(cell(row, idx[colOffSiteID])),
			Start:      start,
			StartOK:    startOK,
			End:        end,
			EndOK:      endOK,
		})
	}

	logrus.WithField("rows", len(result)).Info("Off-site registrations loaded")
	return result, nil
}
