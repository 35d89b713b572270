package source

import (
	"time"

	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// Business trip column headers (出差记录).
const (
	colTripID       = "人员编号"
	colTripStart    = "出差开始日期"
	colTripEnd      = "出差结束日期"
	colTripLocation = "出差地点"

	// DefaultTripLocation stands in when the sheet omits a destination.
	DefaultTripLocation = "未知地点"
)

// TripRow is one business-trip window.
type TripRow struct {
	EmployeeID string
	Start      time.Time
	StartOK    bool
	End        time.Time
	EndOK      bool
	Location   string
}

// ReadTrips loads the business-trip sheet.
func ReadTrips(path string) ([]TripRow, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &ConfigError{Message: "出差记录: empty sheet"}
	}

	idx := headerIndex(rows[0])
	if err := requireColumns("出差记录", idx, colTripID, colTripStart, colTripEnd); err != nil {
		return nil, err
	}
	locCol := optionalColumn(idx, colTripLocation)

	var result []TripRow
	for _, row := range rows[1:] {
		start, startOK := identity.ParseDate(cell(row, idx[colTripStart]))
		end, endOK := identity.ParseDate(cell(row, idx[colTripEnd]))

		location := cell(row, locCol)
		if location == "" {
			location = DefaultTripLocation
		}

		result = append(result, TripRow{
			EmployeeID: identity.NormalizeID(cell(row, idx[colTripID])),
			Start:      start,
			StartOK:    startOK,
			End:        end,
			EndOK:      endOK,
			Location:   location,
		})
	}

	logrus.WithField("rows", len(result)).Info("Business trips loaded")
	return result, nil
}
