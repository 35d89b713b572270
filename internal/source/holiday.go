package source

import (
	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// Holiday sheet column header (节假日).
const colHolidayDate = "日期"

// ReadHolidays loads the holiday sheet into a set of canonical date keys.
func ReadHolidays(path string) (map[string]bool, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &ConfigError{Message: "节假日: empty sheet"}
	}

	idx := headerIndex(rows[0])
	if err := requireColumns("节假日", idx, colHolidayDate); err != nil {
		return nil, err
	}

	holidays := make(map[string]bool)
	for _, row := range rows[1:] {
		date, ok := identity.ParseDate(cell(row, idx[colHolidayDate]))
		if !ok {
			continue
		}
		holidays[identity.FormatDate(date)] = true
	}

	logrus.WithField("dates", len(holidays)).Info("Holidays loaded")
	return holidays, nil
}
