package source

import (
	"attendance-analyzer/internal/models"
	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// Roster column headers (通信录).
const (
	colRosterName = "姓名"
	colRosterID   = "工号"
	colRosterDept = "所在部门"
)

// ReadRoster loads the employee roster. Rows without a name or id are
// dropped; deduplication happens later in the template builder.
func ReadRoster(path string) ([]models.Person, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &ConfigError{Message: "通信录: empty sheet"}
	}

	idx := headerIndex(rows[0])
	if err := requireColumns("通信录", idx, colRosterName, colRosterID); err != nil {
		return nil, err
	}
	deptCol := optionalColumn(idx, colRosterDept)

	var people []models.Person
	for _, row := range rows[1:] {
		name := cell(row, idx[colRosterName])
		id := identity.NormalizeID(cell(row, idx[colRosterID]))
		if name == "" || id == "" {
			continue
		}
		people = append(people, models.Person{
			Name:       name,
			EmployeeID: id,
			Department: cell(row, deptCol),
		})
	}

	logrus.WithField("rows", len(people)).Info("Roster loaded")
	return people, nil
}
