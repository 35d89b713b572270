package engine

import (
	"time"

	"attendance-analyzer/internal/models"
	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// Key addresses exactly one AttendanceDay: normalized employee id plus the
// canonical date string.
type Key struct {
	EmployeeID string
	Date       string
}

// Index is the sole write surface the fillers use. It holds non-owning
// references into the template slice; fillers mutate records in place.
type Index map[Key]*models.AttendanceDay

// BuildIndex maps every template record by (employee id, date).
func BuildIndex(days []*models.AttendanceDay) Index {
	idx := make(Index, len(days))
	for _, day := range days {
		idx[Key{EmployeeID: day.EmployeeID, Date: day.DateKey()}] = day
	}
	return idx
}

// Get resolves a record, or nil when the key is outside the template. A miss
// means evidence outside the analysis window or for an unregistered person;
// callers warn and skip rather than abort.
func (idx Index) Get(employeeID string, date time.Time) *models.AttendanceDay {
	return idx[Key{EmployeeID: employeeID, Date: identity.FormatDate(date)}]
}

// warnMiss logs a lookup miss with the evidence source that produced it.
func warnMiss(sourceName, employeeID string, date time.Time) {
	logrus.WithFields(logrus.Fields{
		"source":      sourceName,
		"employee_id": employeeID,
		"date":        identity.FormatDate(date),
	}).Warn("Evidence outside template, not applied")
}
