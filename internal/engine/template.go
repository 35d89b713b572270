package engine

import (
	"errors"
	"time"

	"attendance-analyzer/internal/models"
	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
)

// BuildTemplate produces one blank AttendanceDay for every unique roster
// person and every date in the inclusive [start, end] window, plus the
// id -> department map used by department-sensitive rules downstream.
func BuildTemplate(roster []models.Person, start, end time.Time) ([]*models.AttendanceDay, map[string]string, error) {
	if len(roster) == 0 {
		return nil, nil, errors.New("roster is empty")
	}
	start = identity.DateOnly(start)
	end = identity.DateOnly(end)
	if end.Before(start) {
		return nil, nil, errors.New("analysis window end precedes start")
	}

	// Deduplicate by (name, id), keeping first occurrence order.
	type personKey struct{ name, id string }
	seen := make(map[personKey]bool)
	var unique []models.Person
	for _, p := range roster {
		k := personKey{p.Name, p.EmployeeID}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, p)
	}

	departments := make(map[string]string, len(unique))
	var days []*models.AttendanceDay
	for _, p := range unique {
		departments[p.EmployeeID] = p.Department
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, &models.AttendanceDay{
				Name:       p.Name,
				EmployeeID: p.EmployeeID,
				Department: p.Department,
				Date:       d,
			})
		}
	}

	logrus.WithFields(logrus.Fields{
		"people":  len(unique),
		"records": len(days),
		"start":   identity.FormatDate(start),
		"end":     identity.FormatDate(end),
	}).Info("Attendance template built")
	return days, departments, nil
}
