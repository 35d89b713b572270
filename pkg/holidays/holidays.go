package holidays

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"attendance-analyzer/pkg/identity"
)

// CalendarJSON is the published year-calendar format: per-month day lists
// with "+"/"*" markers on transferred working days.
type CalendarJSON struct {
	Year   int             `json:"year"`
	Months []MonthHolidays `json:"months"`
}

type MonthHolidays struct {
	Month int    `json:"month"`
	Days  string `json:"days"`
}

// ParseCalendarJSON parses a year-calendar file into a set of canonical date
// keys, merge-compatible with the holiday sheet loader.
func ParseCalendarJSON(filePath string) (map[string]bool, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday calendar: %w", err)
	}

	var calendar CalendarJSON
	if err := json.Unmarshal(data, &calendar); err != nil {
		return nil, fmt.Errorf("failed to unmarshal holiday calendar: %w", err)
	}

	holidays := make(map[string]bool)
	for _, monthData := range calendar.Months {
		for _, dayStr := range strings.Split(monthData.Days, ",") {
			dayStr = strings.TrimSpace(dayStr)
			dayStr = strings.TrimSuffix(dayStr, "+")
			dayStr = strings.TrimSuffix(dayStr, "*")
			if dayStr == "" {
				continue
			}

			day, err := strconv.Atoi(dayStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse day '%s' in month %d: %w",
					dayStr, monthData.Month, err)
			}

			date := time.Date(calendar.Year, time.Month(monthData.Month), day, 0, 0, 0, 0, time.Local)
			holidays[identity.FormatDate(date)] = true
		}
	}

	return holidays, nil
}

// Merge unions holiday sets; later sets win nothing, membership is boolean.
func Merge(sets ...map[string]bool) map[string]bool {
	merged := make(map[string]bool)
	for _, set := range sets {
		for date := range set {
			merged[date] = true
		}
	}
	return merged
}
