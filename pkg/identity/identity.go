package identity

import (
	"strconv"
	"strings"
	"time"
)

// EmployeeIDWidth задает ширину табельного номера
const EmployeeIDWidth = 8

// DateLayout is the canonical calendar-date form used for index keys and exports.
const DateLayout = "2006-01-02"

// excelEpoch is day zero of the 1900 date system used by spreadsheet serials.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006-01-02T15:04:05",
	"01-02-06 15:04",
	"1/2/06 15:04",
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/1/2",
	"2006.1.2",
	"20060102",
	"1/2/06",
	"01-02-06",
}

// NormalizeID canonicalizes a raw employee identifier to a fixed-width numeric
// string. Spreadsheet auto-typing often delivers ids as floats ("11990062.0");
// those are truncated to the integer part before zero-padding.
func NormalizeID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" {
		return ""
	}

	if strings.Contains(id, ".") {
		if f, err := strconv.ParseFloat(id, 64); err == nil {
			id = strconv.FormatInt(int64(f), 10)
		}
	}

	if len(id) < EmployeeIDWidth {
		id = strings.Repeat("0", EmployeeIDWidth-len(id)) + id
	}
	return id
}

// ParseDateTime parses a raw cell value into a timestamp. Supports the common
// textual layouts plus raw spreadsheet serial numbers. The second return value
// reports whether the value was parseable; callers must filter out failures.
func ParseDateTime(raw string) (time.Time, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, false
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, true
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, true
		}
	}

	// Spreadsheet serial: whole part is days since the 1900 epoch, the
	// fraction is time of day.
	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > 0 {
		days := int(serial)
		frac := serial - float64(days)
		t := excelEpoch.AddDate(0, 0, days).Add(time.Duration(frac * 24 * float64(time.Hour)))
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local), true
	}

	return time.Time{}, false
}

// ParseDate parses a raw cell value and drops the time-of-day component.
func ParseDate(raw string) (time.Time, bool) {
	t, ok := ParseDateTime(raw)
	if !ok {
		return time.Time{}, false
	}
	return DateOnly(t), true
}

// DateOnly truncates a timestamp to midnight local time.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// FormatDate renders a date in the canonical key form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
