package models

import "strings"

// Person is one roster row (通信录). Immutable once loaded; roster rows are
// deduplicated by (name, employee id).
type Person struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"` // normalized, zero-padded to 8
	Department string `json:"department"`  // "/"-separated hierarchy path
}

// PathSegment returns the n-th segment of a "/"-separated organization path,
// or "" when the path is too short.
func PathSegment(path string, n int) string {
	parts := strings.Split(path, "/")
	if n >= len(parts) {
		return ""
	}
	return strings.TrimSpace(parts[n])
}

// TopDepartment returns the first segment of the department path, used for
// per-unit file splitting.
func (p *Person) TopDepartment() string {
	return PathSegment(p.Department, 0)
}
