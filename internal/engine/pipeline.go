package engine

import (
	"time"

	"attendance-analyzer/internal/models"
	"attendance-analyzer/internal/source"
)

// Inputs bundles every source table the reconciliation consumes.
type Inputs struct {
	Roster  []models.Person
	PC      []source.PCRow
	OA      []source.OAPunchRow
	OffSite []source.OffSiteRow
	Leave   []source.LeaveRow
	Trips   []source.TripRow
	Shifts  []source.ShiftRow
	Punches []source.PunchRow

	Holidays map[string]bool
	Start    time.Time
	End      time.Time

	// MorningCutoffHour for the OA filler; 0 falls back to the default.
	MorningCutoffHour int
}

// Result carries the two output tables plus the shift-day side table.
type Result struct {
	Days           []*models.AttendanceDay
	Summaries      []*models.PersonSummary
	ShiftDayCounts map[string]int
	Departments    map[string]string
}

// Run executes the full pipeline: template, index, the six fillers in their
// conventional order, then the classification pass. Fillers are independent
// but run sequentially; the shared index has a single writer at a time.
func Run(in Inputs) (*Result, error) {
	days, departments, err := BuildTemplate(in.Roster, in.Start, in.End)
	if err != nil {
		return nil, err
	}
	idx := BuildIndex(days)

	FillPCAttendance(idx, in.PC)
	FillOAAttendance(idx, in.OA, in.MorningCutoffHour)
	FillOffSite(idx, in.OffSite)
	FillLeave(idx, in.Leave)
	FillTrips(idx, in.Trips)
	shiftDayCounts := FillShiftAttendance(idx, in.Shifts, in.Punches)

	summaries := Classify(days, in.Holidays, shiftDayCounts)

	return &Result{
		Days:           days,
		Summaries:      summaries,
		ShiftDayCounts: shiftDayCounts,
		Departments:    departments,
	}, nil
}
