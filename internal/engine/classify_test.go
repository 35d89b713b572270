package engine

import (
	"testing"
	"time"

	"attendance-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blankDay(y int, m time.Month, d int) *models.AttendanceDay {
	return &models.AttendanceDay{
		Name:       "张三",
		EmployeeID: "00000001",
		Department: "部门A",
		Date:       date(y, m, d),
	}
}

func classifyOne(t *testing.T, rec *models.AttendanceDay, holidays map[string]bool, shiftDays map[string]int) *models.PersonSummary {
	t.Helper()
	summaries := Classify([]*models.AttendanceDay{rec}, holidays, shiftDays)
	require.Len(t, summaries, 1)
	return summaries[0]
}

func TestClassifyAllEmptyIsNoShow(t *testing.T) {
	rec := blankDay(2025, 1, 1)
	stat := classifyOne(t, rec, nil, nil)

	assert.Equal(t, 1, stat.NoShowDays)
	assert.Equal(t, 1, stat.AbsenceOrLeaveDays)
	assert.Zero(t, stat.NormalDays)
	assert.True(t, rec.Anomalous)
}

func TestClassifyPCNormal(t *testing.T) {
	rec := blankDay(2025, 1, 1)
	rec.PCStatus = models.StatusNormal
	stat := classifyOne(t, rec, nil, nil)

	assert.Equal(t, 1.0, stat.NormalDays)
	assert.Zero(t, stat.NoShowDays)
	assert.False(t, rec.Anomalous)
}

func TestClassifyOffSiteCountsAsNormal(t *testing.T) {
	rec := blankDay(2025, 1, 1)
	rec.OffSiteRegistered = true
	stat := classifyOne(t, rec, nil, nil)
	assert.Equal(t, 1.0, stat.NormalDays)
}

func TestClassifyTripOutranksLeave(t *testing.T) {
	rec := blankDay(2025, 1, 1)
	rec.TripRecorded = true
	rec.LeaveRecorded = true
	rec.LeaveType = "事假"
	rec.LeaveDayFraction = 1
	stat := classifyOne(t, rec, nil, nil)

	assert.Equal(t, 1, stat.TripDays)
	assert.Zero(t, stat.PersonalLeaveDays)
	assert.Zero(t, stat.AbsenceOrLeaveDays)
}

func TestClassifyLeaveDispatch(t *testing.T) {
	rec := blankDay(2025, 1, 1)
	rec.LeaveRecorded = true
	rec.LeaveType = "事假3天"
	rec.LeaveDayFraction = 1
	stat := classifyOne(t, rec, nil, nil)

	assert.Equal(t, 1.0, stat.PersonalLeaveDays)
	assert.Zero(t, stat.NormalDays) // 1 - 1
	assert.Equal(t, 1, stat.AbsenceOrLeaveDays)
}

func TestClassifyHalfDayLeave(t *testing.T) {
	rec := blankDay(2025, 1, 1)
	rec.LeaveRecorded = true
	rec.LeaveType = "病假"
	rec.LeaveDayFraction = 0.5
	stat := classifyOne(t, rec, nil, nil)

	assert.Equal(t, 0.5, stat.SickLeaveDays)
	assert.Equal(t, 0.5, stat.NormalDays)
}

func TestClassifyUnknownLeaveBucket(t *testing.T) {
	rec := blankDay(2025, 1, 1)
	rec.LeaveRecorded = true
	rec.LeaveType = "调休"
	rec.LeaveDayFraction = 1
	stat := classifyOne(t, rec, nil, nil)
	assert.Equal(t, 1.0, stat.UnknownLeaveDays)
}

func TestClassifyLateEarlyAbsenceDispatch(t *testing.T) {
	cases := []struct {
		status string
		check  func(*models.PersonSummary) int
	}{
		{"迟到30分钟", func(s *models.PersonSummary) int { return s.LateDays }},
		{"早退15分钟", func(s *models.PersonSummary) int { return s.EarlyLeaveDays }},
		{"状态不明", func(s *models.PersonSummary) int { return s.AbsenceDays }},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			rec := blankDay(2025, 1, 1)
			rec.PCStatus = tc.status
			stat := classifyOne(t, rec, nil, nil)
			assert.Equal(t, 1, tc.check(stat))
			assert.True(t, rec.Anomalous)
		})
	}
}

func TestClassifyHolidaySkip(t *testing.T) {
	rec := blankDay(2025, 1, 1)
	holidays := map[string]bool{"2025-01-01": true}
	stat := classifyOne(t, rec, holidays, map[string]int{"00000001": 5})

	assert.Zero(t, stat.NoShowDays)
	assert.Zero(t, stat.NormalDays)
	assert.Zero(t, stat.HolidayWorkedDays)
	assert.False(t, rec.Anomalous)
}

func TestClassifyHolidayWorked(t *testing.T) {
	rec := blankDay(2025, 1, 1)
	rec.OvertimeHours = 3
	holidays := map[string]bool{"2025-01-01": true}
	stat := classifyOne(t, rec, holidays, nil)

	assert.Equal(t, 1, stat.HolidayWorkedDays)
	// The holiday skip also skips overtime accumulation.
	assert.Zero(t, stat.OvertimeHours)
}

func TestClassifyHolidayWithLeaveStillClassified(t *testing.T) {
	rec := blankDay(2025, 1, 1)
	rec.LeaveRecorded = true
	rec.LeaveType = "年休假"
	rec.LeaveDayFraction = 1
	holidays := map[string]bool{"2025-01-01": true}
	stat := classifyOne(t, rec, holidays, nil)

	assert.Equal(t, 1.0, stat.AnnualLeaveDays)
	assert.Equal(t, 1, stat.AbsenceOrLeaveDays)
}

func TestClassifyShiftHeavySuppression(t *testing.T) {
	shiftDays := map[string]int{"00000001": 9}

	empty := blankDay(2025, 1, 1)
	stat := classifyOne(t, empty, nil, shiftDays)
	assert.Zero(t, stat.NoShowDays)
	assert.False(t, empty.Anomalous)

	late := blankDay(2025, 1, 2)
	late.PCStatus = "迟到"
	stat = classifyOne(t, late, nil, shiftDays)
	assert.Zero(t, stat.LateDays)
	assert.False(t, late.Anomalous)
}

func TestClassifyShiftAttendedIsNormal(t *testing.T) {
	rec := blankDay(2025, 1, 1)
	rec.ShiftAttended = true
	stat := classifyOne(t, rec, nil, map[string]int{"00000001": 12})
	assert.Equal(t, 1.0, stat.NormalDays)
}

func TestClassifyOvertimeAdditive(t *testing.T) {
	var days []*models.AttendanceDay
	total := 0
	for d := 1; d <= 4; d++ {
		rec := blankDay(2025, 1, d)
		rec.PCStatus = models.StatusNormal
		rec.OvertimeHours = d
		total += d
		days = append(days, rec)
	}

	summaries := Classify(days, nil, nil)
	require.Len(t, summaries, 1)
	assert.Equal(t, total, summaries[0].OvertimeHours)
	assert.Equal(t, 4.0, summaries[0].NormalDays)
}

func TestClassifyLazySummaryCreation(t *testing.T) {
	a := blankDay(2025, 1, 1)
	b := &models.AttendanceDay{
		Name:       "李四",
		EmployeeID: "00000002",
		Department: "部门B",
		Date:       date(2025, 1, 1),
		PCStatus:   models.StatusNormal,
	}

	summaries := Classify([]*models.AttendanceDay{a, b}, nil, nil)
	require.Len(t, summaries, 2)
	assert.Equal(t, "张三", summaries[0].Name)
	assert.Equal(t, "李四", summaries[1].Name)
	assert.Equal(t, "部门B", summaries[1].Department)
}

func TestClassifySingleDayScenario(t *testing.T) {
	// Roster person with a single non-holiday day and no evidence at all.
	days, _, err := BuildTemplate([]models.Person{
		{Name: "张三", EmployeeID: "00000001", Department: "部门A"},
	}, date(2025, 1, 1), date(2025, 1, 1))
	require.NoError(t, err)

	summaries := Classify(days, map[string]bool{}, map[string]int{})
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].NoShowDays)
	assert.Zero(t, summaries[0].NormalDays)
	assert.True(t, days[0].Anomalous)
}
