package engine

import (
	"testing"
	"time"

	"attendance-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func testRoster() []models.Person {
	return []models.Person{
		{Name: "张三", EmployeeID: "00000001", Department: "部门A/车间一"},
		{Name: "李四", EmployeeID: "00000002", Department: "部门B"},
	}
}

func TestBuildTemplateOneRecordPerPersonPerDay(t *testing.T) {
	days, departments, err := BuildTemplate(testRoster(), date(2025, 1, 1), date(2025, 1, 5))
	require.NoError(t, err)

	// 2 people x 5 inclusive dates.
	assert.Len(t, days, 10)
	assert.Equal(t, "部门A/车间一", departments["00000001"])

	seen := make(map[Key]int)
	for _, d := range days {
		seen[Key{EmployeeID: d.EmployeeID, Date: d.DateKey()}]++
	}
	assert.Len(t, seen, 10)
	for k, n := range seen {
		assert.Equal(t, 1, n, k)
	}
}

func TestBuildTemplateInclusiveSingleDay(t *testing.T) {
	days, _, err := BuildTemplate(testRoster()[:1], date(2025, 6, 14), date(2025, 6, 14))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2025-06-14", days[0].DateKey())
}

func TestBuildTemplateDeduplicatesRoster(t *testing.T) {
	roster := append(testRoster(), testRoster()...)
	days, _, err := BuildTemplate(roster, date(2025, 1, 1), date(2025, 1, 2))
	require.NoError(t, err)
	assert.Len(t, days, 4)
}

func TestBuildTemplateBlankEvidenceFields(t *testing.T) {
	days, _, err := BuildTemplate(testRoster()[:1], date(2025, 1, 1), date(2025, 1, 1))
	require.NoError(t, err)
	rec := days[0]
	assert.True(t, rec.AllEmpty())
	assert.Zero(t, rec.OvertimeHours)
	assert.Zero(t, rec.LeaveDayFraction)
	assert.False(t, rec.Anomalous)
}

func TestBuildTemplateErrors(t *testing.T) {
	_, _, err := BuildTemplate(nil, date(2025, 1, 1), date(2025, 1, 2))
	assert.Error(t, err)

	_, _, err = BuildTemplate(testRoster(), date(2025, 1, 2), date(2025, 1, 1))
	assert.Error(t, err)
}

func TestBuildIndexResolvesEveryRecord(t *testing.T) {
	days, _, err := BuildTemplate(testRoster(), date(2025, 1, 1), date(2025, 1, 3))
	require.NoError(t, err)
	idx := BuildIndex(days)
	require.Len(t, idx, len(days))

	rec := idx.Get("00000002", date(2025, 1, 2))
	require.NotNil(t, rec)
	assert.Equal(t, "李四", rec.Name)

	assert.Nil(t, idx.Get("00000002", date(2025, 1, 4)))
	assert.Nil(t, idx.Get("99999999", date(2025, 1, 2)))
}
