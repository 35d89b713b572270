package export

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"attendance-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDay(dept, pcStatus string, anomalous bool) *models.AttendanceDay {
	return &models.AttendanceDay{
		Name:       "张三",
		EmployeeID: "00000001",
		Department: dept,
		Date:       time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local),
		PCStatus:   pcStatus,
		Anomalous:  anomalous,
	}
}

func openRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	return rows
}

func TestWriteDetail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "明细表.xlsx")
	days := []*models.AttendanceDay{
		sampleDay("部门A/车间一", models.StatusNormal, false),
		sampleDay("部门A/车间一", "迟到30分钟", true),
	}

	require.NoError(t, WriteDetail(days, path))

	rows := openRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, DetailHeader, rows[0])
	assert.Equal(t, "张三", rows[1][0])
	assert.Equal(t, "2025-01-06", rows[1][3])
	assert.Equal(t, models.StatusNormal, rows[1][4])
	assert.Equal(t, markYes, rows[2][15])
}

func TestWriteDetailHighlightsAnomalousRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "明细表.xlsx")
	days := []*models.AttendanceDay{
		sampleDay("部门A", models.StatusNormal, false),
		sampleDay("部门A", "缺勤", true),
	}
	require.NoError(t, WriteDetail(days, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	plain, err := f.GetCellStyle(sheet, "A2")
	require.NoError(t, err)
	flagged, err := f.GetCellStyle(sheet, "A3")
	require.NoError(t, err)
	assert.NotEqual(t, plain, flagged)

	style, err := f.GetStyle(flagged)
	require.NoError(t, err)
	require.NotEmpty(t, style.Fill.Color)
	assert.Contains(t, style.Fill.Color[0], highlightColor)
}

func TestWriteSummaryBlanksZeros(t *testing.T) {
	path := filepath.Join(t.TempDir(), "汇总表.xlsx")
	summaries := []*models.PersonSummary{{
		Name:       "张三",
		EmployeeID: "00000001",
		Department: "部门A",
		NormalDays: 20,
	}}

	require.NoError(t, WriteSummary(summaries, path))

	rows := openRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, SummaryHeader, rows[0])
	assert.Equal(t, "20", rows[1][3])
	// Zero counters export as empty cells, so short rows are expected.
	for _, cell := range rows[1][4:] {
		assert.Empty(t, cell)
	}
}

func TestSplitByDepartment(t *testing.T) {
	dir := t.TempDir()
	days := []*models.AttendanceDay{
		sampleDay("部门A/车间一", models.StatusNormal, false),
		sampleDay("部门B", models.StatusNormal, false),
	}
	summaries := []*models.PersonSummary{
		{Name: "张三", EmployeeID: "00000001", Department: "部门A/车间一", NormalDays: 1},
		{Name: "李四", EmployeeID: "00000002", Department: "部门B", NormalDays: 1},
	}

	summaryFiles, detailFiles, err := SplitByDepartment(days, summaries, dir)
	require.NoError(t, err)
	require.Len(t, summaryFiles, 2)
	require.Len(t, detailFiles, 2)
	assert.Equal(t, "部门A", summaryFiles[0].Department)
	assert.FileExists(t, filepath.Join(dir, "部门A_汇总.xlsx"))
	assert.FileExists(t, filepath.Join(dir, "部门B_明细.xlsx"))

	rows := openRows(t, filepath.Join(dir, "部门A_明细.xlsx"))
	require.Len(t, rows, 2)
	assert.Equal(t, "部门A/车间一", rows[1][2])
}

func TestSplitPunchRecords(t *testing.T) {
	dir := t.TempDir()
	rows := [][]string{
		{"工号", "考勤时间", "所属组织"},
		{"00000001", "2025-01-06 08:30:00", "后勤公司/招待所/前台"},
		{"00000002", "2025-01-06 08:31:00", "后勤公司/食堂"},
		{"00000003", "2025-01-06 08:32:00", "后勤公司/招待所"},
		{"00000004", "2025-01-06 08:33:00", "后勤公司"},
	}

	files, err := SplitPunchRecords(rows, dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.FileExists(t, filepath.Join(dir, "招待所_考勤记录.csv"))
	assert.FileExists(t, filepath.Join(dir, "食堂_考勤记录.csv"))
	assert.FileExists(t, filepath.Join(dir, "未知单位_考勤记录.csv"))

	data, err := os.ReadFile(filepath.Join(dir, "招待所_考勤记录.csv"))
	require.NoError(t, err)
	content := string(data)
	assert.Equal(t, "\xEF\xBB\xBF", content[:3])
	assert.Contains(t, content, "工号,考勤时间,所属组织")
	assert.Contains(t, content, "00000001")
	assert.Contains(t, content, "00000003")
	assert.NotContains(t, content, "00000002")
}

func TestSplitPunchRecordsMissingOrgColumn(t *testing.T) {
	_, err := SplitPunchRecords([][]string{{"工号", "考勤时间"}}, t.TempDir())
	assert.Error(t, err)
}

func TestCreateZip(t *testing.T) {
	dir := t.TempDir()
	summary := filepath.Join(dir, "汇总表.xlsx")
	detail := filepath.Join(dir, "明细表.xlsx")
	punch := filepath.Join(dir, "招待所_考勤记录.csv")
	for _, path := range []string{summary, detail, punch} {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	deptSummary := DeptFile{Department: "部门A", Path: summary}

	zipPath := filepath.Join(dir, "考勤结果汇总.zip")
	require.NoError(t, CreateZip(zipPath, summary, detail,
		[]DeptFile{deptSummary},
		[]DeptFile{{Department: "部门A", Path: filepath.Join(dir, "missing.xlsx")}},
		[]string{punch}))

	r, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, names, []string{
		"汇总表.xlsx",
		"明细表.xlsx",
		"各单位汇总/部门A_汇总.xlsx",
		"原始打卡记录/招待所_考勤记录.csv",
	})
}
