package export

import (
	"fmt"

	"attendance-analyzer/internal/models"
	"attendance-analyzer/pkg/identity"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Sheet1"

	// markYes is the export form of a boolean/anomaly flag.
	markYes = "是"

	// highlightColor is the fill applied to anomalous rows for reviewers.
	highlightColor = "FFFF00"
)

// DetailHeader lists the detail-export columns in order.
var DetailHeader = []string{
	"姓名", "工号", "部门", "考勤日期",
	"pc出勤状态", "oa出勤状态", "oa是否打卡", "oa离岗登记",
	"oa请假信息", "oa请假类型", "oa请假天数",
	"oa出差信息", "oa出差地点", "倒班出勤", "加班时长", "是否异常",
}

// SummaryHeader lists the summary-export columns in order.
var SummaryHeader = []string{
	"姓名", "工号", "部门",
	"正常出勤天数", "出差", "迟到", "早退", "缺勤", "旷工天数",
	"病假", "事假", "年休假", "婚丧假", "探亲假", "护理假", "产假", "陪产假", "育儿假",
	"未知请假类型", "加班时长", "节假日打卡天数", "旷工/请假天数",
}

func yesOrBlank(v bool) string {
	if v {
		return markYes
	}
	return ""
}

// cleanZero blanks numeric zeros so the summary sheet reads sparsely, the way
// reviewers expect it.
func cleanZero[T int | float64](v T) interface{} {
	if v == 0 {
		return ""
	}
	return v
}

func detailRow(d *models.AttendanceDay) []interface{} {
	return []interface{}{
		d.Name, d.EmployeeID, d.Department, identity.FormatDate(d.Date),
		d.PCStatus, d.OAStatus, yesOrBlank(d.OAPunched), yesOrBlank(d.OffSiteRegistered),
		yesOrBlank(d.LeaveRecorded), d.LeaveType, d.LeaveDayFraction,
		yesOrBlank(d.TripRecorded), d.TripLocation, yesOrBlank(d.ShiftAttended),
		d.OvertimeHours, yesOrBlank(d.Anomalous),
	}
}

func summaryRow(s *models.PersonSummary) []interface{} {
	return []interface{}{
		s.Name, s.EmployeeID, s.Department,
		cleanZero(s.NormalDays), cleanZero(s.TripDays), cleanZero(s.LateDays),
		cleanZero(s.EarlyLeaveDays), cleanZero(s.AbsenceDays), cleanZero(s.NoShowDays),
		cleanZero(s.SickLeaveDays), cleanZero(s.PersonalLeaveDays), cleanZero(s.AnnualLeaveDays),
		cleanZero(s.MarriageFuneralDays), cleanZero(s.FamilyVisitDays), cleanZero(s.NursingLeaveDays),
		cleanZero(s.MaternityDays), cleanZero(s.PaternityDays), cleanZero(s.ChildcareDays),
		cleanZero(s.UnknownLeaveDays), cleanZero(s.OvertimeHours), cleanZero(s.HolidayWorkedDays),
		cleanZero(s.AbsenceOrLeaveDays),
	}
}

// WriteDetail exports the full per-(person, date) table, highlighting
// anomalous rows.
func WriteDetail(days []*models.AttendanceDay, path string) error {
	rows := make([][]interface{}, 0, len(days))
	flags := make([]bool, 0, len(days))
	for _, d := range days {
		rows = append(rows, detailRow(d))
		flags = append(flags, d.Anomalous)
	}
	return writeWorkbook(path, DetailHeader, rows, flags)
}

// WriteSummary exports the per-person counter table. Rows of people who
// accumulated any anomalous day are not highlighted here; the detail sheet
// carries the per-day flags.
func WriteSummary(summaries []*models.PersonSummary, path string) error {
	rows := make([][]interface{}, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, summaryRow(s))
	}
	return writeWorkbook(path, SummaryHeader, rows, nil)
}

// writeWorkbook writes a single-sheet workbook. highlight[i] marks data row i
// for a full-row fill.
func writeWorkbook(path string, header []string, rows [][]interface{}, highlight []bool) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, name := range header {
		cellRef, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetCellValue(sheetName, cellRef, name); err != nil {
			return fmt.Errorf("failed to write header cell %s: %w", cellRef, err)
		}
	}

	var fillStyle int
	if highlight != nil {
		var err error
		fillStyle, err = f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{
				Type:    "pattern",
				Color:   []string{highlightColor},
				Pattern: 1,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to create highlight style: %w", err)
		}
	}

	for i, row := range rows {
		rowNum := i + 2
		startRef, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetSheetRow(sheetName, startRef, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}

		if highlight != nil && highlight[i] {
			endRef, err := excelize.CoordinatesToCellName(len(header), rowNum)
			if err != nil {
				return fmt.Errorf("failed to build cell reference: %w", err)
			}
			if err := f.SetCellStyle(sheetName, startRef, endRef, fillStyle); err != nil {
				return fmt.Errorf("failed to highlight row %d: %w", rowNum, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(rows),
	}).Info("Workbook written")
	return nil
}
