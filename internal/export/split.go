package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"attendance-analyzer/internal/models"

	"github.com/sirupsen/logrus"
)

// DeptFile pairs a sanitized unit name with the workbook written for it.
type DeptFile struct {
	Department string
	Path       string
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "未知单位"
	}
	return name
}

// SplitByDepartment writes one summary and one detail workbook per top-level
// unit (the first segment of the department path).
func SplitByDepartment(days []*models.AttendanceDay, summaries []*models.PersonSummary, dir string) ([]DeptFile, []DeptFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create split dir %s: %w", dir, err)
	}

	daysByDept := make(map[string][]*models.AttendanceDay)
	var deptOrder []string
	for _, d := range days {
		dept := sanitizeName(models.PathSegment(d.Department, 0))
		if _, ok := daysByDept[dept]; !ok {
			deptOrder = append(deptOrder, dept)
		}
		daysByDept[dept] = append(daysByDept[dept], d)
	}

	summariesByDept := make(map[string][]*models.PersonSummary)
	for _, s := range summaries {
		dept := sanitizeName(models.PathSegment(s.Department, 0))
		summariesByDept[dept] = append(summariesByDept[dept], s)
	}

	var summaryFiles, detailFiles []DeptFile
	for _, dept := range deptOrder {
		summaryPath := filepath.Join(dir, dept+"_汇总.xlsx")
		if err := WriteSummary(summariesByDept[dept], summaryPath); err != nil {
			return nil, nil, err
		}
		summaryFiles = append(summaryFiles, DeptFile{Department: dept, Path: summaryPath})

		detailPath := filepath.Join(dir, dept+"_明细.xlsx")
		if err := WriteDetail(daysByDept[dept], detailPath); err != nil {
			return nil, nil, err
		}
		detailFiles = append(detailFiles, DeptFile{Department: dept, Path: detailPath})
	}

	logrus.WithField("departments", len(deptOrder)).Info("Per-department workbooks written")
	return summaryFiles, detailFiles, nil
}

// SplitPunchRecords regroups the raw punch table by second-level organization
// (the second segment of the 所属组织 path) into one UTF-8 CSV per unit,
// preserving the original columns. Rows whose org path has no second level
// are grouped under the sanitized fallback name.
func SplitPunchRecords(rows [][]string, dir string) ([]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create split dir %s: %w", dir, err)
	}

	header := rows[0]
	orgCol := -1
	for i, name := range header {
		if strings.TrimSpace(name) == "所属组织" {
			orgCol = i
			break
		}
	}
	if orgCol < 0 {
		return nil, fmt.Errorf("punch records: missing required columns: 所属组织")
	}

	groups := make(map[string][][]string)
	var order []string
	for _, row := range rows[1:] {
		org := ""
		if orgCol < len(row) {
			org = models.PathSegment(row[orgCol], 1)
		}
		org = sanitizeName(org)
		if _, ok := groups[org]; !ok {
			order = append(order, org)
		}
		groups[org] = append(groups[org], row)
	}

	var files []string
	for _, org := range order {
		path := filepath.Join(dir, org+"_考勤记录.csv")
		if err := writeCSV(path, header, groups[org]); err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	logrus.WithField("organizations", len(files)).Info("Raw punch records split")
	return files, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv %s: %w", path, err)
	}
	defer f.Close()

	// UTF-8 BOM so spreadsheet software detects the encoding.
	if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
