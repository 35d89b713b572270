package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Kind identifies one of the input tables the analyzer consumes.
type Kind string

const (
	KindRoster  Kind = "person"  // 通信录
	KindOA      Kind = "oa"      // OA打卡
	KindTrip    Kind = "trip"    // 出差记录
	KindPC      Kind = "pc"      // PC考勤结果
	KindOffSite Kind = "leave"   // 离岗登记
	KindShift   Kind = "shift"   // 倒班记录
	KindLeave   Kind = "qj"      // 请假记录
	KindHoliday Kind = "holiday" // 节假日
	KindPunch   Kind = "record"  // PC打卡记录
)

// fileKeywords maps filename keywords to input kinds. The first keyword found
// in a file name wins. 考勤结果 must be checked before 打卡记录 so the PC
// result sheet is not mistaken for the raw punch export.
var fileKeywords = []struct {
	Keyword string
	Kind    Kind
}{
	{"通信录", KindRoster},
	{"OA打卡", KindOA},
	{"出差记录", KindTrip},
	{"PC考勤结果", KindPC},
	{"离岗登记", KindOffSite},
	{"倒班记录", KindShift},
	{"请假记录", KindLeave},
	{"节假日", KindHoliday},
	{"PC打卡记录", KindPunch},
}

var requiredKinds = []Kind{
	KindRoster, KindOA, KindTrip, KindPC, KindOffSite,
	KindShift, KindLeave, KindHoliday, KindPunch,
}

// ConfigError is fatal to the run: a required input file or column is missing.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// DiscoverInputs scans a directory and classifies every .xlsx/.csv file by
// filename keyword. Unrecognized files are warned about and skipped; a missing
// required kind is a configuration error.
func DiscoverInputs(dir string) (map[Kind]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input dir %s: %w", dir, err)
	}

	files := make(map[Kind]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".xlsx" && ext != ".csv" {
			continue
		}

		matched := false
		for _, fk := range fileKeywords {
			if strings.Contains(name, fk.Keyword) {
				if prev, ok := files[fk.Kind]; ok {
					logrus.WithFields(logrus.Fields{
						"kind":    fk.Kind,
						"kept":    filepath.Base(prev),
						"ignored": name,
					}).Warn("Duplicate input file for kind, keeping first")
				} else {
					files[fk.Kind] = filepath.Join(dir, name)
				}
				matched = true
				break
			}
		}
		if !matched {
			logrus.WithField("file", name).Warn("Unrecognized input file, skipped")
		}
	}

	var missing []string
	for _, kind := range requiredKinds {
		if _, ok := files[kind]; !ok {
			missing = append(missing, string(kind))
		}
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Message: fmt.Sprintf("missing required input files: %s", strings.Join(missing, ", "))}
	}

	return files, nil
}
