package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"attendance-analyzer/internal/config"
	"attendance-analyzer/internal/engine"
	"attendance-analyzer/internal/export"
	"attendance-analyzer/internal/repository"
	"attendance-analyzer/internal/source"
	"attendance-analyzer/pkg/holidays"
	"attendance-analyzer/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	logrus.Info("Initializing config...")
	cfg := config.GetAnalyzerConfig()
	logrus.Info("Config initialized...")

	started := time.Now()

	files, err := source.DiscoverInputs(cfg.InputDir)
	if err != nil {
		logrus.Fatal("Failed to discover input files: ", err)
	}

	roster, err := source.ReadRoster(files[source.KindRoster])
	if err != nil {
		logrus.Fatal("Failed to load roster: ", err)
	}
	pcRows, start, end, err := source.ReadPCAttendance(files[source.KindPC])
	if err != nil {
		logrus.Fatal("Failed to load PC attendance: ", err)
	}
	oaPunches, err := source.ReadOAPunches(files[source.KindOA])
	if err != nil {
		logrus.Fatal("Failed to load OA punches: ", err)
	}
	offSite, err := source.ReadOffSite(files[source.KindOffSite])
	if err != nil {
		logrus.Fatal("Failed to load off-site registrations: ", err)
	}
	leave, err := source.ReadLeave(files[source.KindLeave])
	if err != nil {
		logrus.Fatal("Failed to load leave records: ", err)
	}
	trips, err := source.ReadTrips(files[source.KindTrip])
	if err != nil {
		logrus.Fatal("Failed to load business trips: ", err)
	}
	shifts, err := source.ReadShifts(files[source.KindShift])
	if err != nil {
		logrus.Fatal("Failed to load shift schedule: ", err)
	}
	punches, err := source.ReadPunches(files[source.KindPunch])
	if err != nil {
		logrus.Fatal("Failed to load raw punch records: ", err)
	}
	holidaySet, err := source.ReadHolidays(files[source.KindHoliday])
	if err != nil {
		logrus.Fatal("Failed to load holidays: ", err)
	}

	if cfg.HolidayJSON != "" {
		calendarSet, err := holidays.ParseCalendarJSON(cfg.HolidayJSON)
		if err != nil {
			logrus.Fatal("Failed to load holiday calendar: ", err)
		}
		holidaySet = holidays.Merge(holidaySet, calendarSet)
	}

	result, err := engine.Run(engine.Inputs{
		Roster:            roster,
		PC:                pcRows,
		OA:                oaPunches,
		OffSite:           offSite,
		Leave:             leave,
		Trips:             trips,
		Shifts:            shifts,
		Punches:           punches,
		Holidays:          holidaySet,
		Start:             start,
		End:               end,
		MorningCutoffHour: cfg.OAMorningCutoffHour,
	})
	if err != nil {
		logrus.Fatal("Reconciliation failed: ", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logrus.Fatal("Failed to create output dir: ", err)
	}

	summaryFile := filepath.Join(cfg.OutputDir, "汇总表.xlsx")
	detailFile := filepath.Join(cfg.OutputDir, "明细表.xlsx")
	if err := export.WriteSummary(result.Summaries, summaryFile); err != nil {
		logrus.Fatal("Failed to write summary workbook: ", err)
	}
	if err := export.WriteDetail(result.Days, detailFile); err != nil {
		logrus.Fatal("Failed to write detail workbook: ", err)
	}

	deptSummaries, deptDetails, err := export.SplitByDepartment(
		result.Days, result.Summaries, filepath.Join(cfg.OutputDir, "各单位"))
	if err != nil {
		logrus.Fatal("Failed to split by department: ", err)
	}

	rawPunchRows, err := source.RawRows(files[source.KindPunch])
	if err != nil {
		logrus.Fatal("Failed to re-read raw punch records: ", err)
	}
	punchFiles, err := export.SplitPunchRecords(rawPunchRows, filepath.Join(cfg.OutputDir, "原始打卡记录"))
	if err != nil {
		logrus.Fatal("Failed to split raw punch records: ", err)
	}

	zipFile := filepath.Join(cfg.OutputDir, "考勤结果汇总.zip")
	if err := export.CreateZip(zipFile, summaryFile, detailFile, deptSummaries, deptDetails, punchFiles); err != nil {
		logrus.Fatal("Failed to create result archive: ", err)
	}

	anomalies := 0
	for _, day := range result.Days {
		if day.Anomalous {
			anomalies++
		}
	}

	if cfg.DatabaseURL != "" {
		persistResults(cfg.DatabaseURL, result)
	}

	elapsed := time.Since(started)
	logrus.WithFields(logrus.Fields{
		"records":   len(result.Days),
		"people":    len(result.Summaries),
		"anomalies": anomalies,
		"elapsed":   elapsed.Round(time.Millisecond).String(),
	}).Info("Attendance analysis complete")

	if cfg.TelegramToken != "" && cfg.ReportChatID != 0 {
		client, err := telegram.NewClient(cfg.TelegramToken, cfg.ReportChatID)
		if err != nil {
			logrus.Infof("Warning: Failed to create Telegram client: %v", err)
			return
		}
		text := fmt.Sprintf("考勤分析完成：%d 人，%d 条记录，%d 条异常，用时 %s",
			len(result.Summaries), len(result.Days), anomalies, elapsed.Round(time.Second))
		if err := client.Notify(text); err != nil {
			logrus.Infof("Warning: Failed to send completion report: %v", err)
		}
	}
}

// persistResults replaces the previously exported tables in sqlite.
func persistResults(databaseURL string, result *engine.Result) {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	dayRepo, err := repository.NewGormAttendanceDayRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create attendance day repository")
	}
	summaryRepo, err := repository.NewGormPersonSummaryRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create person summary repository")
	}

	if err := dayRepo.DeleteAll(); err != nil {
		logrus.WithError(err).Fatal("Failed to clear attendance days")
	}
	if err := summaryRepo.DeleteAll(); err != nil {
		logrus.WithError(err).Fatal("Failed to clear person summaries")
	}

	if err := dayRepo.BulkCreate(result.Days); err != nil {
		logrus.WithError(err).Fatal("Failed to persist attendance days")
	}
	if err := summaryRepo.BulkCreate(result.Summaries); err != nil {
		logrus.WithError(err).Fatal("Failed to persist person summaries")
	}

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.Infof("Error closing database: %v", err)
		}
	}

	logrus.Info("Exported tables persisted to database")
}
