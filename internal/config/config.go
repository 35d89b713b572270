package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type AnalyzerConfig struct {
	// InputDir holds the source spreadsheets, discovered by filename keyword.
	InputDir string
	// OutputDir receives the workbooks, split files and the result archive.
	OutputDir string

	// DatabaseURL is the sqlite file for persisting the exported tables;
	// empty disables persistence.
	DatabaseURL string

	// OAMorningCutoffHour is the strict morning-arrival cutoff for OA
	// punches (8 or 9 depending on the export source).
	OAMorningCutoffHour int

	// HolidayJSON optionally points at a year-calendar JSON merged with the
	// holiday sheet.
	HolidayJSON string

	// TelegramToken/ReportChatID enable the completion notification when
	// both are set.
	TelegramToken string
	ReportChatID  int64
}

var instance *AnalyzerConfig
var once sync.Once

func GetAnalyzerConfig() *AnalyzerConfig {
	once.Do(func() {
		instance = &AnalyzerConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %s", err.Error())
		}

		instance.InputDir = getEnv("INPUT_DIR", "")
		if instance.InputDir == "" {
			logrus.Fatal("could not get input dir")
		}

		instance.OutputDir = getEnv("OUTPUT_DIR", "output")
		instance.DatabaseURL = getEnv("DATABASE_URL", "")
		instance.OAMorningCutoffHour = int(getEnvAsInt("OA_MORNING_CUTOFF_HOUR", 9))
		instance.HolidayJSON = getEnv("HOLIDAY_JSON", "")
		instance.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
		instance.ReportChatID = getEnvAsInt("REPORT_CHAT_ID", 0)
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
