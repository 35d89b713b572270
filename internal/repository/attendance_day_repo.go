package repository

import (
	"time"

	"attendance-analyzer/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AttendanceDayRepository interface {
	BulkCreate(days []*models.AttendanceDay) error
	GetByEmployee(employeeID string) ([]*models.AttendanceDay, error)
	GetByDate(date time.Time) ([]*models.AttendanceDay, error)
	GetAnomalous() ([]*models.AttendanceDay, error)
	CountAnomalous() (int64, error)
	DeleteAll() error
}

type GormAttendanceDayRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormAttendanceDayRepository(db *gorm.DB) (*GormAttendanceDayRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.AttendanceDay{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate attendance_days table")
		return nil, err
	}

	logger.Info("Attendance day repository initialized")
	return &GormAttendanceDayRepository{db: db, logger: logger}, nil
}

// BulkCreate persists the full detail table in batches; every run replaces
// the previous export, so callers DeleteAll first.
func (r *GormAttendanceDayRepository) BulkCreate(days []*models.AttendanceDay) error {
	if len(days) == 0 {
		return nil
	}

	result := r.db.CreateInBatches(days, 500)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to bulk-create attendance days")
		return result.Error
	}

	r.logger.WithField("rows", len(days)).Debug("Attendance days persisted")
	return nil
}

func (r *GormAttendanceDayRepository) GetByEmployee(employeeID string) ([]*models.AttendanceDay, error) {
	var days []*models.AttendanceDay
	result := r.db.Where("employee_id = ?", employeeID).Order("date ASC").Find(&days)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance days by employee")
		return nil, result.Error
	}
	return days, nil
}

func (r *GormAttendanceDayRepository) GetByDate(date time.Time) ([]*models.AttendanceDay, error) {
	var days []*models.AttendanceDay
	result := r.db.Where("DATE(date) = ?", date.Format("2006-01-02")).Find(&days)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance days by date")
		return nil, result.Error
	}
	return days, nil
}

func (r *GormAttendanceDayRepository) GetAnomalous() ([]*models.AttendanceDay, error) {
	var days []*models.AttendanceDay
	result := r.db.Where("anomalous = ?", true).Order("employee_id ASC, date ASC").Find(&days)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get anomalous attendance days")
		return nil, result.Error
	}
	return days, nil
}

func (r *GormAttendanceDayRepository) CountAnomalous() (int64, error) {
	var count int64
	result := r.db.Model(&models.AttendanceDay{}).Where("anomalous = ?", true).Count(&count)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to count anomalous attendance days")
		return 0, result.Error
	}
	return count, nil
}

func (r *GormAttendanceDayRepository) DeleteAll() error {
	return r.db.Exec("DELETE FROM attendance_days").Error
}
