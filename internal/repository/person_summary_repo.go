package repository

import (
	"errors"

	"attendance-analyzer/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PersonSummaryRepository interface {
	BulkCreate(summaries []*models.PersonSummary) error
	GetByEmployeeID(employeeID string) (*models.PersonSummary, error)
	GetAll() ([]*models.PersonSummary, error)
	GetByDepartmentPrefix(prefix string) ([]*models.PersonSummary, error)
	DeleteAll() error
}

type GormPersonSummaryRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormPersonSummaryRepository(db *gorm.DB) (*GormPersonSummaryRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.PersonSummary{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate person_summaries table")
		return nil, err
	}

	logger.Info("Person summary repository initialized")
	return &GormPersonSummaryRepository{db: db, logger: logger}, nil
}

func (r *GormPersonSummaryRepository) BulkCreate(summaries []*models.PersonSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	for _, s := range summaries {
		if !s.IsValid() {
			r.logger.WithField("employee_id", s.EmployeeID).Warn("Invalid summary data")
			return errors.New("invalid person summary data")
		}
	}

	result := r.db.CreateInBatches(summaries, 500)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to bulk-create person summaries")
		return result.Error
	}

	r.logger.WithField("rows", len(summaries)).Debug("Person summaries persisted")
	return nil
}

func (r *GormPersonSummaryRepository) GetByEmployeeID(employeeID string) (*models.PersonSummary, error) {
	var summary models.PersonSummary
	result := r.db.Where("employee_id = ?", employeeID).First(&summary)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("employee_id", employeeID).Debug("Person summary not found")
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get person summary")
		return nil, result.Error
	}
	return &summary, nil
}

func (r *GormPersonSummaryRepository) GetAll() ([]*models.PersonSummary, error) {
	var summaries []*models.PersonSummary
	result := r.db.Order("employee_id ASC").Find(&summaries)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get person summaries")
		return nil, result.Error
	}
	return summaries, nil
}

func (r *GormPersonSummaryRepository) GetByDepartmentPrefix(prefix string) ([]*models.PersonSummary, error) {
	var summaries []*models.PersonSummary
	result := r.db.Where("department LIKE ?", prefix+"%").Order("employee_id ASC").Find(&summaries)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get person summaries by department")
		return nil, result.Error
	}
	return summaries, nil
}

func (r *GormPersonSummaryRepository) DeleteAll() error {
	return r.db.Exec("DELETE FROM person_summaries").Error
}
