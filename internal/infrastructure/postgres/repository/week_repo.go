package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWeekRepository struct {
	DB *gorm.DB
}

func NewDefaultWeekRepository(db *gorm.DB) *DefaultWeekRepository {
	return &DefaultWeekRepository{DB: db}
}

func (r *DefaultWeekRepository) CreateWeek(week *domain.Week) error {
	return r.DB.Create(mappers.ToGORMWeek(week)).Error
}

func (r *DefaultWeekRepository) GetWeekByID(weekID string) (*domain.Week, error) {
	var model models.WeekModel
	if err := r.DB.First(&model, "id = ?", weekID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: week %s", domain.ErrNotFound, weekID)
		}
		return nil, err
	}
	return mappers.ToDomainWeek(&model), nil
}

func (r *DefaultWeekRepository) ListWeeks() ([]*domain.Week, error) {
	var weekModels []models.WeekModel
	if err := r.DB.Order("start_at DESC").Find(&weekModels).Error; err != nil {
		return nil, err
	}

	weeks := make([]*domain.Week, len(weekModels))
	for i := range weekModels {
		weeks[i] = mappers.ToDomainWeek(&weekModels[i])
	}
	return weeks, nil
}

func (r *DefaultWeekRepository) MarkWeekClosed(weekID string, closedAt time.Time) error {
	result := r.DB.Model(&models.WeekModel{}).
		Where("id = ? AND status = ?", weekID, domain.WeekOpen).
		Updates(map[string]interface{}{
			"status":    domain.WeekClosed,
			"closed_at": closedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: week %s is not open", domain.ErrInvalidState, weekID)
	}
	return nil
}
