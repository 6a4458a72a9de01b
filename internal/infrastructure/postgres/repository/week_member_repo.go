package repository

import (
	"errors"
	"fmt"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWeekMemberRepository struct {
	DB *gorm.DB
}

func NewDefaultWeekMemberRepository(db *gorm.DB) *DefaultWeekMemberRepository {
	return &DefaultWeekMemberRepository{DB: db}
}

func (r *DefaultWeekMemberRepository) AddWeekMember(weekMember *domain.WeekMember) error {
	return r.DB.Create(mappers.ToGORMWeekMember(weekMember)).Error
}

func (r *DefaultWeekMemberRepository) GetWeekMember(weekID, memberID string) (*domain.WeekMember, error) {
	var model models.WeekMemberModel
	err := r.DB.Preload("Member").
		First(&model, "week_id = ? AND member_id = ?", weekID, memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: member %s is not in week %s", domain.ErrNotFound, memberID, weekID)
		}
		return nil, err
	}
	return mappers.ToDomainWeekMember(&model), nil
}

func (r *DefaultWeekMemberRepository) ListWeekMembers(weekID string) ([]*domain.WeekMember, error) {
	var weekMemberModels []models.WeekMemberModel
	err := r.DB.Preload("Member").
		Joins("JOIN member_models ON member_models.id = week_member_models.member_id").
		Where("week_member_models.week_id = ?", weekID).
		Order("member_models.name ASC").
		Find(&weekMemberModels).Error
	if err != nil {
		return nil, err
	}

	weekMembers := make([]*domain.WeekMember, len(weekMemberModels))
	for i := range weekMemberModels {
		weekMembers[i] = mappers.ToDomainWeekMember(&weekMemberModels[i])
	}
	return weekMembers, nil
}

func (r *DefaultWeekMemberRepository) UpdateCreditLimit(weekID, memberID string, creditLimitUnits int64) error {
	result := r.DB.Model(&models.WeekMemberModel{}).
		Where("week_id = ? AND member_id = ?", weekID, memberID).
		Update("credit_limit_units", creditLimitUnits)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: member %s is not in week %s", domain.ErrNotFound, memberID, weekID)
	}
	return nil
}

func (r *DefaultWeekMemberRepository) RemoveWeekMember(weekID, memberID string) error {
	result := r.DB.Where("week_id = ? AND member_id = ?", weekID, memberID).
		Delete(&models.WeekMemberModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: member %s is not in week %s", domain.ErrNotFound, memberID, weekID)
	}
	return nil
}
