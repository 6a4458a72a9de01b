package repository

import (
	"errors"
	"fmt"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultMemberRepository struct {
	DB *gorm.DB
}

func NewDefaultMemberRepository(db *gorm.DB) *DefaultMemberRepository {
	return &DefaultMemberRepository{DB: db}
}

func (r *DefaultMemberRepository) CreateMember(member *domain.Member) error {
	return r.DB.Create(mappers.ToGORMMember(member)).Error
}

func (r *DefaultMemberRepository) UpdateMemberName(memberID, name string) error {
	result := r.DB.Model(&models.MemberModel{}).
		Where("id = ?", memberID).
		Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: member %s", domain.ErrNotFound, memberID)
	}
	return nil
}

func (r *DefaultMemberRepository) GetMemberByID(memberID string) (*domain.Member, error) {
	var model models.MemberModel
	if err := r.DB.First(&model, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: member %s", domain.ErrNotFound, memberID)
		}
		return nil, err
	}
	return mappers.ToDomainMember(&model), nil
}

func (r *DefaultMemberRepository) ListMembers() ([]*domain.Member, error) {
	var memberModels []models.MemberModel
	if err := r.DB.Order("name ASC").Find(&memberModels).Error; err != nil {
		return nil, err
	}

	members := make([]*domain.Member, len(memberModels))
	for i := range memberModels {
		members[i] = mappers.ToDomainMember(&memberModels[i])
	}
	return members, nil
}
