package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultAwardRepository struct {
	DB *gorm.DB
}

func NewDefaultAwardRepository(db *gorm.DB) *DefaultAwardRepository {
	return &DefaultAwardRepository{DB: db}
}

func (r *DefaultAwardRepository) CreateAward(award *domain.FreePlayAward) error {
	return r.DB.Create(mappers.ToGORMAward(award)).Error
}

func (r *DefaultAwardRepository) CreateAwardIfAbsent(award *domain.FreePlayAward) (bool, error) {
	created := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.FreePlayAwardModel{})
		switch award.Source {
		case domain.AwardPromo:
			query = query.Where("week_id = ? AND member_id = ? AND promo_id = ?",
				award.WeekID, award.MemberID, award.PromoID)
		case domain.AwardDefaultRebate:
			query = query.Where("week_id = ? AND member_id = ? AND source = ?",
				award.WeekID, award.MemberID, domain.AwardDefaultRebate)
		default:
			return fmt.Errorf("source %s has no idempotence key", award.Source)
		}

		var existing int64
		if err := query.Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		if err := tx.Create(mappers.ToGORMAward(award)).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

func (r *DefaultAwardRepository) VoidAward(awardID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var model models.FreePlayAwardModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, "id = ?", awardID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: award %s", domain.ErrNotFound, awardID)
			}
			return err
		}
		if model.Status != string(domain.AwardEarned) {
			return fmt.Errorf("%w: award %s is %s", domain.ErrInvalidState, awardID, model.Status)
		}

		err = tx.Model(&models.FreePlayAwardModel{}).
			Where("id = ?", awardID).
			Update("status", domain.AwardVoided).Error
		if err != nil {
			return err
		}

		// An award already credited to the balance is taken back.
		if model.AppliedAt != nil {
			return tx.Model(&models.MemberModel{}).
				Where("id = ?", model.MemberID).
				Update("free_play_balance", gorm.Expr("free_play_balance - ?", model.AmountUnits)).Error
		}
		return nil
	})
}

func (r *DefaultAwardRepository) GetAwardByID(awardID string) (*domain.FreePlayAward, error) {
	var model models.FreePlayAwardModel
	if err := r.DB.First(&model, "id = ?", awardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: award %s", domain.ErrNotFound, awardID)
		}
		return nil, err
	}
	return mappers.ToDomainAward(&model), nil
}

func (r *DefaultAwardRepository) ListAwardsByWeek(weekID string) ([]*domain.FreePlayAward, error) {
	var awardModels []models.FreePlayAwardModel
	err := r.DB.Where("week_id = ?", weekID).
		Order("created_at ASC").
		Find(&awardModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainAwards(awardModels), nil
}

func (r *DefaultAwardRepository) ListEarnedAwardsByWeekMember(weekID, memberID string) ([]*domain.FreePlayAward, error) {
	var awardModels []models.FreePlayAwardModel
	err := r.DB.
		Where("week_id = ? AND member_id = ? AND status = ?", weekID, memberID, domain.AwardEarned).
		Order("created_at ASC").
		Find(&awardModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainAwards(awardModels), nil
}

func (r *DefaultAwardRepository) ListEarnedPromoAwards(weekID, memberID string) ([]*domain.FreePlayAward, error) {
	var awardModels []models.FreePlayAwardModel
	err := r.DB.
		Where("week_id = ? AND member_id = ? AND source = ? AND status = ?",
			weekID, memberID, domain.AwardPromo, domain.AwardEarned).
		Order("created_at ASC").
		Find(&awardModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainAwards(awardModels), nil
}

func (r *DefaultAwardRepository) ApplyUnappliedAwards(weekID string, appliedAt time.Time) (map[string]int64, error) {
	applied := make(map[string]int64)
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var awardModels []models.FreePlayAwardModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("week_id = ? AND status = ? AND applied_at IS NULL", weekID, domain.AwardEarned).
			Find(&awardModels).Error
		if err != nil {
			return err
		}

		for i := range awardModels {
			award := &awardModels[i]
			err := tx.Model(&models.FreePlayAwardModel{}).
				Where("id = ?", award.ID).
				Update("applied_at", appliedAt).Error
			if err != nil {
				return err
			}
			applied[award.MemberID] += award.AmountUnits
		}

		for memberID, total := range applied {
			err := tx.Model(&models.MemberModel{}).
				Where("id = ?", memberID).
				Update("free_play_balance", gorm.Expr("free_play_balance + ?", total)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}

func toDomainAwards(awardModels []models.FreePlayAwardModel) []*domain.FreePlayAward {
	awards := make([]*domain.FreePlayAward, len(awardModels))
	for i := range awardModels {
		awards[i] = mappers.ToDomainAward(&awardModels[i])
	}
	return awards
}
