package repository

import (
	"errors"
	"fmt"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPromoRepository struct {
	DB *gorm.DB
}

func NewDefaultPromoRepository(db *gorm.DB) *DefaultPromoRepository {
	return &DefaultPromoRepository{DB: db}
}

func (r *DefaultPromoRepository) CreatePromo(promo *domain.Promo) error {
	return r.DB.Create(mappers.ToGORMPromo(promo)).Error
}

func (r *DefaultPromoRepository) UpdatePromo(promo *domain.Promo) error {
	result := r.DB.Model(&models.PromoModel{}).
		Where("id = ?", promo.ID).
		Updates(map[string]interface{}{
			"name":      promo.Name,
			"rule_json": promo.RuleJSON,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: promo %s", domain.ErrNotFound, promo.ID)
	}
	return nil
}

func (r *DefaultPromoRepository) GetPromoByID(promoID string) (*domain.Promo, error) {
	var model models.PromoModel
	if err := r.DB.First(&model, "id = ?", promoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: promo %s", domain.ErrNotFound, promoID)
		}
		return nil, err
	}
	return mappers.ToDomainPromo(&model)
}

func (r *DefaultPromoRepository) ListPromosByWeek(weekID string) ([]*domain.Promo, error) {
	var promoModels []models.PromoModel
	err := r.DB.Where("week_id = ?", weekID).
		Order("created_at ASC").
		Find(&promoModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainPromos(promoModels)
}

func (r *DefaultPromoRepository) ListActiveLossRebates(weekID string) ([]*domain.Promo, error) {
	var promoModels []models.PromoModel
	err := r.DB.
		Where("week_id = ? AND active = ? AND type = ?", weekID, true, domain.PromoLossRebate).
		Order("created_at ASC").
		Find(&promoModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainPromos(promoModels)
}

func (r *DefaultPromoRepository) SetPromoActive(promoID string, active bool) error {
	result := r.DB.Model(&models.PromoModel{}).
		Where("id = ?", promoID).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: promo %s", domain.ErrNotFound, promoID)
	}
	return nil
}

func (r *DefaultPromoRepository) DeletePromo(promoID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var awardCount int64
		err := tx.Model(&models.FreePlayAwardModel{}).
			Where("promo_id = ?", promoID).
			Count(&awardCount).Error
		if err != nil {
			return err
		}
		if awardCount > 0 {
			return fmt.Errorf("%w: %d awards reference promo %s, deactivate it instead",
				domain.ErrPromoHasAwards, awardCount, promoID)
		}

		result := tx.Where("id = ?", promoID).Delete(&models.PromoModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: promo %s", domain.ErrNotFound, promoID)
		}
		return nil
	})
}

func toDomainPromos(promoModels []models.PromoModel) ([]*domain.Promo, error) {
	promos := make([]*domain.Promo, len(promoModels))
	for i := range promoModels {
		promo, err := mappers.ToDomainPromo(&promoModels[i])
		if err != nil {
			return nil, fmt.Errorf("promo %s: %w", promoModels[i].ID, err)
		}
		promos[i] = promo
	}
	return promos, nil
}
