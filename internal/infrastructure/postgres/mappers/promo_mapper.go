package mappers

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainPromo(model *models.PromoModel) (*domain.Promo, error) {
	rule, err := domain.ParseLossRebateRule([]byte(model.RuleJSON))
	if err != nil {
		return nil, err
	}
	return &domain.Promo{
		ID:        model.ID,
		WeekID:    model.WeekID,
		Name:      model.Name,
		Type:      domain.PromoType(model.Type),
		Active:    model.Active,
		RuleJSON:  model.RuleJSON,
		Rule:      rule,
		CreatedAt: model.CreatedAt,
	}, nil
}

func ToGORMPromo(promo *domain.Promo) *models.PromoModel {
	return &models.PromoModel{
		ID:        promo.ID,
		WeekID:    promo.WeekID,
		Name:      promo.Name,
		Type:      string(promo.Type),
		Active:    promo.Active,
		RuleJSON:  promo.RuleJSON,
		CreatedAt: promo.CreatedAt,
	}
}
