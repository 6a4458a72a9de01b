package mappers

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainAward(model *models.FreePlayAwardModel) *domain.FreePlayAward {
	promoID := ""
	if model.PromoID != nil {
		promoID = *model.PromoID
	}
	return &domain.FreePlayAward{
		ID:          model.ID,
		WeekID:      model.WeekID,
		MemberID:    model.MemberID,
		AmountUnits: model.AmountUnits,
		Source:      domain.AwardSource(model.Source),
		Status:      domain.AwardStatus(model.Status),
		PromoID:     promoID,
		Notes:       model.Notes,
		AppliedAt:   model.AppliedAt,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMAward(award *domain.FreePlayAward) *models.FreePlayAwardModel {
	var promoID *string
	if award.PromoID != "" {
		promoID = &award.PromoID
	}
	return &models.FreePlayAwardModel{
		ID:          award.ID,
		WeekID:      award.WeekID,
		MemberID:    award.MemberID,
		AmountUnits: award.AmountUnits,
		Source:      string(award.Source),
		Status:      string(award.Status),
		PromoID:     promoID,
		Notes:       award.Notes,
		AppliedAt:   award.AppliedAt,
		CreatedAt:   award.CreatedAt,
	}
}
