package mappers

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainBet(model *models.BetModel) *domain.Bet {
	return &domain.Bet{
		ID:                 model.ID,
		WeekID:             model.WeekID,
		MemberID:           model.MemberID,
		Description:        model.Description,
		EventKey:           model.EventKey,
		Sport:              model.Sport,
		BetType:            model.BetType,
		OddsAmerican:       model.OddsAmerican,
		StakeCashUnits:     model.StakeCashUnits,
		StakeFreePlayUnits: model.StakeFreePlayUnits,
		Status:             model.Status,
		Result:             domain.BetResult(model.Result),
		PayoutCashUnits:    model.PayoutCashUnits,
		PlacedAt:           model.PlacedAt,
		SettledAt:          model.SettledAt,
	}
}

func ToGORMBet(bet *domain.Bet) *models.BetModel {
	return &models.BetModel{
		ID:                 bet.ID,
		WeekID:             bet.WeekID,
		MemberID:           bet.MemberID,
		Description:        bet.Description,
		EventKey:           bet.EventKey,
		Sport:              bet.Sport,
		BetType:            bet.BetType,
		OddsAmerican:       bet.OddsAmerican,
		StakeCashUnits:     bet.StakeCashUnits,
		StakeFreePlayUnits: bet.StakeFreePlayUnits,
		Status:             bet.Status,
		Result:             string(bet.Result),
		PayoutCashUnits:    bet.PayoutCashUnits,
		PlacedAt:           bet.PlacedAt,
		SettledAt:          bet.SettledAt,
	}
}
