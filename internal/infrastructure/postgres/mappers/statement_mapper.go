package mappers

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainStatement(model *models.WeekStatementModel) *domain.WeekStatement {
	return &domain.WeekStatement{
		ID:                     model.ID,
		WeekID:                 model.WeekID,
		MemberID:               model.MemberID,
		MemberName:             model.Member.Name,
		WeekName:               model.Week.Name,
		WeekClosedAt:           model.Week.ClosedAt,
		CashProfitUnits:        model.CashProfitUnits,
		FreePlayEarnedUnits:    model.FreePlayEarnedUnits,
		WeeklyScoreUnits:       model.WeeklyScoreUnits,
		OwesHouseUnits:         model.OwesHouseUnits,
		HouseOwesUnits:         model.HouseOwesUnits,
		HouseOwesFreePlayUnits: model.HouseOwesFreePlayUnits,
	}
}

func ToGORMStatement(statement *domain.WeekStatement) *models.WeekStatementModel {
	return &models.WeekStatementModel{
		ID:                     statement.ID,
		WeekID:                 statement.WeekID,
		MemberID:               statement.MemberID,
		CashProfitUnits:        statement.CashProfitUnits,
		FreePlayEarnedUnits:    statement.FreePlayEarnedUnits,
		WeeklyScoreUnits:       statement.WeeklyScoreUnits,
		OwesHouseUnits:         statement.OwesHouseUnits,
		HouseOwesUnits:         statement.HouseOwesUnits,
		HouseOwesFreePlayUnits: statement.HouseOwesFreePlayUnits,
	}
}
