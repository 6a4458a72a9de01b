package usecase

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/google/uuid"
)

// GenerateStatements derives and upserts one settlement line per enrolled
// member: cash profit from settled bets, free play from earned awards,
// and who owes whom. Keyed by (week, member), a rerun overwrites rather
// than duplicates.
func (uc *DefaultStatementUsecase) GenerateStatements(weekID string) (int, error) {
	weekMembers, err := uc.WeekMemberRepo.ListWeekMembers(weekID)
	if err != nil {
		return 0, err
	}

	generated := 0
	for _, weekMember := range weekMembers {
		bets, err := uc.BetRepo.ListBetsByWeekMember(weekID, weekMember.MemberID)
		if err != nil {
			return generated, err
		}
		awards, err := uc.AwardRepo.ListEarnedAwardsByWeekMember(weekID, weekMember.MemberID)
		if err != nil {
			return generated, err
		}

		statement := deriveStatement(weekID, weekMember.MemberID, bets, awards)
		if err := uc.StatementRepo.UpsertStatement(statement); err != nil {
			return generated, err
		}
		generated++
		if uc.Metrics != nil {
			uc.Metrics.RecordStatementUpsert(weekID)
		}
	}
	return generated, nil
}

func deriveStatement(weekID, memberID string, bets []*domain.Bet, awards []*domain.FreePlayAward) *domain.WeekStatement {
	cashProfit := domain.SettledCashPL(bets)

	var freePlayEarned int64
	for _, award := range awards {
		freePlayEarned += award.AmountUnits
	}

	statement := &domain.WeekStatement{
		ID:                     uuid.New().String(),
		WeekID:                 weekID,
		MemberID:               memberID,
		CashProfitUnits:        cashProfit,
		FreePlayEarnedUnits:    freePlayEarned,
		WeeklyScoreUnits:       cashProfit + freePlayEarned,
		HouseOwesFreePlayUnits: freePlayEarned,
	}
	if cashProfit < 0 {
		statement.OwesHouseUnits = -cashProfit
	} else {
		statement.HouseOwesUnits = cashProfit
	}
	return statement
}
