package usecase

import (
	"fmt"
	"log/slog"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	rootuc "github.com/crewpool/pool-ledger-service/internal/usecase"
)

// GeneratePromoAwards evaluates every active loss-rebate promo of the week
// and writes an EARNED award per qualified member. An existing award for
// the same promo and member is left alone, so a retried week close never
// pays twice. Returns the number of awards created and their unit total.
func (uc *DefaultPromoUsecase) GeneratePromoAwards(weekID string) (int, int64, error) {
	promos, err := uc.PromoRepo.ListActiveLossRebates(weekID)
	if err != nil {
		return 0, 0, err
	}
	if len(promos) == 0 {
		return 0, 0, nil
	}

	weekMembers, err := uc.WeekMemberRepo.ListWeekMembers(weekID)
	if err != nil {
		return 0, 0, err
	}
	bets, err := uc.BetRepo.ListBetsByWeek(weekID)
	if err != nil {
		return 0, 0, err
	}
	betsByMember := groupBetsByMember(bets)

	issued := 0
	var unitsIssued int64
	for _, promo := range promos {
		for _, weekMember := range weekMembers {
			result := EvaluateMember(promo.Rule, weekMember, betsByMember[weekMember.MemberID])
			if !result.Qualified || result.ProjectedAward <= 0 {
				continue
			}

			award := &domain.FreePlayAward{
				ID:          rootuc.NewAwardID(),
				WeekID:      weekID,
				MemberID:    weekMember.MemberID,
				AmountUnits: result.ProjectedAward,
				Source:      domain.AwardPromo,
				Status:      domain.AwardEarned,
				PromoID:     promo.ID,
				Notes: fmt.Sprintf("%s: %d losing units × %d%%",
					promo.Name, result.EligibleLosingStake, promo.Rule.PercentBack),
			}
			created, err := uc.AwardRepo.CreateAwardIfAbsent(award)
			if err != nil {
				return issued, unitsIssued, err
			}
			if !created {
				continue
			}

			issued++
			unitsIssued += result.ProjectedAward
			if uc.Metrics != nil {
				uc.Metrics.RecordAwardIssued(string(domain.AwardPromo), result.ProjectedAward)
			}
			slog.Info("promo award issued",
				"weekID", weekID,
				"promoID", promo.ID,
				"memberID", weekMember.MemberID,
				"amountUnits", result.ProjectedAward)
		}
	}
	return issued, unitsIssued, nil
}

func groupBetsByMember(bets []*domain.Bet) map[string][]*domain.Bet {
	grouped := make(map[string][]*domain.Bet)
	for _, bet := range bets {
		grouped[bet.MemberID] = append(grouped[bet.MemberID], bet)
	}
	return grouped
}
