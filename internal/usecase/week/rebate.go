package usecase

import (
	"fmt"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	rootuc "github.com/crewpool/pool-ledger-service/internal/usecase"
)

// generateDefaultRebates gives every member who lost cash this week the
// house rebate. Promo awards count against it: a member whose promos
// already earned at least the default rebate gets nothing, otherwise only
// the difference is topped up.
func (uc *DefaultWeekUsecase) generateDefaultRebates(weekID string) (int, int64, error) {
	weekMembers, err := uc.WeekMemberRepo.ListWeekMembers(weekID)
	if err != nil {
		return 0, 0, err
	}

	issued := 0
	var unitsIssued int64
	for _, weekMember := range weekMembers {
		bets, err := uc.BetRepo.ListBetsByWeekMember(weekID, weekMember.MemberID)
		if err != nil {
			return issued, unitsIssued, err
		}

		cashProfit := domain.SettledCashPL(bets)
		if cashProfit >= 0 {
			continue
		}
		cashLoss := -cashProfit

		defaultRebate := cashLoss * uc.RebatePercent / 100
		if defaultRebate <= 0 {
			continue
		}

		promoAwards, err := uc.AwardRepo.ListEarnedPromoAwards(weekID, weekMember.MemberID)
		if err != nil {
			return issued, unitsIssued, err
		}
		var totalPromoFP int64
		for _, award := range promoAwards {
			totalPromoFP += award.AmountUnits
		}
		if defaultRebate <= totalPromoFP {
			continue
		}
		topUp := defaultRebate - totalPromoFP

		notes := fmt.Sprintf("%d%% rebate: %d loss × %d%% = %d FP",
			uc.RebatePercent, cashLoss, uc.RebatePercent, defaultRebate)
		if totalPromoFP > 0 {
			notes += fmt.Sprintf(" (promo: %d, top-up: %d)", totalPromoFP, topUp)
		}

		award := &domain.FreePlayAward{
			ID:          rootuc.NewAwardID(),
			WeekID:      weekID,
			MemberID:    weekMember.MemberID,
			AmountUnits: topUp,
			Source:      domain.AwardDefaultRebate,
			Status:      domain.AwardEarned,
			Notes:       notes,
		}
		created, err := uc.AwardRepo.CreateAwardIfAbsent(award)
		if err != nil {
			return issued, unitsIssued, err
		}
		if !created {
			continue
		}

		issued++
		unitsIssued += topUp
		if uc.Metrics != nil {
			uc.Metrics.RecordAwardIssued(string(domain.AwardDefaultRebate), topUp)
		}
	}
	return issued, unitsIssued, nil
}
