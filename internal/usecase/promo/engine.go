package usecase

import (
	"fmt"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	promodto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/promo"
)

// EvaluateMember runs one member's bets through a loss-rebate rule. It is
// a pure computation over already-loaded rows: the week-close pipeline and
// the live progress endpoint both feed it the same inputs.
func EvaluateMember(rule *domain.LossRebateRule, weekMember *domain.WeekMember, bets []*domain.Bet) *promodto.MemberPromoResult {
	result := &promodto.MemberPromoResult{
		MemberID:   weekMember.MemberID,
		MemberName: weekMember.MemberName,
	}

	eventKeyCounts := make(map[string]int)
	for _, bet := range bets {
		if !rule.EligibleBet(bet) {
			continue
		}
		result.EligibleBetsCount++
		result.EligibleHandleUnits += bet.StakeCashUnits
		if bet.Status == domain.BetSettled && bet.Result == domain.ResultLoss {
			result.EligibleLosingStake += bet.StakeCashUnits
		}
		if bet.EventKey != "" {
			eventKeyCounts[bet.EventKey]++
			if rule.DisqualifyBothSides && eventKeyCounts[bet.EventKey] == 2 && !result.Disqualified {
				result.Disqualified = true
				result.DisqualifyReason = fmt.Sprintf("Bet both sides: %s", bet.EventKey)
			}
		}
	}

	// Progress toward the minimum handle, as a percentage.
	if rule.MinHandleUnits > 0 {
		result.HandleProgress = float64(result.EligibleHandleUnits) / float64(rule.MinHandleUnits) * 100
		if result.HandleProgress > 100 {
			result.HandleProgress = 100
		}
	} else {
		result.HandleProgress = 100
	}

	if result.Disqualified {
		return result
	}

	if result.EligibleHandleUnits < rule.MinHandleUnits || result.EligibleLosingStake == 0 {
		return result
	}

	result.Qualified = true
	award := result.EligibleLosingStake * rule.PercentBack / 100
	if award > rule.CapUnits {
		award = rule.CapUnits
	}
	result.ProjectedAward = award
	return result
}
