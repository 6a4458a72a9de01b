package usecase

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	promodto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/promo"
)

func toPromoOutput(promo *domain.Promo) *promodto.PromoOutput {
	out := &promodto.PromoOutput{
		PromoID:  promo.ID,
		WeekID:   promo.WeekID,
		Name:     promo.Name,
		Type:     string(promo.Type),
		Active:   promo.Active,
		RuleJSON: promo.RuleJSON,
	}
	if promo.Rule != nil {
		out.RuleSummary = promo.Rule.FormatRule()
	}
	return out
}

func (uc *DefaultPromoUsecase) GetPromoByID(promoID string) (*promodto.PromoOutput, error) {
	promo, err := uc.PromoRepo.GetPromoByID(promoID)
	if err != nil {
		return nil, err
	}
	return toPromoOutput(promo), nil
}

func (uc *DefaultPromoUsecase) ListPromosByWeek(weekID string) ([]*promodto.PromoOutput, error) {
	promos, err := uc.PromoRepo.ListPromosByWeek(weekID)
	if err != nil {
		return nil, err
	}
	outputs := make([]*promodto.PromoOutput, len(promos))
	for i, promo := range promos {
		outputs[i] = toPromoOutput(promo)
	}
	return outputs, nil
}

// GetPromoProgress is the live standings view of one promo: every enrolled
// member evaluated against the rule over the week's current bets.
func (uc *DefaultPromoUsecase) GetPromoProgress(promoID string) ([]*promodto.MemberPromoResult, error) {
	promo, err := uc.PromoRepo.GetPromoByID(promoID)
	if err != nil {
		return nil, err
	}

	weekMembers, err := uc.WeekMemberRepo.ListWeekMembers(promo.WeekID)
	if err != nil {
		return nil, err
	}
	bets, err := uc.BetRepo.ListBetsByWeek(promo.WeekID)
	if err != nil {
		return nil, err
	}
	betsByMember := groupBetsByMember(bets)

	results := make([]*promodto.MemberPromoResult, len(weekMembers))
	for i, weekMember := range weekMembers {
		results[i] = EvaluateMember(promo.Rule, weekMember, betsByMember[weekMember.MemberID])
	}
	return results, nil
}
