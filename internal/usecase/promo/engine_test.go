package usecase

import (
	"testing"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
)

var window = struct{ start, end time.Time }{
	start: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	end:   time.Date(2026, 1, 11, 23, 59, 59, 0, time.UTC),
}

func testRule(minHandle, percent, capUnits int64) *domain.LossRebateRule {
	return &domain.LossRebateRule{
		WindowStart:    window.start,
		WindowEnd:      window.end,
		MinHandleUnits: minHandle,
		PercentBack:    percent,
		CapUnits:       capUnits,
		Filter:         domain.BetFilter{Kind: domain.FilterNone},
	}
}

func settledBet(stake int64, result domain.BetResult) *domain.Bet {
	payout := int64(0)
	if result == domain.ResultWin {
		payout = stake * 2
	} else if result == domain.ResultPush {
		payout = stake
	}
	return &domain.Bet{
		Status:          domain.BetSettled,
		Result:          result,
		OddsAmerican:    -110,
		StakeCashUnits:  stake,
		PayoutCashUnits: &payout,
		PlacedAt:        window.start.Add(24 * time.Hour),
	}
}

var weekMember = &domain.WeekMember{WeekID: "w1", MemberID: "m1", MemberName: "Sal"}

func TestEvaluateMember_QualifiedAward(t *testing.T) {
	rule := testRule(500, 50, 200)
	bets := []*domain.Bet{
		settledBet(300, domain.ResultWin),
		settledBet(200, domain.ResultLoss),
		settledBet(100, domain.ResultLoss),
	}

	result := EvaluateMember(rule, weekMember, bets)

	if result.EligibleHandleUnits != 600 {
		t.Errorf("expected handle 600, got %d", result.EligibleHandleUnits)
	}
	if result.EligibleLosingStake != 300 {
		t.Errorf("expected losing stake 300, got %d", result.EligibleLosingStake)
	}
	if !result.Qualified {
		t.Fatal("expected member to qualify")
	}
	if result.ProjectedAward != 150 {
		t.Errorf("expected award 150, got %d", result.ProjectedAward)
	}
	if result.HandleProgress != 100 {
		t.Errorf("expected progress 100, got %f", result.HandleProgress)
	}
}

func TestEvaluateMember_CapApplies(t *testing.T) {
	rule := testRule(0, 50, 100)
	bets := []*domain.Bet{settledBet(500, domain.ResultLoss)}

	result := EvaluateMember(rule, weekMember, bets)
	if result.ProjectedAward != 100 {
		t.Errorf("expected capped award 100, got %d", result.ProjectedAward)
	}
}

func TestEvaluateMember_UnderMinHandle(t *testing.T) {
	rule := testRule(500, 50, 200)
	bets := []*domain.Bet{settledBet(400, domain.ResultLoss)}

	result := EvaluateMember(rule, weekMember, bets)
	if result.Qualified {
		t.Error("expected member under min handle not to qualify")
	}
	if result.ProjectedAward != 0 {
		t.Errorf("expected no award, got %d", result.ProjectedAward)
	}
	if result.HandleProgress != 80 {
		t.Errorf("expected progress 80, got %f", result.HandleProgress)
	}
}

func TestEvaluateMember_NoLossesNoAward(t *testing.T) {
	rule := testRule(0, 50, 200)
	bets := []*domain.Bet{
		settledBet(300, domain.ResultWin),
		settledBet(200, domain.ResultPush),
	}

	result := EvaluateMember(rule, weekMember, bets)
	if result.Qualified {
		t.Error("a member without losing stake must not qualify")
	}
}

func TestEvaluateMember_BothSidesDisqualifies(t *testing.T) {
	rule := testRule(0, 50, 200)
	rule.DisqualifyBothSides = true

	sideA := settledBet(200, domain.ResultLoss)
	sideA.EventKey = "kc-buf"
	sideB := settledBet(200, domain.ResultWin)
	sideB.EventKey = "kc-buf"

	result := EvaluateMember(rule, weekMember, []*domain.Bet{sideA, sideB})
	if !result.Disqualified {
		t.Fatal("expected both-sides disqualification")
	}
	if result.Qualified || result.ProjectedAward != 0 {
		t.Errorf("disqualified member must get nothing, got %+v", result)
	}
	if result.DisqualifyReason != "Bet both sides: kc-buf" {
		t.Errorf("unexpected reason %q", result.DisqualifyReason)
	}
}

func TestEvaluateMember_BothSidesAllowedWhenFlagOff(t *testing.T) {
	rule := testRule(0, 50, 200)

	sideA := settledBet(200, domain.ResultLoss)
	sideA.EventKey = "kc-buf"
	sideB := settledBet(200, domain.ResultWin)
	sideB.EventKey = "kc-buf"

	result := EvaluateMember(rule, weekMember, []*domain.Bet{sideA, sideB})
	if result.Disqualified {
		t.Error("flag off must not disqualify")
	}
	if !result.Qualified {
		t.Error("expected qualification from the losing side")
	}
}

func TestEvaluateMember_VoidedBetsExcluded(t *testing.T) {
	rule := testRule(500, 50, 200)
	voided := settledBet(600, domain.ResultLoss)
	voided.Status = domain.BetVoided

	result := EvaluateMember(rule, weekMember, []*domain.Bet{voided})
	if result.EligibleBetsCount != 0 {
		t.Errorf("voided bet must not count, got %d", result.EligibleBetsCount)
	}
}
