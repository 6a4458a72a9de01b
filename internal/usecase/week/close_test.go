package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/testutil"
	promouc "github.com/crewpool/pool-ledger-service/internal/usecase/promo"
	statementuc "github.com/crewpool/pool-ledger-service/internal/usecase/statement"
)

func newCloseFixture(t *testing.T) (*testutil.Store, *DefaultWeekUsecase) {
	t.Helper()
	store := testutil.NewStore()
	store.Members["m1"] = &domain.Member{ID: "m1", Name: "Sal"}
	store.Members["m2"] = &domain.Member{ID: "m2", Name: "Tony"}
	store.Weeks["w1"] = &domain.Week{
		ID:      "w1",
		Name:    "Week 1",
		Status:  domain.WeekOpen,
		StartAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
	}
	for _, memberID := range []string{"m1", "m2"} {
		if err := store.AddWeekMember(&domain.WeekMember{WeekID: "w1", MemberID: memberID, CreditLimitUnits: 1000}); err != nil {
			t.Fatalf("add member: %v", err)
		}
	}

	promoUsecase := promouc.NewDefaultPromoUsecase(store, store, store, store, store, nil)
	statementUsecase := statementuc.NewDefaultStatementUsecase(store, store, store, store, store, nil)
	weekUsecase := NewDefaultWeekUsecase(store, store, store, store, promoUsecase, statementUsecase, 30, nil, nil)
	return store, weekUsecase
}

func addSettledBet(store *testutil.Store, id, memberID string, stake int64, result domain.BetResult, payout int64) {
	settledAt := time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC)
	store.Bets[id] = &domain.Bet{
		ID:              id,
		WeekID:          "w1",
		MemberID:        memberID,
		OddsAmerican:    -110,
		StakeCashUnits:  stake,
		Status:          domain.BetSettled,
		Result:          result,
		PayoutCashUnits: &payout,
		PlacedAt:        time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC),
		SettledAt:       &settledAt,
	}
}

func addPromo(t *testing.T, store *testutil.Store, ruleJSON string) {
	t.Helper()
	rule, err := domain.ParseLossRebateRule([]byte(ruleJSON))
	if err != nil {
		t.Fatalf("parse rule: %v", err)
	}
	store.Promos["p1"] = &domain.Promo{
		ID:       "p1",
		WeekID:   "w1",
		Name:     "NFL Loss Rebate",
		Type:     domain.PromoLossRebate,
		Active:   true,
		RuleJSON: ruleJSON,
		Rule:     rule,
	}
}

const closeRuleJSON = `{"windowStart":"2026-01-05T00:00:00Z","windowEnd":"2026-01-11T23:59:59Z","minHandleUnits":0,"percentBack":50,"capUnits":200}`

func TestCloseWeek_OpenBetsBlockClose(t *testing.T) {
	store, weekUsecase := newCloseFixture(t)
	store.Bets["b1"] = &domain.Bet{
		ID: "b1", WeekID: "w1", MemberID: "m1",
		StakeCashUnits: 100, Status: domain.BetOpen,
		PlacedAt: time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC),
	}

	_, err := weekUsecase.CloseWeek("w1")
	if !errors.Is(err, domain.ErrWeekNotCloseable) {
		t.Fatalf("expected ErrWeekNotCloseable, got %v", err)
	}
}

func TestCloseWeek_FullPipeline(t *testing.T) {
	store, weekUsecase := newCloseFixture(t)
	addPromo(t, store, closeRuleJSON)
	// m1 loses 300 cash, m2 wins 150.
	addSettledBet(store, "b1", "m1", 300, domain.ResultLoss, 0)
	addSettledBet(store, "b2", "m2", 150, domain.ResultWin, 300)

	result, err := weekUsecase.CloseWeek("w1")
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	// Promo pays 50% of 300. The 30% default rebate (90) is already
	// covered by the promo award, so no top-up.
	if result.PromoAwardsIssued != 1 || result.PromoAwardUnitsIssued != 150 {
		t.Errorf("expected 1 promo award of 150, got %d/%d", result.PromoAwardsIssued, result.PromoAwardUnitsIssued)
	}
	if result.DefaultRebatesIssued != 0 {
		t.Errorf("expected no default rebate, got %d", result.DefaultRebatesIssued)
	}
	if result.StatementsGenerated != 2 {
		t.Errorf("expected 2 statements, got %d", result.StatementsGenerated)
	}
	if got := result.FreePlayApplied["m1"]; got != 150 {
		t.Errorf("expected 150 applied to m1, got %d", got)
	}
	if got := store.Members["m1"].FreePlayBalance; got != 150 {
		t.Errorf("expected balance 150, got %d", got)
	}

	week, _ := store.GetWeekByID("w1")
	if week.Status != domain.WeekClosed || week.ClosedAt == nil {
		t.Errorf("week must be CLOSED with a timestamp, got %+v", week)
	}

	statements, _ := store.ListStatementsByWeek("w1")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(statements))
	}
	// Sorted by weekly score: m2 (+150) before m1 (-300+150).
	if statements[0].MemberID != "m2" || statements[0].HouseOwesUnits != 150 {
		t.Errorf("unexpected top statement %+v", statements[0])
	}
	if statements[1].MemberID != "m1" || statements[1].OwesHouseUnits != 300 || statements[1].FreePlayEarnedUnits != 150 {
		t.Errorf("unexpected bottom statement %+v", statements[1])
	}
	if statements[1].WeeklyScoreUnits != -150 {
		t.Errorf("expected weekly score -150, got %d", statements[1].WeeklyScoreUnits)
	}
}

func TestCloseWeek_DefaultRebateTopUp(t *testing.T) {
	store, weekUsecase := newCloseFixture(t)
	// Cap the promo at 50 so the 30% default (90) exceeds it.
	capped := `{"windowStart":"2026-01-05T00:00:00Z","windowEnd":"2026-01-11T23:59:59Z","minHandleUnits":0,"percentBack":50,"capUnits":50}`
	addPromo(t, store, capped)
	addSettledBet(store, "b1", "m1", 300, domain.ResultLoss, 0)

	result, err := weekUsecase.CloseWeek("w1")
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if result.PromoAwardUnitsIssued != 50 {
		t.Errorf("expected capped promo award 50, got %d", result.PromoAwardUnitsIssued)
	}
	if result.DefaultRebatesIssued != 1 || result.RebateUnitsIssued != 40 {
		t.Errorf("expected top-up of 40, got %d/%d", result.DefaultRebatesIssued, result.RebateUnitsIssued)
	}
	if got := store.Members["m1"].FreePlayBalance; got != 90 {
		t.Errorf("expected total 90 FP applied, got %d", got)
	}
}

func TestCloseWeek_DefaultRebateWithoutPromo(t *testing.T) {
	store, weekUsecase := newCloseFixture(t)
	addSettledBet(store, "b1", "m1", 300, domain.ResultLoss, 0)
	addSettledBet(store, "b2", "m2", 100, domain.ResultWin, 200)

	result, err := weekUsecase.CloseWeek("w1")
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if result.DefaultRebatesIssued != 1 || result.RebateUnitsIssued != 90 {
		t.Errorf("expected 30%% rebate of 90, got %d/%d", result.DefaultRebatesIssued, result.RebateUnitsIssued)
	}
	// Winners get nothing.
	if got := store.Members["m2"].FreePlayBalance; got != 0 {
		t.Errorf("winner must get no rebate, balance %d", got)
	}
}

func TestCloseWeek_StagesAreIdempotent(t *testing.T) {
	store, weekUsecase := newCloseFixture(t)
	addPromo(t, store, closeRuleJSON)
	addSettledBet(store, "b1", "m1", 300, domain.ResultLoss, 0)

	// Run the award and apply stages twice before the close, as a retry
	// after a mid-pipeline failure would.
	if issued, _, err := weekUsecase.PromoUsecase.GeneratePromoAwards("w1"); err != nil || issued != 1 {
		t.Fatalf("first promo run: %d, %v", issued, err)
	}
	if issued, _, err := weekUsecase.PromoUsecase.GeneratePromoAwards("w1"); err != nil || issued != 0 {
		t.Fatalf("second promo run must issue nothing, got %d, %v", issued, err)
	}
	if _, _, err := weekUsecase.generateDefaultRebates("w1"); err != nil {
		t.Fatalf("first rebate run: %v", err)
	}
	if issued, _, err := weekUsecase.generateDefaultRebates("w1"); err != nil || issued != 0 {
		t.Fatalf("second rebate run must issue nothing, got %d, %v", issued, err)
	}
	if _, err := store.ApplyUnappliedAwards("w1", time.Now()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	result, err := weekUsecase.CloseWeek("w1")
	if err != nil {
		t.Fatalf("close after retries: %v", err)
	}
	if result.PromoAwardsIssued != 0 || result.DefaultRebatesIssued != 0 {
		t.Errorf("close must not double-issue, got %+v", result)
	}
	if got := store.Members["m1"].FreePlayBalance; got != 150 {
		t.Errorf("balance must be applied exactly once, got %d", got)
	}
}

func TestCloseWeek_ClosedWeekRejected(t *testing.T) {
	store, weekUsecase := newCloseFixture(t)
	addSettledBet(store, "b1", "m1", 100, domain.ResultPush, 100)

	if _, err := weekUsecase.CloseWeek("w1"); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := weekUsecase.CloseWeek("w1"); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("second close must fail, got %v", err)
	}
	_ = store
}
