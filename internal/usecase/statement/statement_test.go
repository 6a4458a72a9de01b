package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/testutil"
)

func newStatementFixture(t *testing.T) (*testutil.Store, *DefaultStatementUsecase) {
	t.Helper()
	store := testutil.NewStore()
	store.Members["m1"] = &domain.Member{ID: "m1", Name: "Sal"}
	store.Members["m2"] = &domain.Member{ID: "m2", Name: "Tony"}
	store.Weeks["w1"] = &domain.Week{
		ID: "w1", Name: "Week 1", Status: domain.WeekOpen,
		StartAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
	}
	for _, memberID := range []string{"m1", "m2"} {
		if err := store.AddWeekMember(&domain.WeekMember{WeekID: "w1", MemberID: memberID, CreditLimitUnits: 1000}); err != nil {
			t.Fatalf("add member: %v", err)
		}
	}
	return store, NewDefaultStatementUsecase(store, store, store, store, store, nil)
}

func addBet(store *testutil.Store, id, memberID string, stake int64, result domain.BetResult, payout int64) {
	settledAt := time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC)
	store.Bets[id] = &domain.Bet{
		ID: id, WeekID: "w1", MemberID: memberID,
		OddsAmerican: -110, StakeCashUnits: stake,
		Status: domain.BetSettled, Result: result,
		PayoutCashUnits: &payout,
		PlacedAt:        time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC),
		SettledAt:       &settledAt,
	}
}

func TestGenerateStatements_Derivation(t *testing.T) {
	store, statementUsecase := newStatementFixture(t)
	addBet(store, "b1", "m1", 300, domain.ResultLoss, 0)
	addBet(store, "b2", "m1", 100, domain.ResultWin, 250)
	store.Awards["a1"] = &domain.FreePlayAward{
		ID: "a1", WeekID: "w1", MemberID: "m1", AmountUnits: 45,
		Source: domain.AwardDefaultRebate, Status: domain.AwardEarned,
	}
	store.Awards["a2"] = &domain.FreePlayAward{
		ID: "a2", WeekID: "w1", MemberID: "m1", AmountUnits: 99,
		Source: domain.AwardManual, Status: domain.AwardVoided,
	}

	count, err := statementUsecase.GenerateStatements("w1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 statements, got %d", count)
	}

	statements, _ := store.ListStatementsByWeek("w1")
	var m1 *domain.WeekStatement
	for _, statement := range statements {
		if statement.MemberID == "m1" {
			m1 = statement
		}
	}
	if m1 == nil {
		t.Fatal("missing m1 statement")
	}
	// -300 loss, +150 win profit, 45 earned FP; voided award excluded.
	if m1.CashProfitUnits != -150 {
		t.Errorf("expected cash profit -150, got %d", m1.CashProfitUnits)
	}
	if m1.FreePlayEarnedUnits != 45 {
		t.Errorf("expected FP earned 45, got %d", m1.FreePlayEarnedUnits)
	}
	if m1.WeeklyScoreUnits != -105 {
		t.Errorf("expected score -105, got %d", m1.WeeklyScoreUnits)
	}
	if m1.OwesHouseUnits != 150 || m1.HouseOwesUnits != 0 {
		t.Errorf("expected m1 to owe 150, got %+v", m1)
	}
	if m1.HouseOwesFreePlayUnits != 45 {
		t.Errorf("expected FP owed 45, got %d", m1.HouseOwesFreePlayUnits)
	}
}

func TestGenerateStatements_Rerun(t *testing.T) {
	store, statementUsecase := newStatementFixture(t)
	addBet(store, "b1", "m1", 100, domain.ResultLoss, 0)

	if _, err := statementUsecase.GenerateStatements("w1"); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := statementUsecase.GenerateStatements("w1"); err != nil {
		t.Fatalf("second: %v", err)
	}
	statements, _ := store.ListStatementsByWeek("w1")
	if len(statements) != 2 {
		t.Errorf("rerun must upsert, not duplicate: %d statements", len(statements))
	}
}

func TestWeekResultsSummary(t *testing.T) {
	store, statementUsecase := newStatementFixture(t)
	addBet(store, "b1", "m1", 300, domain.ResultLoss, 0)
	addBet(store, "b2", "m2", 150, domain.ResultWin, 300)
	store.Awards["a1"] = &domain.FreePlayAward{
		ID: "a1", WeekID: "w1", MemberID: "m1", AmountUnits: 90,
		Source: domain.AwardDefaultRebate, Status: domain.AwardEarned,
	}
	if _, err := statementUsecase.GenerateStatements("w1"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	summary, err := statementUsecase.WeekResultsSummary("w1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	for _, want := range []string{
		"Week 1 — Weekly Report",
		"1. Tony: +150 units [1W-0L]",
		"2. Sal: -300 units (+90 FP) [0W-1L]",
		"Sal owes: 300 units",
		"Tony is owed: 150 units",
		"Free Play Owed:",
		"Sal: 90 FP",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestGetLeaderboard(t *testing.T) {
	store, statementUsecase := newStatementFixture(t)
	closedAt := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	store.Weeks["w1"].Status = domain.WeekClosed
	store.Weeks["w1"].ClosedAt = &closedAt
	store.Weeks["w2"] = &domain.Week{ID: "w2", Name: "Week 2", Status: domain.WeekClosed, ClosedAt: &closedAt}
	store.Weeks["w3"] = &domain.Week{ID: "w3", Name: "Week 3", Status: domain.WeekOpen}

	seed := []struct {
		id, weekID, memberID string
		cash, freePlay       int64
	}{
		{"s1", "w1", "m1", -200, 60},
		{"s2", "w1", "m2", 300, 0},
		{"s3", "w2", "m1", 100, 0},
		{"s4", "w2", "m2", -50, 15},
		{"s5", "w3", "m1", 9000, 0}, // open week, must be ignored
	}
	for _, s := range seed {
		store.Statements[s.weekID+"/"+s.memberID] = &domain.WeekStatement{
			ID: s.id, WeekID: s.weekID, MemberID: s.memberID,
			MemberName:          store.Members[s.memberID].Name,
			CashProfitUnits:     s.cash,
			FreePlayEarnedUnits: s.freePlay,
			WeeklyScoreUnits:    s.cash + s.freePlay,
		}
	}

	leaderboard, err := statementUsecase.GetLeaderboard()
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(leaderboard) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(leaderboard))
	}

	// m2 leads on total P/L: 300-50 = 250 vs m1 -200+100 = -100.
	first, second := leaderboard[0], leaderboard[1]
	if first.MemberID != "m2" || first.TotalPL != 250 {
		t.Errorf("unexpected leader %+v", first)
	}
	if second.MemberID != "m1" || second.TotalPL != -100 {
		t.Errorf("unexpected second %+v", second)
	}

	// m2 won w1, m1 won w2; each also finished last once.
	if first.Wins != 1 || first.Losses != 1 {
		t.Errorf("expected m2 1W-1L, got %dW-%dL", first.Wins, first.Losses)
	}
	if second.WeeksPlayed != 2 {
		t.Errorf("open week must not count, weeks played %d", second.WeeksPlayed)
	}
	if second.BestWeek != 100 || second.WorstWeek != -140 {
		t.Errorf("expected best 100 worst -140, got %d/%d", second.BestWeek, second.WorstWeek)
	}
	if second.AvgScore != -20 {
		t.Errorf("expected avg -20, got %f", second.AvgScore)
	}
	if second.TotalFreePlay != 60 {
		t.Errorf("expected total FP 60, got %d", second.TotalFreePlay)
	}
}
