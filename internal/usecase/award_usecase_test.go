package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/testutil"
	"github.com/crewpool/pool-ledger-service/internal/usecase"
)

func newAwardFixture(t *testing.T) (*testutil.Store, *usecase.DefaultAwardUsecase) {
	t.Helper()
	store := testutil.NewStore()
	store.Members["m1"] = &domain.Member{ID: "m1", Name: "Sal"}
	store.Weeks["w1"] = &domain.Week{ID: "w1", Name: "Week 1", Status: domain.WeekOpen}
	if err := store.AddWeekMember(&domain.WeekMember{WeekID: "w1", MemberID: "m1", CreditLimitUnits: 500}); err != nil {
		t.Fatalf("add member: %v", err)
	}
	return store, usecase.NewDefaultAwardUsecase(store, store, store, nil, nil)
}

func TestGrantManualAward(t *testing.T) {
	store, awardUsecase := newAwardFixture(t)

	award, err := awardUsecase.GrantManualAward("w1", "m1", 75, "good sport")
	if err != nil {
		t.Fatalf("grant: %v", err)
	}
	if award.Source != domain.AwardManual || award.Status != domain.AwardEarned {
		t.Errorf("unexpected award %+v", award)
	}
	if award.ID == "" {
		t.Error("award must get an id")
	}

	// Not applied until week close.
	if got := store.Members["m1"].FreePlayBalance; got != 0 {
		t.Errorf("manual award must not touch the balance immediately, got %d", got)
	}
}

func TestGrantManualAward_Validation(t *testing.T) {
	store, awardUsecase := newAwardFixture(t)

	if _, err := awardUsecase.GrantManualAward("w1", "m1", 0, ""); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("zero amount: %v", err)
	}
	if _, err := awardUsecase.GrantManualAward("w1", "stranger", 50, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unenrolled member: %v", err)
	}

	store.Weeks["w1"].Status = domain.WeekClosed
	if _, err := awardUsecase.GrantManualAward("w1", "m1", 50, ""); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("closed week: %v", err)
	}
}

func TestVoidAward_ReversesAppliedBalance(t *testing.T) {
	store, awardUsecase := newAwardFixture(t)

	award, err := awardUsecase.GrantManualAward("w1", "m1", 75, "")
	if err != nil {
		t.Fatalf("grant: %v", err)
	}
	if _, err := store.ApplyUnappliedAwards("w1", time.Now()); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := store.Members["m1"].FreePlayBalance; got != 75 {
		t.Fatalf("expected balance 75, got %d", got)
	}

	if err := awardUsecase.VoidAward(award.ID); err != nil {
		t.Fatalf("void: %v", err)
	}
	if got := store.Members["m1"].FreePlayBalance; got != 0 {
		t.Errorf("voiding an applied award must reverse the balance, got %d", got)
	}

	if err := awardUsecase.VoidAward(award.ID); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("double void: %v", err)
	}
}

func TestGetCreditInfo_Formula(t *testing.T) {
	store, _ := newAwardFixture(t)
	store.Members["m1"].FreePlayBalance = 40
	payout := int64(0)
	settledAt := time.Now()
	store.Bets["b1"] = &domain.Bet{
		ID: "b1", WeekID: "w1", MemberID: "m1",
		StakeCashUnits: 200, Status: domain.BetSettled, Result: domain.ResultLoss,
		PayoutCashUnits: &payout, SettledAt: &settledAt, PlacedAt: time.Now(),
	}
	store.Bets["b2"] = &domain.Bet{
		ID: "b2", WeekID: "w1", MemberID: "m1",
		StakeCashUnits: 100, Status: domain.BetOpen, PlacedAt: time.Now(),
	}

	ledgerUsecase := usecase.NewDefaultLedgerUsecase(store, store, store)
	creditInfo, err := ledgerUsecase.GetCreditInfo("w1", "m1")
	if err != nil {
		t.Fatalf("credit info: %v", err)
	}
	// 500 limit - 200 settled loss - 100 open exposure.
	if creditInfo.AvailableCredit != 200 {
		t.Errorf("expected available 200, got %d", creditInfo.AvailableCredit)
	}
	if creditInfo.FreePlayBalance != 40 {
		t.Errorf("expected free play 40, got %d", creditInfo.FreePlayBalance)
	}
}

func TestMemberUsecase(t *testing.T) {
	store := testutil.NewStore()
	memberUsecase := usecase.NewDefaultMemberUsecase(store)

	member, err := memberUsecase.CreateMember("  Sal  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if member.Name != "Sal" {
		t.Errorf("name must be trimmed, got %q", member.Name)
	}
	if _, err := memberUsecase.CreateMember("   "); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("blank name: %v", err)
	}

	if err := memberUsecase.RenameMember(member.ID, "Big Sal"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	renamed, _ := memberUsecase.GetMember(member.ID)
	if renamed.Name != "Big Sal" {
		t.Errorf("expected rename to stick, got %q", renamed.Name)
	}
}
