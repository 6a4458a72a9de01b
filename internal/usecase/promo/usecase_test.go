package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/testutil"
	promodto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/promo"
)

const validRuleJSON = `{"windowStart":"2026-01-05T00:00:00Z","windowEnd":"2026-01-11T23:59:59Z","minHandleUnits":500,"percentBack":50,"capUnits":200}`

func newPromoFixture(t *testing.T) (*testutil.Store, *DefaultPromoUsecase) {
	t.Helper()
	store := testutil.NewStore()
	store.Members["m1"] = &domain.Member{ID: "m1", Name: "Sal"}
	store.Weeks["w1"] = &domain.Week{ID: "w1", Name: "Week 1", Status: domain.WeekOpen}
	if err := store.AddWeekMember(&domain.WeekMember{WeekID: "w1", MemberID: "m1", CreditLimitUnits: 1000}); err != nil {
		t.Fatalf("add member: %v", err)
	}
	return store, NewDefaultPromoUsecase(store, store, store, store, store, nil)
}

func TestCreatePromo(t *testing.T) {
	_, promoUsecase := newPromoFixture(t)

	promo, err := promoUsecase.CreatePromo(&promodto.CreatePromoInput{
		WeekID: "w1", Name: "NFL Rebate", Type: "LOSS_REBATE", RuleJSON: []byte(validRuleJSON),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !promo.Active {
		t.Error("new promos start active")
	}
	if promo.Rule == nil || promo.Rule.PercentBack != 50 {
		t.Errorf("rule must be parsed at create, got %+v", promo.Rule)
	}
}

func TestCreatePromo_Rejections(t *testing.T) {
	store, promoUsecase := newPromoFixture(t)

	if _, err := promoUsecase.CreatePromo(&promodto.CreatePromoInput{
		WeekID: "w1", Name: "x", Type: "PARLAY_BOOST", RuleJSON: []byte(validRuleJSON),
	}); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("unknown type: %v", err)
	}

	if _, err := promoUsecase.CreatePromo(&promodto.CreatePromoInput{
		WeekID: "w1", Name: "x", Type: "LOSS_REBATE", RuleJSON: []byte(`{"percentBack":300}`),
	}); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("bad rule: %v", err)
	}

	store.Weeks["w1"].Status = domain.WeekClosed
	if _, err := promoUsecase.CreatePromo(&promodto.CreatePromoInput{
		WeekID: "w1", Name: "x", Type: "LOSS_REBATE", RuleJSON: []byte(validRuleJSON),
	}); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("closed week: %v", err)
	}
}

func TestDeletePromo_GuardedByAwards(t *testing.T) {
	store, promoUsecase := newPromoFixture(t)
	promo, err := promoUsecase.CreatePromo(&promodto.CreatePromoInput{
		WeekID: "w1", Name: "NFL Rebate", Type: "LOSS_REBATE", RuleJSON: []byte(validRuleJSON),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	store.Awards["a1"] = &domain.FreePlayAward{
		ID: "a1", WeekID: "w1", MemberID: "m1", AmountUnits: 50,
		Source: domain.AwardPromo, Status: domain.AwardEarned, PromoID: promo.ID,
	}
	if err := promoUsecase.DeletePromo(promo.ID); !errors.Is(err, domain.ErrPromoHasAwards) {
		t.Fatalf("expected ErrPromoHasAwards, got %v", err)
	}

	if err := promoUsecase.SetPromoActive(promo.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	delete(store.Awards, "a1")
	if err := promoUsecase.DeletePromo(promo.ID); err != nil {
		t.Fatalf("delete without awards: %v", err)
	}
}

func TestGetPromoProgress(t *testing.T) {
	store, promoUsecase := newPromoFixture(t)
	promo, err := promoUsecase.CreatePromo(&promodto.CreatePromoInput{
		WeekID: "w1", Name: "NFL Rebate", Type: "LOSS_REBATE", RuleJSON: []byte(validRuleJSON),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	payout := int64(0)
	settledAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	store.Bets["b1"] = &domain.Bet{
		ID: "b1", WeekID: "w1", MemberID: "m1",
		OddsAmerican: -110, StakeCashUnits: 300,
		Status: domain.BetSettled, Result: domain.ResultLoss,
		PayoutCashUnits: &payout,
		PlacedAt:        time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC),
		SettledAt:       &settledAt,
	}

	progress, err := promoUsecase.GetPromoProgress(promo.ID)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(progress) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(progress))
	}
	entry := progress[0]
	if entry.EligibleHandleUnits != 300 || entry.EligibleLosingStake != 300 {
		t.Errorf("unexpected progress %+v", entry)
	}
	if entry.Qualified {
		t.Error("300 handle is under the 500 minimum")
	}
	if entry.HandleProgress != 60 {
		t.Errorf("expected progress 60, got %f", entry.HandleProgress)
	}
}
