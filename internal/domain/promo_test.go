package domain

import (
	"strings"
	"testing"
	"time"
)

const ruleWindow = `"windowStart":"2026-01-05T00:00:00Z","windowEnd":"2026-01-11T23:59:59Z"`

func TestParseLossRebateRule(t *testing.T) {
	raw := `{` + ruleWindow + `,"minHandleUnits":500,"percentBack":50,"capUnits":200}`
	rule, err := ParseLossRebateRule([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rule.MinHandleUnits != 500 || rule.PercentBack != 50 || rule.CapUnits != 200 {
		t.Errorf("unexpected rule fields: %+v", rule)
	}
	if rule.Filter.Kind != FilterNone {
		t.Errorf("expected no filter, got %s", rule.Filter.Kind)
	}
}

func TestParseLossRebateRule_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing window", `{"percentBack":30,"minHandleUnits":0,"capUnits":100}`},
		{"window inverted", `{"windowStart":"2026-01-11T00:00:00Z","windowEnd":"2026-01-05T00:00:00Z","percentBack":30,"capUnits":100}`},
		{"percent zero", `{` + ruleWindow + `,"percentBack":0,"capUnits":100}`},
		{"percent over 100", `{` + ruleWindow + `,"percentBack":150,"capUnits":100}`},
		{"negative handle", `{` + ruleWindow + `,"percentBack":30,"minHandleUnits":-1,"capUnits":100}`},
		{"negative cap", `{` + ruleWindow + `,"percentBack":30,"capUnits":-5}`},
		{"bad pattern type", `{` + ruleWindow + `,"percentBack":30,"capUnits":100,"eventKeyPattern":42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLossRebateRule([]byte(tt.raw)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestParseLossRebateRule_FilterVariants(t *testing.T) {
	tests := []struct {
		name     string
		extra    string
		wantKind FilterKind
	}{
		{"sport wins over keyword", `,"sport":"NFL","eventKeyPattern":"chiefs"`, FilterSportBetType},
		{"bet type alone", `,"betType":"SPREAD"`, FilterSportBetType},
		{"single keyword", `,"eventKeyPattern":"chiefs"`, FilterKeyword},
		{"keyword array", `,"eventKeyPattern":["chiefs","week1"]`, FilterKeyword},
		{"empty keyword", `,"eventKeyPattern":""`, FilterNone},
		{"empty array", `,"eventKeyPattern":[]`, FilterNone},
		{"null pattern", `,"eventKeyPattern":null`, FilterNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `{` + ruleWindow + `,"percentBack":30,"capUnits":100` + tt.extra + `}`
			rule, err := ParseLossRebateRule([]byte(raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rule.Filter.Kind != tt.wantKind {
				t.Errorf("expected filter %s, got %s", tt.wantKind, rule.Filter.Kind)
			}
		})
	}
}

func mustRule(t *testing.T, raw string) *LossRebateRule {
	t.Helper()
	rule, err := ParseLossRebateRule([]byte(raw))
	if err != nil {
		t.Fatalf("parse rule: %v", err)
	}
	return rule
}

func TestEligibleBet(t *testing.T) {
	rule := mustRule(t, `{`+ruleWindow+`,"percentBack":30,"capUnits":100,"oddsMin":-150,"oddsMax":200}`)
	inWindow := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)

	base := Bet{
		Status:         BetSettled,
		Result:         ResultLoss,
		OddsAmerican:   -110,
		StakeCashUnits: 100,
		PlacedAt:       inWindow,
	}

	tests := []struct {
		name   string
		mutate func(*Bet)
		want   bool
	}{
		{"eligible", func(b *Bet) {}, true},
		{"voided", func(b *Bet) { b.Status = BetVoided }, false},
		{"before window", func(b *Bet) { b.PlacedAt = time.Date(2026, 1, 4, 23, 0, 0, 0, time.UTC) }, false},
		{"after window", func(b *Bet) { b.PlacedAt = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC) }, false},
		{"window start inclusive", func(b *Bet) { b.PlacedAt = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) }, true},
		{"odds below min", func(b *Bet) { b.OddsAmerican = -200 }, false},
		{"odds above max", func(b *Bet) { b.OddsAmerican = 250 }, false},
		{"free play only", func(b *Bet) { b.StakeCashUnits = 0; b.StakeFreePlayUnits = 100 }, false},
		{"open bet still counts handle", func(b *Bet) { b.Status = BetOpen; b.Result = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bet := base
			tt.mutate(&bet)
			if got := rule.EligibleBet(&bet); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBetFilterMatchesBet(t *testing.T) {
	sportFilter := BetFilter{Kind: FilterSportBetType, Sport: "NFL", BetType: "SPREAD"}
	if !sportFilter.MatchesBet(&Bet{Sport: "nfl", BetType: "spread"}) {
		t.Error("sport/betType match must be case-insensitive")
	}
	if sportFilter.MatchesBet(&Bet{Sport: "NBA", BetType: "SPREAD"}) {
		t.Error("wrong sport must not match")
	}

	keywordFilter := BetFilter{Kind: FilterKeyword, Keywords: []string{"chiefs", "week1"}}
	if !keywordFilter.MatchesBet(&Bet{EventKey: "week1-kc", Description: "Chiefs -3"}) {
		t.Error("all keywords present must match")
	}
	if keywordFilter.MatchesBet(&Bet{EventKey: "week1-buf", Description: "Bills ML"}) {
		t.Error("missing keyword must not match")
	}
}

func TestFormatRule(t *testing.T) {
	rule := mustRule(t, `{`+ruleWindow+`,"minHandleUnits":500,"percentBack":50,"capUnits":200,"sport":"NFL"}`)
	got := rule.FormatRule()
	for _, want := range []string{"50% back on losses", "NFL bets only", "min 500 units bet", "cap 200 units"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary %q missing %q", got, want)
		}
	}

	uncapped := mustRule(t, `{`+ruleWindow+`,"percentBack":30,"capUnits":9999}`)
	if strings.Contains(uncapped.FormatRule(), "cap") {
		t.Errorf("cap 9999 means uncapped, summary was %q", uncapped.FormatRule())
	}
}
