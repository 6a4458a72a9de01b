package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type PromoType string

const PromoLossRebate PromoType = "LOSS_REBATE"

type Promo struct {
	ID        string
	WeekID    string
	Name      string
	Type      PromoType
	Active    bool
	RuleJSON  string
	Rule      *LossRebateRule
	CreatedAt time.Time
}

type FilterKind string

const (
	FilterNone         FilterKind = "none"
	FilterSportBetType FilterKind = "sport_bet_type"
	FilterKeyword      FilterKind = "keyword"
)

// BetFilter is the promo's bet filter, resolved once when the rule is
// parsed. Keyword filtering against eventKey + description is the legacy
// form kept for promos created before sport/betType existed.
type BetFilter struct {
	Kind     FilterKind
	Sport    string
	BetType  string
	Keywords []string
}

// LossRebateRule is the persisted promo rule, parsed from ruleJson.
type LossRebateRule struct {
	WindowStart         time.Time
	WindowEnd           time.Time
	MinHandleUnits      int64
	PercentBack         int64
	CapUnits            int64
	OddsMin             *int
	OddsMax             *int
	DisqualifyBothSides bool
	Filter              BetFilter
}

// lossRebateRuleWire is the ruleJson wire format. eventKeyPattern may be a
// single string or an array of keywords.
type lossRebateRuleWire struct {
	WindowStart         string          `json:"windowStart"`
	WindowEnd           string          `json:"windowEnd"`
	MinHandleUnits      int64           `json:"minHandleUnits"`
	PercentBack         int64           `json:"percentBack"`
	CapUnits            int64           `json:"capUnits"`
	OddsMin             *int            `json:"oddsMin"`
	OddsMax             *int            `json:"oddsMax"`
	DisqualifyBothSides bool            `json:"disqualifyBothSides"`
	Sport               *string         `json:"sport"`
	BetType             *string         `json:"betType"`
	EventKeyPattern     json.RawMessage `json:"eventKeyPattern"`
}

func ParseLossRebateRule(raw []byte) (*LossRebateRule, error) {
	var wire lossRebateRuleWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("invalid rule json: %w", err)
	}

	windowStart, err := time.Parse(time.RFC3339, wire.WindowStart)
	if err != nil {
		return nil, fmt.Errorf("invalid windowStart: %w", err)
	}
	windowEnd, err := time.Parse(time.RFC3339, wire.WindowEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid windowEnd: %w", err)
	}
	if windowEnd.Before(windowStart) {
		return nil, fmt.Errorf("windowEnd %s before windowStart %s", wire.WindowEnd, wire.WindowStart)
	}
	if wire.PercentBack < 1 || wire.PercentBack > 100 {
		return nil, fmt.Errorf("percentBack must be 1-100, got %d", wire.PercentBack)
	}
	if wire.MinHandleUnits < 0 {
		return nil, fmt.Errorf("minHandleUnits must be >= 0, got %d", wire.MinHandleUnits)
	}
	if wire.CapUnits < 0 {
		return nil, fmt.Errorf("capUnits must be >= 0, got %d", wire.CapUnits)
	}

	filter, err := resolveFilter(&wire)
	if err != nil {
		return nil, err
	}

	return &LossRebateRule{
		WindowStart:         windowStart,
		WindowEnd:           windowEnd,
		MinHandleUnits:      wire.MinHandleUnits,
		PercentBack:         wire.PercentBack,
		CapUnits:            wire.CapUnits,
		OddsMin:             wire.OddsMin,
		OddsMax:             wire.OddsMax,
		DisqualifyBothSides: wire.DisqualifyBothSides,
		Filter:              filter,
	}, nil
}

// resolveFilter picks the filter variant at parse time: structured
// sport/betType wins over the legacy keyword pattern.
func resolveFilter(wire *lossRebateRuleWire) (BetFilter, error) {
	sport := ""
	if wire.Sport != nil {
		sport = strings.TrimSpace(*wire.Sport)
	}
	betType := ""
	if wire.BetType != nil {
		betType = strings.TrimSpace(*wire.BetType)
	}
	if sport != "" || betType != "" {
		return BetFilter{Kind: FilterSportBetType, Sport: sport, BetType: betType}, nil
	}

	if len(wire.EventKeyPattern) > 0 && string(wire.EventKeyPattern) != "null" {
		var single string
		if err := json.Unmarshal(wire.EventKeyPattern, &single); err == nil {
			if single == "" {
				return BetFilter{Kind: FilterNone}, nil
			}
			return BetFilter{Kind: FilterKeyword, Keywords: []string{single}}, nil
		}
		var many []string
		if err := json.Unmarshal(wire.EventKeyPattern, &many); err != nil {
			return BetFilter{}, fmt.Errorf("eventKeyPattern must be a string or string array")
		}
		if len(many) == 0 {
			return BetFilter{Kind: FilterNone}, nil
		}
		return BetFilter{Kind: FilterKeyword, Keywords: many}, nil
	}

	return BetFilter{Kind: FilterNone}, nil
}

// MatchesBet reports whether a bet passes the promo's sport/betType or
// keyword filter. Window, odds and cash-stake checks are separate.
func (f BetFilter) MatchesBet(bet *Bet) bool {
	switch f.Kind {
	case FilterSportBetType:
		if f.Sport != "" && !strings.EqualFold(bet.Sport, f.Sport) {
			return false
		}
		if f.BetType != "" && !strings.EqualFold(bet.BetType, f.BetType) {
			return false
		}
		return true
	case FilterKeyword:
		combined := strings.ToLower(bet.EventKey + " " + bet.Description)
		for _, keyword := range f.Keywords {
			if !strings.Contains(combined, strings.ToLower(keyword)) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// EligibleBet applies the full promo eligibility filter to a bet:
// placement window, odds bounds, cash stake and the bet filter. Voided
// bets are never eligible.
func (r *LossRebateRule) EligibleBet(bet *Bet) bool {
	if bet.Status == BetVoided {
		return false
	}
	if bet.PlacedAt.Before(r.WindowStart) || bet.PlacedAt.After(r.WindowEnd) {
		return false
	}
	if r.OddsMin != nil && bet.OddsAmerican < *r.OddsMin {
		return false
	}
	if r.OddsMax != nil && bet.OddsAmerican > *r.OddsMax {
		return false
	}
	if bet.StakeCashUnits <= 0 {
		return false
	}
	return r.Filter.MatchesBet(bet)
}

// FormatRule renders a one-line human-readable rule summary.
func (r *LossRebateRule) FormatRule() string {
	parts := []string{fmt.Sprintf("%d%% back on losses", r.PercentBack)}
	switch r.Filter.Kind {
	case FilterSportBetType:
		filter := strings.TrimSpace(r.Filter.Sport + " " + r.Filter.BetType)
		parts = append(parts, filter+" bets only")
	case FilterKeyword:
		parts = append(parts, "keyword: "+strings.Join(r.Filter.Keywords, ", "))
	}
	if r.MinHandleUnits > 0 {
		parts = append(parts, fmt.Sprintf("min %d units bet", r.MinHandleUnits))
	}
	if r.CapUnits < 9999 {
		parts = append(parts, fmt.Sprintf("cap %d units", r.CapUnits))
	}
	if r.OddsMin != nil {
		parts = append(parts, fmt.Sprintf("min odds %d", *r.OddsMin))
	}
	if r.OddsMax != nil {
		parts = append(parts, fmt.Sprintf("max odds %d", *r.OddsMax))
	}
	return strings.Join(parts, " · ")
}

type PromoRepository interface {
	CreatePromo(promo *Promo) error
	UpdatePromo(promo *Promo) error
	GetPromoByID(promoID string) (*Promo, error)
	ListPromosByWeek(weekID string) ([]*Promo, error)
	ListActiveLossRebates(weekID string) ([]*Promo, error)
	SetPromoActive(promoID string, active bool) error
	// DeletePromo fails with ErrPromoHasAwards if any free-play award
	// references the promo.
	DeletePromo(promoID string) error
}
