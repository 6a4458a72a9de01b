package publisher

import "time"

// Event types published to the pool ledger topic.
const (
	EventBetPlaced   = "bet.placed"
	EventBetSettled  = "bet.settled"
	EventBetVoided   = "bet.voided"
	EventAwardIssued = "award.issued"
	EventWeekClosed  = "week.closed"
)

type BetEvent struct {
	Type               string    `json:"type"`
	BetID              string    `json:"bet_id"`
	WeekID             string    `json:"week_id"`
	MemberID           string    `json:"member_id"`
	StakeCashUnits     int64     `json:"stake_cash_units"`
	StakeFreePlayUnits int64     `json:"stake_free_play_units"`
	Result             string    `json:"result,omitempty"`
	PayoutCashUnits    int64     `json:"payout_cash_units,omitempty"`
	At                 time.Time `json:"at"`
}

type AwardEvent struct {
	Type        string    `json:"type"`
	AwardID     string    `json:"award_id"`
	WeekID      string    `json:"week_id"`
	MemberID    string    `json:"member_id"`
	Source      string    `json:"source"`
	AmountUnits int64     `json:"amount_units"`
	PromoID     string    `json:"promo_id,omitempty"`
	At          time.Time `json:"at"`
}

type WeekClosedEvent struct {
	Type                 string    `json:"type"`
	WeekID               string    `json:"week_id"`
	PromoAwardsIssued    int       `json:"promo_awards_issued"`
	DefaultRebatesIssued int       `json:"default_rebates_issued"`
	StatementsGenerated  int       `json:"statements_generated"`
	ClosedAt             time.Time `json:"closed_at"`
}
