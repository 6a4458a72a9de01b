package domain

import "time"

type BetStatus string

const (
	BetOpen    BetStatus = "OPEN"
	BetSettled BetStatus = "SETTLED"
	BetVoided  BetStatus = "VOIDED"
)

type BetResult string

const (
	ResultWin  BetResult = "WIN"
	ResultLoss BetResult = "LOSS"
	ResultPush BetResult = "PUSH"
)

// Bet is a single wager. A bet funded with free play has already deducted
// StakeFreePlayUnits from the member balance at creation time; voiding
// restores it. PayoutCashUnits is the total cash return including the
// original stake, nil until settled.
type Bet struct {
	ID                 string     `json:"id"`
	WeekID             string     `json:"week_id"`
	MemberID           string     `json:"member_id"`
	Description        string     `json:"description"`
	EventKey           string     `json:"event_key"`
	Sport              string     `json:"sport"`
	BetType            string     `json:"bet_type"`
	OddsAmerican       int        `json:"odds_american"`
	StakeCashUnits     int64      `json:"stake_cash_units"`
	StakeFreePlayUnits int64      `json:"stake_free_play_units"`
	Status             BetStatus  `json:"status"`
	Result             BetResult  `json:"result,omitempty"`
	PayoutCashUnits    *int64     `json:"payout_cash_units,omitempty"`
	PlacedAt           time.Time  `json:"placed_at"`
	SettledAt          *time.Time `json:"settled_at,omitempty"`
}

// BetUpdate carries the editable fields of an OPEN bet.
type BetUpdate struct {
	Description        string
	EventKey           string
	Sport              string
	BetType            string
	OddsAmerican       int
	StakeCashUnits     int64
	StakeFreePlayUnits int64
}

// OpenExposure is the cash currently at risk: the sum of cash stakes over
// OPEN bets.
func OpenExposure(bets []*Bet) int64 {
	var total int64
	for _, bet := range bets {
		if bet.Status == BetOpen {
			total += bet.StakeCashUnits
		}
	}
	return total
}

// SettledCashPL is the sum of (payout - stake) over SETTLED bets. Negative
// means net losses. Voided bets never contribute.
func SettledCashPL(bets []*Bet) int64 {
	var total int64
	for _, bet := range bets {
		if bet.Status != BetSettled {
			continue
		}
		var payout int64
		if bet.PayoutCashUnits != nil {
			payout = *bet.PayoutCashUnits
		}
		total += payout - bet.StakeCashUnits
	}
	return total
}

type BetRepository interface {
	// PlaceBet inserts the bet and deducts any free-play stake from the
	// member balance in one transaction. guard runs inside the critical
	// section, after placements for the same week member have been
	// serialized, so the credit check it performs cannot race a
	// concurrent placement.
	PlaceBet(bet *Bet, guard func() error) error
	SettleBet(betID string, result BetResult, payoutCashUnits int64, settledAt time.Time) error
	VoidBet(betID string) error
	// UpdateBet applies upd to an OPEN bet. freePlayDelta is the change in
	// free-play stake: a positive delta is deducted from the member
	// balance (failing with ErrFreePlayInsufficient), a negative delta is
	// returned to it.
	UpdateBet(betID string, upd BetUpdate, freePlayDelta int64, guard func() error) error
	GetBetByID(betID string) (*Bet, error)
	ListBetsByWeek(weekID string) ([]*Bet, error)
	ListBetsByWeekMember(weekID, memberID string) ([]*Bet, error)
	CountOpenBets(weekID string) (int64, error)
	CountOpenBetsByMember(weekID, memberID string) (int64, error)
}
