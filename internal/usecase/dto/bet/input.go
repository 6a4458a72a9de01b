package betdto

import "time"

type PlaceBetInput struct {
	WeekID             string
	MemberID           string
	Description        string
	EventKey           string
	Sport              string
	BetType            string
	OddsAmerican       int
	StakeCashUnits     int64
	StakeFreePlayUnits int64
	PlacedAt           time.Time
	// OverrideCredit skips the available-credit check (admin only).
	OverrideCredit bool
}

type SettleBetInput struct {
	BetID           string
	Result          string
	PayoutCashUnits int64
}

type EditBetInput struct {
	BetID              string
	Description        string
	EventKey           string
	Sport              string
	BetType            string
	OddsAmerican       int
	StakeCashUnits     int64
	StakeFreePlayUnits int64
	OverrideCredit     bool
}
