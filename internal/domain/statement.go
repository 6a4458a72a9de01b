package domain

import "time"

// WeekStatement is the per-member weekly settlement line, derived from
// settled bets and earned awards and upserted keyed by (week, member).
type WeekStatement struct {
	ID                     string     `json:"id"`
	WeekID                 string     `json:"week_id"`
	MemberID               string     `json:"member_id"`
	MemberName             string     `json:"member_name"`
	WeekName               string     `json:"week_name"`
	WeekClosedAt           *time.Time `json:"week_closed_at,omitempty"`
	CashProfitUnits        int64      `json:"cash_profit_units"`
	FreePlayEarnedUnits    int64      `json:"free_play_earned_units"`
	WeeklyScoreUnits       int64      `json:"weekly_score_units"`
	OwesHouseUnits         int64      `json:"owes_house_units"`
	HouseOwesUnits         int64      `json:"house_owes_units"`
	HouseOwesFreePlayUnits int64      `json:"house_owes_free_play_units"`
}

type StatementRepository interface {
	UpsertStatement(statement *WeekStatement) error
	ListStatementsByWeek(weekID string) ([]*WeekStatement, error)
	// ListClosedWeekStatements returns statements of CLOSED weeks only,
	// with member and week info populated, for cross-week aggregation.
	ListClosedWeekStatements() ([]*WeekStatement, error)
}
