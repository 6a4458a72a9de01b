package promodto

// MemberPromoResult is one member's standing against a loss-rebate promo:
// the per-promo progress list shown before close, and the qualification
// input for award issuance at close.
type MemberPromoResult struct {
	MemberID            string  `json:"member_id"`
	MemberName          string  `json:"member_name"`
	EligibleBetsCount   int     `json:"eligible_bets_count"`
	EligibleHandleUnits int64   `json:"eligible_handle_units"`
	EligibleLosingStake int64   `json:"eligible_losing_stake"`
	Qualified           bool    `json:"qualified"`
	Disqualified        bool    `json:"disqualified"`
	DisqualifyReason    string  `json:"disqualify_reason,omitempty"`
	ProjectedAward      int64   `json:"projected_award"`
	HandleProgress      float64 `json:"handle_progress"`
}

// PromoOutput is a promo with its parsed rule summary.
type PromoOutput struct {
	PromoID     string `json:"promo_id"`
	WeekID      string `json:"week_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Active      bool   `json:"active"`
	RuleJSON    string `json:"rule_json"`
	RuleSummary string `json:"rule_summary"`
}
