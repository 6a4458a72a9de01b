package weekdto

// CloseWeekResult reports what each stage of the close pipeline did. On a
// retried close the counts only cover newly performed work: stages skip
// what an earlier attempt already persisted.
type CloseWeekResult struct {
	WeekID                string           `json:"week_id"`
	PromoAwardsIssued     int              `json:"promo_awards_issued"`
	DefaultRebatesIssued  int              `json:"default_rebates_issued"`
	FreePlayApplied       map[string]int64 `json:"free_play_applied"`
	StatementsGenerated   int              `json:"statements_generated"`
	PromoAwardUnitsIssued int64            `json:"promo_award_units_issued"`
	RebateUnitsIssued     int64            `json:"rebate_units_issued"`
}
