package betdto

// CreditInfo is the per-member credit/exposure snapshot for a week.
// AvailableCredit is always recomputed from bet rows, never stored.
type CreditInfo struct {
	CreditLimit     int64 `json:"credit_limit"`
	OpenExposure    int64 `json:"open_exposure"`
	CashPL          int64 `json:"cash_pl"`
	AvailableCredit int64 `json:"available_credit"`
	FreePlayBalance int64 `json:"free_play_balance"`
}
