package statementdto

// LeaderboardEntry is a member's all-time standing over CLOSED weeks.
// Wins/Losses count weeks finished first/last by weekly score.
type LeaderboardEntry struct {
	MemberID      string  `json:"member_id"`
	MemberName    string  `json:"member_name"`
	TotalPL       int64   `json:"total_pl"`
	TotalFreePlay int64   `json:"total_free_play"`
	WeeksPlayed   int     `json:"weeks_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	BestWeek      int64   `json:"best_week"`
	WorstWeek     int64   `json:"worst_week"`
	AvgScore      float64 `json:"avg_score"`
}
