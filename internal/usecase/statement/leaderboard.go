package usecase

import (
	"math"
	"sort"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	statementdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/statement"
)

// GetLeaderboard aggregates every closed week's statements into all-time
// standings. A weekly win means finishing first by weekly score, a loss
// means finishing last; single-member weeks record no loss.
func (uc *DefaultStatementUsecase) GetLeaderboard() ([]*statementdto.LeaderboardEntry, error) {
	statements, err := uc.StatementRepo.ListClosedWeekStatements()
	if err != nil {
		return nil, err
	}

	type aggregate struct {
		entry  *statementdto.LeaderboardEntry
		scores []int64
	}
	memberAggregates := make(map[string]*aggregate)
	weekScores := make(map[string][]*domain.WeekStatement)

	for _, statement := range statements {
		weekScores[statement.WeekID] = append(weekScores[statement.WeekID], statement)

		agg := memberAggregates[statement.MemberID]
		if agg == nil {
			agg = &aggregate{entry: &statementdto.LeaderboardEntry{
				MemberID:   statement.MemberID,
				MemberName: statement.MemberName,
				BestWeek:   statement.WeeklyScoreUnits,
				WorstWeek:  statement.WeeklyScoreUnits,
			}}
			memberAggregates[statement.MemberID] = agg
		}
		agg.entry.TotalPL += statement.CashProfitUnits
		agg.entry.TotalFreePlay += statement.FreePlayEarnedUnits
		agg.entry.WeeksPlayed++
		agg.scores = append(agg.scores, statement.WeeklyScoreUnits)
		if statement.WeeklyScoreUnits > agg.entry.BestWeek {
			agg.entry.BestWeek = statement.WeeklyScoreUnits
		}
		if statement.WeeklyScoreUnits < agg.entry.WorstWeek {
			agg.entry.WorstWeek = statement.WeeklyScoreUnits
		}
	}

	for _, weekStatements := range weekScores {
		if len(weekStatements) == 0 {
			continue
		}
		sorted := make([]*domain.WeekStatement, len(weekStatements))
		copy(sorted, weekStatements)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].WeeklyScoreUnits > sorted[j].WeeklyScoreUnits
		})
		if agg := memberAggregates[sorted[0].MemberID]; agg != nil {
			agg.entry.Wins++
		}
		if len(sorted) > 1 {
			if agg := memberAggregates[sorted[len(sorted)-1].MemberID]; agg != nil {
				agg.entry.Losses++
			}
		}
	}

	leaderboard := make([]*statementdto.LeaderboardEntry, 0, len(memberAggregates))
	for _, agg := range memberAggregates {
		var total int64
		for _, score := range agg.scores {
			total += score
		}
		if len(agg.scores) > 0 {
			agg.entry.AvgScore = math.Round(float64(total) / float64(len(agg.scores)))
		}
		leaderboard = append(leaderboard, agg.entry)
	}
	sort.Slice(leaderboard, func(i, j int) bool {
		return leaderboard[i].TotalPL > leaderboard[j].TotalPL
	})
	return leaderboard, nil
}
