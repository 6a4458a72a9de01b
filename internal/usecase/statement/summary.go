package usecase

import (
	"fmt"
	"strings"

	"github.com/crewpool/pool-ledger-service/internal/domain"
)

// WeekResultsSummary renders the week's settlement as a plain-text report
// ready to paste into the group chat: standings with records, then who
// owes whom, then free play owed.
func (uc *DefaultStatementUsecase) WeekResultsSummary(weekID string) (string, error) {
	week, err := uc.WeekRepo.GetWeekByID(weekID)
	if err != nil {
		return "", err
	}
	statements, err := uc.StatementRepo.ListStatementsByWeek(weekID)
	if err != nil {
		return "", err
	}
	bets, err := uc.BetRepo.ListBetsByWeek(weekID)
	if err != nil {
		return "", err
	}

	type record struct{ wins, losses int }
	records := make(map[string]*record)
	for _, bet := range bets {
		if bet.Status != domain.BetSettled {
			continue
		}
		rec := records[bet.MemberID]
		if rec == nil {
			rec = &record{}
			records[bet.MemberID] = rec
		}
		switch bet.Result {
		case domain.ResultWin:
			rec.wins++
		case domain.ResultLoss:
			rec.losses++
		}
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("%s — Weekly Report", week.Name))
	lines = append(lines, strings.Repeat("─", 30))
	lines = append(lines, "")

	// Statements arrive sorted by weekly score, best first.
	for i, statement := range statements {
		pl := fmt.Sprintf("%+d", statement.CashProfitUnits)
		fp := ""
		if statement.FreePlayEarnedUnits > 0 {
			fp = fmt.Sprintf(" (+%d FP)", statement.FreePlayEarnedUnits)
		}
		rec := records[statement.MemberID]
		if rec == nil {
			rec = &record{}
		}
		lines = append(lines, fmt.Sprintf("%d. %s: %s units%s [%dW-%dL]",
			i+1, statement.MemberName, pl, fp, rec.wins, rec.losses))
	}

	lines = append(lines, "")
	lines = append(lines, "Settlements:")
	for _, statement := range statements {
		if statement.OwesHouseUnits > 0 {
			lines = append(lines, fmt.Sprintf("  %s owes: %d units", statement.MemberName, statement.OwesHouseUnits))
		}
	}
	for _, statement := range statements {
		if statement.HouseOwesUnits > 0 {
			lines = append(lines, fmt.Sprintf("  %s is owed: %d units", statement.MemberName, statement.HouseOwesUnits))
		}
	}

	var fpOwed []string
	for _, statement := range statements {
		if statement.HouseOwesFreePlayUnits > 0 {
			fpOwed = append(fpOwed, fmt.Sprintf("  %s: %d FP", statement.MemberName, statement.HouseOwesFreePlayUnits))
		}
	}
	if len(fpOwed) > 0 {
		lines = append(lines, "")
		lines = append(lines, "Free Play Owed:")
		lines = append(lines, fpOwed...)
	}

	return strings.Join(lines, "\n"), nil
}
