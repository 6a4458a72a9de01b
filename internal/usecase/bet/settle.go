package usecase

import (
	"fmt"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	publisher "github.com/crewpool/pool-ledger-service/internal/infrastructure/kafka"
	betdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/bet"
)

// SettleBet grades an open bet. PayoutCashUnits is the full cash return
// including stake: a LOSS is forced to 0 and a PUSH to the cash stake, so
// callers only supply a payout for WIN.
func (uc *DefaultBetUsecase) SettleBet(input *betdto.SettleBetInput) (*domain.Bet, error) {
	result := domain.BetResult(input.Result)

	bet, err := uc.BetRepo.GetBetByID(input.BetID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.requireOpenWeek(bet.WeekID); err != nil {
		return nil, err
	}

	var payout int64
	switch result {
	case domain.ResultWin:
		if input.PayoutCashUnits <= 0 {
			return nil, fmt.Errorf("%w: WIN payout must be positive, got %d",
				domain.ErrInvalidState, input.PayoutCashUnits)
		}
		payout = input.PayoutCashUnits
	case domain.ResultLoss:
		payout = 0
	case domain.ResultPush:
		payout = bet.StakeCashUnits
	default:
		return nil, fmt.Errorf("%w: unknown result %q", domain.ErrInvalidState, input.Result)
	}

	settledAt := time.Now()
	if err := uc.BetRepo.SettleBet(input.BetID, result, payout, settledAt); err != nil {
		return nil, err
	}

	bet.Status = domain.BetSettled
	bet.Result = result
	bet.PayoutCashUnits = &payout
	bet.SettledAt = &settledAt

	if uc.Metrics != nil {
		uc.Metrics.RecordBetSettled(bet.MemberID, string(result), payout)
	}
	uc.publishBetEvent(publisher.EventBetSettled, bet)

	return bet, nil
}

// QuickSettleBet grades a bet with no payout entry: only LOSS and PUSH,
// where the payout follows from the stake.
func (uc *DefaultBetUsecase) QuickSettleBet(betID, result string) (*domain.Bet, error) {
	switch domain.BetResult(result) {
	case domain.ResultLoss, domain.ResultPush:
		return uc.SettleBet(&betdto.SettleBetInput{BetID: betID, Result: result})
	default:
		return nil, fmt.Errorf("%w: quick settle accepts LOSS or PUSH, got %q", domain.ErrInvalidState, result)
	}
}
