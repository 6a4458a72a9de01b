package usecase

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	publisher "github.com/crewpool/pool-ledger-service/internal/infrastructure/kafka"
)

// VoidBet cancels an open bet as if it were never placed: it drops out of
// exposure and any free-play stake returns to the member balance.
func (uc *DefaultBetUsecase) VoidBet(betID string) error {
	bet, err := uc.BetRepo.GetBetByID(betID)
	if err != nil {
		return err
	}
	if _, err := uc.requireOpenWeek(bet.WeekID); err != nil {
		return err
	}

	if err := uc.BetRepo.VoidBet(betID); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordBetVoided(bet.MemberID)
	}
	bet.Status = domain.BetVoided
	uc.publishBetEvent(publisher.EventBetVoided, bet)

	return nil
}
