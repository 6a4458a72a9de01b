package usecase

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
)

func (uc *DefaultBetUsecase) GetBetByID(betID string) (*domain.Bet, error) {
	return uc.BetRepo.GetBetByID(betID)
}

func (uc *DefaultBetUsecase) ListBetsByWeek(weekID string) ([]*domain.Bet, error) {
	return uc.BetRepo.ListBetsByWeek(weekID)
}

func (uc *DefaultBetUsecase) ListBetsByWeekMember(weekID, memberID string) ([]*domain.Bet, error) {
	return uc.BetRepo.ListBetsByWeekMember(weekID, memberID)
}
