package usecase

import (
	"fmt"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	publisher "github.com/crewpool/pool-ledger-service/internal/infrastructure/kafka"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/metrics"
	"github.com/crewpool/pool-ledger-service/internal/usecase"
	betdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/bet"
)

type BetUsecase interface {
	PlaceBet(input *betdto.PlaceBetInput) (*domain.Bet, error)
	SettleBet(input *betdto.SettleBetInput) (*domain.Bet, error)
	QuickSettleBet(betID, result string) (*domain.Bet, error)
	VoidBet(betID string) error
	EditBet(input *betdto.EditBetInput) (*domain.Bet, error)

	GetBetByID(betID string) (*domain.Bet, error)
	ListBetsByWeek(weekID string) ([]*domain.Bet, error)
	ListBetsByWeekMember(weekID, memberID string) ([]*domain.Bet, error)
}

type DefaultBetUsecase struct {
	BetRepo        domain.BetRepository
	WeekRepo       domain.WeekRepository
	WeekMemberRepo domain.WeekMemberRepository
	LedgerUsecase  usecase.LedgerUsecase
	Publisher      *publisher.LedgerPublisher
	Metrics        *metrics.LedgerMetrics
}

func NewDefaultBetUsecase(
	betRepo domain.BetRepository,
	weekRepo domain.WeekRepository,
	weekMemberRepo domain.WeekMemberRepository,
	ledgerUsecase usecase.LedgerUsecase,
	ledgerPublisher *publisher.LedgerPublisher,
	ledgerMetrics *metrics.LedgerMetrics,
) *DefaultBetUsecase {
	return &DefaultBetUsecase{
		BetRepo:        betRepo,
		WeekRepo:       weekRepo,
		WeekMemberRepo: weekMemberRepo,
		LedgerUsecase:  ledgerUsecase,
		Publisher:      ledgerPublisher,
		Metrics:        ledgerMetrics,
	}
}

// requireOpenWeek loads the week and rejects mutation when it is closed.
func (uc *DefaultBetUsecase) requireOpenWeek(weekID string) (*domain.Week, error) {
	week, err := uc.WeekRepo.GetWeekByID(weekID)
	if err != nil {
		return nil, err
	}
	if week.Status != domain.WeekOpen {
		return nil, fmt.Errorf("%w: week %s is %s", domain.ErrInvalidState, weekID, week.Status)
	}
	return week, nil
}
