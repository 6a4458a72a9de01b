package usecase

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/metrics"
	statementdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/statement"
)

type StatementUsecase interface {
	GenerateStatements(weekID string) (int, error)
	ListStatementsByWeek(weekID string) ([]*domain.WeekStatement, error)
	WeekResultsSummary(weekID string) (string, error)
	GetLeaderboard() ([]*statementdto.LeaderboardEntry, error)
}

type DefaultStatementUsecase struct {
	StatementRepo  domain.StatementRepository
	WeekRepo       domain.WeekRepository
	WeekMemberRepo domain.WeekMemberRepository
	BetRepo        domain.BetRepository
	AwardRepo      domain.AwardRepository
	Metrics        *metrics.LedgerMetrics
}

func NewDefaultStatementUsecase(
	statementRepo domain.StatementRepository,
	weekRepo domain.WeekRepository,
	weekMemberRepo domain.WeekMemberRepository,
	betRepo domain.BetRepository,
	awardRepo domain.AwardRepository,
	ledgerMetrics *metrics.LedgerMetrics,
) *DefaultStatementUsecase {
	return &DefaultStatementUsecase{
		StatementRepo:  statementRepo,
		WeekRepo:       weekRepo,
		WeekMemberRepo: weekMemberRepo,
		BetRepo:        betRepo,
		AwardRepo:      awardRepo,
		Metrics:        ledgerMetrics,
	}
}

func (uc *DefaultStatementUsecase) ListStatementsByWeek(weekID string) ([]*domain.WeekStatement, error) {
	return uc.StatementRepo.ListStatementsByWeek(weekID)
}
