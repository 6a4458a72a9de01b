package usecase

import (
	"fmt"
	"strings"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	publisher "github.com/crewpool/pool-ledger-service/internal/infrastructure/kafka"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/metrics"
	weekdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/week"
	promouc "github.com/crewpool/pool-ledger-service/internal/usecase/promo"
	statementuc "github.com/crewpool/pool-ledger-service/internal/usecase/statement"
	"github.com/google/uuid"
)

type WeekUsecase interface {
	CreateWeek(input *weekdto.CreateWeekInput) (*domain.Week, error)
	GetWeekByID(weekID string) (*domain.Week, error)
	ListWeeks() ([]*domain.Week, error)
	CloseWeek(weekID string) (*weekdto.CloseWeekResult, error)

	AddMember(input *weekdto.AddMemberInput) error
	RemoveMember(weekID, memberID string) error
	SetCreditLimit(weekID, memberID string, creditLimitUnits int64) error
	ListWeekMembers(weekID string) ([]*domain.WeekMember, error)
}

type DefaultWeekUsecase struct {
	WeekRepo         domain.WeekRepository
	WeekMemberRepo   domain.WeekMemberRepository
	BetRepo          domain.BetRepository
	AwardRepo        domain.AwardRepository
	PromoUsecase     promouc.PromoUsecase
	StatementUsecase statementuc.StatementUsecase
	// RebatePercent is the house-wide default loss rebate applied at
	// close when no promo covered the loss.
	RebatePercent int64
	Publisher     *publisher.LedgerPublisher
	Metrics       *metrics.LedgerMetrics
}

func NewDefaultWeekUsecase(
	weekRepo domain.WeekRepository,
	weekMemberRepo domain.WeekMemberRepository,
	betRepo domain.BetRepository,
	awardRepo domain.AwardRepository,
	promoUsecase promouc.PromoUsecase,
	statementUsecase statementuc.StatementUsecase,
	rebatePercent int64,
	ledgerPublisher *publisher.LedgerPublisher,
	ledgerMetrics *metrics.LedgerMetrics,
) *DefaultWeekUsecase {
	return &DefaultWeekUsecase{
		WeekRepo:         weekRepo,
		WeekMemberRepo:   weekMemberRepo,
		BetRepo:          betRepo,
		AwardRepo:        awardRepo,
		PromoUsecase:     promoUsecase,
		StatementUsecase: statementUsecase,
		RebatePercent:    rebatePercent,
		Publisher:        ledgerPublisher,
		Metrics:          ledgerMetrics,
	}
}

func (uc *DefaultWeekUsecase) CreateWeek(input *weekdto.CreateWeekInput) (*domain.Week, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: week name is required", domain.ErrInvalidState)
	}
	if input.EndAt.Before(input.StartAt) {
		return nil, fmt.Errorf("%w: week ends before it starts", domain.ErrInvalidState)
	}

	week := &domain.Week{
		ID:      uuid.New().String(),
		Name:    name,
		Status:  domain.WeekOpen,
		StartAt: input.StartAt,
		EndAt:   input.EndAt,
	}
	if err := uc.WeekRepo.CreateWeek(week); err != nil {
		return nil, err
	}
	return week, nil
}

func (uc *DefaultWeekUsecase) GetWeekByID(weekID string) (*domain.Week, error) {
	return uc.WeekRepo.GetWeekByID(weekID)
}

func (uc *DefaultWeekUsecase) ListWeeks() ([]*domain.Week, error) {
	return uc.WeekRepo.ListWeeks()
}
