package usecase

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	betdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/bet"
)

type LedgerUsecase interface {
	GetCreditInfo(weekID, memberID string) (*betdto.CreditInfo, error)
}

// DefaultLedgerUsecase derives the per-member credit snapshot of a week.
// availableCredit = creditLimit + settledCashPL - openExposure. It is
// always recomputed from bet rows, never stored.
type DefaultLedgerUsecase struct {
	WeekMemberRepo domain.WeekMemberRepository
	BetRepo        domain.BetRepository
	MemberRepo     domain.MemberRepository
}

func NewDefaultLedgerUsecase(
	weekMemberRepo domain.WeekMemberRepository,
	betRepo domain.BetRepository,
	memberRepo domain.MemberRepository,
) *DefaultLedgerUsecase {
	return &DefaultLedgerUsecase{
		WeekMemberRepo: weekMemberRepo,
		BetRepo:        betRepo,
		MemberRepo:     memberRepo,
	}
}

func (uc *DefaultLedgerUsecase) GetCreditInfo(weekID, memberID string) (*betdto.CreditInfo, error) {
	weekMember, err := uc.WeekMemberRepo.GetWeekMember(weekID, memberID)
	if err != nil {
		return nil, err
	}

	member, err := uc.MemberRepo.GetMemberByID(memberID)
	if err != nil {
		return nil, err
	}

	bets, err := uc.BetRepo.ListBetsByWeekMember(weekID, memberID)
	if err != nil {
		return nil, err
	}

	openExposure := domain.OpenExposure(bets)
	cashPL := domain.SettledCashPL(bets)

	return &betdto.CreditInfo{
		CreditLimit:     weekMember.CreditLimitUnits,
		OpenExposure:    openExposure,
		CashPL:          cashPL,
		AvailableCredit: weekMember.CreditLimitUnits + cashPL - openExposure,
		FreePlayBalance: member.FreePlayBalance,
	}, nil
}
