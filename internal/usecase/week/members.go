package usecase

import (
	"fmt"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	weekdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/week"
)

func (uc *DefaultWeekUsecase) requireOpenWeek(weekID string) error {
	week, err := uc.WeekRepo.GetWeekByID(weekID)
	if err != nil {
		return err
	}
	if week.Status != domain.WeekOpen {
		return fmt.Errorf("%w: week %s is %s", domain.ErrInvalidState, weekID, week.Status)
	}
	return nil
}

func (uc *DefaultWeekUsecase) AddMember(input *weekdto.AddMemberInput) error {
	if input.CreditLimitUnits < 0 {
		return fmt.Errorf("%w: credit limit must not be negative", domain.ErrInvalidState)
	}
	if err := uc.requireOpenWeek(input.WeekID); err != nil {
		return err
	}
	return uc.WeekMemberRepo.AddWeekMember(&domain.WeekMember{
		WeekID:           input.WeekID,
		MemberID:         input.MemberID,
		CreditLimitUnits: input.CreditLimitUnits,
	})
}

// RemoveMember drops a member from the week roster. Members with bets on
// the books stay: their exposure and settlement history must survive.
func (uc *DefaultWeekUsecase) RemoveMember(weekID, memberID string) error {
	if err := uc.requireOpenWeek(weekID); err != nil {
		return err
	}
	bets, err := uc.BetRepo.ListBetsByWeekMember(weekID, memberID)
	if err != nil {
		return err
	}
	if len(bets) > 0 {
		return fmt.Errorf("%w: member %s has %d bets this week", domain.ErrInvalidState, memberID, len(bets))
	}
	return uc.WeekMemberRepo.RemoveWeekMember(weekID, memberID)
}

func (uc *DefaultWeekUsecase) SetCreditLimit(weekID, memberID string, creditLimitUnits int64) error {
	if creditLimitUnits < 0 {
		return fmt.Errorf("%w: credit limit must not be negative", domain.ErrInvalidState)
	}
	if err := uc.requireOpenWeek(weekID); err != nil {
		return err
	}
	return uc.WeekMemberRepo.UpdateCreditLimit(weekID, memberID, creditLimitUnits)
}

func (uc *DefaultWeekUsecase) ListWeekMembers(weekID string) ([]*domain.WeekMember, error) {
	return uc.WeekMemberRepo.ListWeekMembers(weekID)
}
