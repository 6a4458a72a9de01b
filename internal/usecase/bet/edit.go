package usecase

import (
	"errors"
	"fmt"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	betdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/bet"
)

// EditBet rewrites the fields of an OPEN bet. The cash stake is
// re-validated against available credit with the old stake excluded, since
// the old stake is part of current exposure. A grown free-play stake
// deducts the difference from the balance, a shrunk one returns it.
func (uc *DefaultBetUsecase) EditBet(input *betdto.EditBetInput) (*domain.Bet, error) {
	if input.StakeCashUnits < 0 || input.StakeFreePlayUnits < 0 {
		return nil, fmt.Errorf("%w: stake must not be negative", domain.ErrInvalidState)
	}
	if input.StakeCashUnits+input.StakeFreePlayUnits == 0 {
		return nil, fmt.Errorf("%w: bet needs a cash or free-play stake", domain.ErrInvalidState)
	}
	if !validOdds(input.OddsAmerican) {
		return nil, fmt.Errorf("%w: invalid american odds %d", domain.ErrInvalidState, input.OddsAmerican)
	}

	bet, err := uc.BetRepo.GetBetByID(input.BetID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.requireOpenWeek(bet.WeekID); err != nil {
		return nil, err
	}

	oldStakeCash := bet.StakeCashUnits
	freePlayDelta := input.StakeFreePlayUnits - bet.StakeFreePlayUnits

	upd := domain.BetUpdate{
		Description:        input.Description,
		EventKey:           input.EventKey,
		Sport:              input.Sport,
		BetType:            input.BetType,
		OddsAmerican:       input.OddsAmerican,
		StakeCashUnits:     input.StakeCashUnits,
		StakeFreePlayUnits: input.StakeFreePlayUnits,
	}

	guard := func() error {
		if input.OverrideCredit || input.StakeCashUnits <= oldStakeCash {
			return nil
		}
		creditInfo, err := uc.LedgerUsecase.GetCreditInfo(bet.WeekID, bet.MemberID)
		if err != nil {
			return err
		}
		// The bet being edited still counts in OpenExposure here.
		available := creditInfo.AvailableCredit + oldStakeCash
		if input.StakeCashUnits > available {
			return fmt.Errorf("%w: stake %d over available %d",
				domain.ErrCreditExceeded, input.StakeCashUnits, available)
		}
		return nil
	}

	if err := uc.BetRepo.UpdateBet(input.BetID, upd, freePlayDelta, guard); err != nil {
		if errors.Is(err, domain.ErrCreditExceeded) && uc.Metrics != nil {
			uc.Metrics.RecordCreditRejection(bet.MemberID)
		}
		return nil, err
	}

	return uc.BetRepo.GetBetByID(input.BetID)
}
