package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	publisher "github.com/crewpool/pool-ledger-service/internal/infrastructure/kafka"
	betdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/bet"
	"github.com/google/uuid"
)

func validOdds(odds int) bool {
	return odds >= 100 || odds <= -100
}

// PlaceBet records a wager against an open week. Cash stake is checked
// against available credit inside the repository transaction so two
// concurrent placements cannot both pass the check; OverrideCredit skips
// the check. Free-play stake is deducted from the balance immediately.
func (uc *DefaultBetUsecase) PlaceBet(input *betdto.PlaceBetInput) (*domain.Bet, error) {
	if input.StakeCashUnits < 0 || input.StakeFreePlayUnits < 0 {
		return nil, fmt.Errorf("%w: stake must not be negative", domain.ErrInvalidState)
	}
	if input.StakeCashUnits+input.StakeFreePlayUnits == 0 {
		return nil, fmt.Errorf("%w: bet needs a cash or free-play stake", domain.ErrInvalidState)
	}
	if !validOdds(input.OddsAmerican) {
		return nil, fmt.Errorf("%w: invalid american odds %d", domain.ErrInvalidState, input.OddsAmerican)
	}

	if _, err := uc.requireOpenWeek(input.WeekID); err != nil {
		return nil, err
	}
	if _, err := uc.WeekMemberRepo.GetWeekMember(input.WeekID, input.MemberID); err != nil {
		return nil, err
	}

	placedAt := input.PlacedAt
	if placedAt.IsZero() {
		placedAt = time.Now()
	}

	bet := &domain.Bet{
		ID:                 uuid.New().String(),
		WeekID:             input.WeekID,
		MemberID:           input.MemberID,
		Description:        input.Description,
		EventKey:           input.EventKey,
		Sport:              input.Sport,
		BetType:            input.BetType,
		OddsAmerican:       input.OddsAmerican,
		StakeCashUnits:     input.StakeCashUnits,
		StakeFreePlayUnits: input.StakeFreePlayUnits,
		Status:             domain.BetOpen,
		PlacedAt:           placedAt,
	}

	guard := func() error {
		if input.OverrideCredit || input.StakeCashUnits == 0 {
			return nil
		}
		creditInfo, err := uc.LedgerUsecase.GetCreditInfo(input.WeekID, input.MemberID)
		if err != nil {
			return err
		}
		if input.StakeCashUnits > creditInfo.AvailableCredit {
			return fmt.Errorf("%w: stake %d over available %d",
				domain.ErrCreditExceeded, input.StakeCashUnits, creditInfo.AvailableCredit)
		}
		return nil
	}

	if err := uc.BetRepo.PlaceBet(bet, guard); err != nil {
		if errors.Is(err, domain.ErrCreditExceeded) && uc.Metrics != nil {
			uc.Metrics.RecordCreditRejection(input.MemberID)
		}
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordBetPlaced(input.MemberID, input.StakeCashUnits, input.StakeFreePlayUnits)
	}
	uc.publishBetEvent(publisher.EventBetPlaced, bet)

	return bet, nil
}

func (uc *DefaultBetUsecase) publishBetEvent(eventType string, bet *domain.Bet) {
	if uc.Publisher == nil {
		return
	}
	event := publisher.BetEvent{
		Type:               eventType,
		BetID:              bet.ID,
		WeekID:             bet.WeekID,
		MemberID:           bet.MemberID,
		StakeCashUnits:     bet.StakeCashUnits,
		StakeFreePlayUnits: bet.StakeFreePlayUnits,
		Result:             string(bet.Result),
		At:                 time.Now(),
	}
	if bet.PayoutCashUnits != nil {
		event.PayoutCashUnits = *bet.PayoutCashUnits
	}
	go func() {
		if err := uc.Publisher.PublishBetEvent(event); err != nil {
			slog.Error("failed to publish bet event", "type", eventType, "betID", bet.ID, "error", err.Error())
		}
	}()
}
