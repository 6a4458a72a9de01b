package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	publisher "github.com/crewpool/pool-ledger-service/internal/infrastructure/kafka"
	weekdto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/week"
)

// CloseWeek runs the settlement pipeline: promo awards, then the default
// rebate top-up, then free-play balance application, then statements, and
// finally the status flip to CLOSED. Every stage is safe to rerun, so a
// close that failed midway is retried by calling CloseWeek again.
func (uc *DefaultWeekUsecase) CloseWeek(weekID string) (*weekdto.CloseWeekResult, error) {
	started := time.Now()

	week, err := uc.WeekRepo.GetWeekByID(weekID)
	if err != nil {
		return nil, err
	}
	if week.Status != domain.WeekOpen {
		return nil, fmt.Errorf("%w: week %s is %s", domain.ErrInvalidState, weekID, week.Status)
	}

	openBets, err := uc.BetRepo.CountOpenBets(weekID)
	if err != nil {
		return nil, err
	}
	if openBets > 0 {
		return nil, fmt.Errorf("%w: %d bets still open", domain.ErrWeekNotCloseable, openBets)
	}

	result := &weekdto.CloseWeekResult{WeekID: weekID}

	result.PromoAwardsIssued, result.PromoAwardUnitsIssued, err = uc.PromoUsecase.GeneratePromoAwards(weekID)
	if err != nil {
		return nil, fmt.Errorf("promo awards: %w", err)
	}

	result.DefaultRebatesIssued, result.RebateUnitsIssued, err = uc.generateDefaultRebates(weekID)
	if err != nil {
		return nil, fmt.Errorf("default rebates: %w", err)
	}

	closedAt := time.Now()
	result.FreePlayApplied, err = uc.AwardRepo.ApplyUnappliedAwards(weekID, closedAt)
	if err != nil {
		return nil, fmt.Errorf("apply free play: %w", err)
	}
	if uc.Metrics != nil {
		for memberID, amount := range result.FreePlayApplied {
			uc.Metrics.RecordFreePlayApplied(memberID, amount)
		}
	}

	result.StatementsGenerated, err = uc.StatementUsecase.GenerateStatements(weekID)
	if err != nil {
		return nil, fmt.Errorf("statements: %w", err)
	}

	if err := uc.WeekRepo.MarkWeekClosed(weekID, closedAt); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordWeekClosed(time.Since(started).Seconds())
	}
	slog.Info("week closed",
		"weekID", weekID,
		"promoAwards", result.PromoAwardsIssued,
		"defaultRebates", result.DefaultRebatesIssued,
		"statements", result.StatementsGenerated)

	if uc.Publisher != nil {
		event := publisher.WeekClosedEvent{
			Type:                 publisher.EventWeekClosed,
			WeekID:               weekID,
			PromoAwardsIssued:    result.PromoAwardsIssued,
			DefaultRebatesIssued: result.DefaultRebatesIssued,
			StatementsGenerated:  result.StatementsGenerated,
			ClosedAt:             closedAt,
		}
		go func() {
			if err := uc.Publisher.PublishWeekClosed(event); err != nil {
				slog.Error("failed to publish week closed event", "weekID", weekID, "error", err.Error())
			}
		}()
	}

	return result, nil
}
