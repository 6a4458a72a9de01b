package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultBetRepository struct {
	DB *gorm.DB
}

func NewDefaultBetRepository(db *gorm.DB) *DefaultBetRepository {
	return &DefaultBetRepository{DB: db}
}

// lockWeekMember takes a row lock on the week member so that concurrent
// stake mutations for the same member serialize; the caller's credit
// guard then reads a stable view.
func lockWeekMember(tx *gorm.DB, weekID, memberID string) error {
	var weekMember models.WeekMemberModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&weekMember, "week_id = ? AND member_id = ?", weekID, memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: member %s is not in week %s", domain.ErrNotFound, memberID, weekID)
		}
		return err
	}
	return nil
}

// deductFreePlay takes amount from the member's free-play balance,
// failing with ErrFreePlayInsufficient when the balance cannot cover it.
func deductFreePlay(tx *gorm.DB, memberID string, amount int64) error {
	var member models.MemberModel
	if err := tx.First(&member, "id = ?", memberID).Error; err != nil {
		return err
	}
	if member.FreePlayBalance < amount {
		return fmt.Errorf("%w: free-play stake %d exceeds balance %d",
			domain.ErrFreePlayInsufficient, amount, member.FreePlayBalance)
	}
	return tx.Model(&models.MemberModel{}).
		Where("id = ?", memberID).
		Update("free_play_balance", gorm.Expr("free_play_balance - ?", amount)).Error
}

func returnFreePlay(tx *gorm.DB, memberID string, amount int64) error {
	return tx.Model(&models.MemberModel{}).
		Where("id = ?", memberID).
		Update("free_play_balance", gorm.Expr("free_play_balance + ?", amount)).Error
}

func (r *DefaultBetRepository) PlaceBet(bet *domain.Bet, guard func() error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockWeekMember(tx, bet.WeekID, bet.MemberID); err != nil {
			return err
		}
		if guard != nil {
			if err := guard(); err != nil {
				return err
			}
		}
		if bet.StakeFreePlayUnits > 0 {
			if err := deductFreePlay(tx, bet.MemberID, bet.StakeFreePlayUnits); err != nil {
				return err
			}
		}
		return tx.Create(mappers.ToGORMBet(bet)).Error
	})
}

func (r *DefaultBetRepository) SettleBet(betID string, result domain.BetResult, payoutCashUnits int64, settledAt time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var model models.BetModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, "id = ?", betID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: bet %s", domain.ErrNotFound, betID)
			}
			return err
		}
		if model.Status != domain.BetOpen {
			return fmt.Errorf("%w: bet %s is %s", domain.ErrInvalidState, betID, model.Status)
		}

		return tx.Model(&models.BetModel{}).
			Where("id = ?", betID).
			Updates(map[string]interface{}{
				"status":            domain.BetSettled,
				"result":            string(result),
				"payout_cash_units": payoutCashUnits,
				"settled_at":        settledAt,
			}).Error
	})
}

func (r *DefaultBetRepository) VoidBet(betID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var model models.BetModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, "id = ?", betID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: bet %s", domain.ErrNotFound, betID)
			}
			return err
		}
		if model.Status != domain.BetOpen {
			return fmt.Errorf("%w: bet %s is %s", domain.ErrInvalidState, betID, model.Status)
		}

		err = tx.Model(&models.BetModel{}).
			Where("id = ?", betID).
			Update("status", domain.BetVoided).Error
		if err != nil {
			return err
		}

		// A voided free-play bet returns its stake to the member.
		if model.StakeFreePlayUnits > 0 {
			return returnFreePlay(tx, model.MemberID, model.StakeFreePlayUnits)
		}
		return nil
	})
}

func (r *DefaultBetRepository) UpdateBet(betID string, upd domain.BetUpdate, freePlayDelta int64, guard func() error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var model models.BetModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, "id = ?", betID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: bet %s", domain.ErrNotFound, betID)
			}
			return err
		}
		if model.Status != domain.BetOpen {
			return fmt.Errorf("%w: bet %s is %s", domain.ErrInvalidState, betID, model.Status)
		}

		if err := lockWeekMember(tx, model.WeekID, model.MemberID); err != nil {
			return err
		}
		if guard != nil {
			if err := guard(); err != nil {
				return err
			}
		}

		if freePlayDelta > 0 {
			if err := deductFreePlay(tx, model.MemberID, freePlayDelta); err != nil {
				return err
			}
		} else if freePlayDelta < 0 {
			if err := returnFreePlay(tx, model.MemberID, -freePlayDelta); err != nil {
				return err
			}
		}

		return tx.Model(&models.BetModel{}).
			Where("id = ?", betID).
			Updates(map[string]interface{}{
				"description":           upd.Description,
				"event_key":             upd.EventKey,
				"sport":                 upd.Sport,
				"bet_type":              upd.BetType,
				"odds_american":         upd.OddsAmerican,
				"stake_cash_units":      upd.StakeCashUnits,
				"stake_free_play_units": upd.StakeFreePlayUnits,
			}).Error
	})
}

func (r *DefaultBetRepository) GetBetByID(betID string) (*domain.Bet, error) {
	var model models.BetModel
	if err := r.DB.First(&model, "id = ?", betID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: bet %s", domain.ErrNotFound, betID)
		}
		return nil, err
	}
	return mappers.ToDomainBet(&model), nil
}

func (r *DefaultBetRepository) ListBetsByWeek(weekID string) ([]*domain.Bet, error) {
	var betModels []models.BetModel
	err := r.DB.Where("week_id = ?", weekID).
		Order("placed_at DESC").
		Find(&betModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainBets(betModels), nil
}

func (r *DefaultBetRepository) ListBetsByWeekMember(weekID, memberID string) ([]*domain.Bet, error) {
	var betModels []models.BetModel
	err := r.DB.Where("week_id = ? AND member_id = ?", weekID, memberID).
		Order("placed_at DESC").
		Find(&betModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainBets(betModels), nil
}

func (r *DefaultBetRepository) CountOpenBets(weekID string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.BetModel{}).
		Where("week_id = ? AND status = ?", weekID, domain.BetOpen).
		Count(&count).Error
	return count, err
}

func (r *DefaultBetRepository) CountOpenBetsByMember(weekID, memberID string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.BetModel{}).
		Where("week_id = ? AND member_id = ? AND status = ?", weekID, memberID, domain.BetOpen).
		Count(&count).Error
	return count, err
}

func toDomainBets(betModels []models.BetModel) []*domain.Bet {
	bets := make([]*domain.Bet, len(betModels))
	for i := range betModels {
		bets[i] = mappers.ToDomainBet(&betModels[i])
	}
	return bets
}
