package models

import (
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
)

type BetModel struct {
	ID                 string           `gorm:"primaryKey;type:uuid"`
	WeekID             string           `gorm:"type:uuid;index:idx_bet_week"`
	MemberID           string           `gorm:"type:uuid;index:idx_bet_member"`
	Description        string           `gorm:"not null"`
	EventKey           string
	Sport              string
	BetType            string
	OddsAmerican       int
	StakeCashUnits     int64            `gorm:"not null"`
	StakeFreePlayUnits int64            `gorm:"not null;default:0"`
	Status             domain.BetStatus `gorm:"index:idx_bet_status"`
	Result             string
	PayoutCashUnits    *int64
	PlacedAt           time.Time `gorm:"index:idx_bet_placed_at"`
	SettledAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
