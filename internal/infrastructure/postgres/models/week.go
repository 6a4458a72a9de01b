package models

import (
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
)

type WeekModel struct {
	ID        string            `gorm:"primaryKey;type:uuid"`
	Name      string            `gorm:"not null"`
	Status    domain.WeekStatus `gorm:"index:idx_week_status"`
	StartAt   time.Time
	EndAt     time.Time
	ClosedAt  *time.Time
	CreatedAt time.Time
}

type WeekMemberModel struct {
	WeekID           string `gorm:"primaryKey;type:uuid"`
	MemberID         string `gorm:"primaryKey;type:uuid"`
	CreditLimitUnits int64  `gorm:"not null"`
	Member           MemberModel `gorm:"foreignKey:MemberID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Week             WeekModel   `gorm:"foreignKey:WeekID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time
}
