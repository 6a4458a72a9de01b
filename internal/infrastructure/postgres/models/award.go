package models

import "time"

type FreePlayAwardModel struct {
	ID          string  `gorm:"primaryKey"`
	WeekID      string  `gorm:"type:uuid;index:idx_award_week"`
	MemberID    string  `gorm:"type:uuid;index:idx_award_member"`
	AmountUnits int64   `gorm:"not null"`
	Source      string  `gorm:"not null"`
	Status      string  `gorm:"not null;default:EARNED"`
	PromoID     *string `gorm:"type:uuid;index:idx_award_promo"`
	Notes       string
	AppliedAt   *time.Time
	CreatedAt   time.Time
}
