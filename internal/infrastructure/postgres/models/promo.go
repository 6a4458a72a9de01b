package models

import "time"

type PromoModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	WeekID    string `gorm:"type:uuid;index:idx_promo_week"`
	Name      string `gorm:"not null"`
	Type      string `gorm:"not null"`
	Active    bool   `gorm:"not null;default:true"`
	RuleJSON  string `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
