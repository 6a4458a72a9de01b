package models

import "time"

type MemberModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	Name            string `gorm:"not null"`
	FreePlayBalance int64  `gorm:"not null;default:0"`
	CreatedAt       time.Time
}
