package models

import "time"

type WeekStatementModel struct {
	ID                     string `gorm:"primaryKey;type:uuid"`
	WeekID                 string `gorm:"type:uuid;uniqueIndex:idx_statement_week_member"`
	MemberID               string `gorm:"type:uuid;uniqueIndex:idx_statement_week_member"`
	CashProfitUnits        int64
	FreePlayEarnedUnits    int64
	WeeklyScoreUnits       int64
	OwesHouseUnits         int64
	HouseOwesUnits         int64
	HouseOwesFreePlayUnits int64
	Member                 MemberModel `gorm:"foreignKey:MemberID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Week                   WeekModel   `gorm:"foreignKey:WeekID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
