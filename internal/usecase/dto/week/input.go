package weekdto

import "time"

type CreateWeekInput struct {
	Name    string
	StartAt time.Time
	EndAt   time.Time
}

type AddMemberInput struct {
	WeekID           string
	MemberID         string
	CreditLimitUnits int64
}
