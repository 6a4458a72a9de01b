package domain

import "time"

type WeekStatus string

const (
	WeekOpen   WeekStatus = "OPEN"
	WeekClosed WeekStatus = "CLOSED"
)

// Week is the settlement period. CLOSED is terminal: a closed week rejects
// all further bet, promo, award and credit-limit mutations.
type Week struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    WeekStatus `json:"status"`
	StartAt   time.Time  `json:"start_at"`
	EndAt     time.Time  `json:"end_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// WeekMember enrolls a member into a week and carries the per-week
// cash credit ceiling.
type WeekMember struct {
	WeekID           string `json:"week_id"`
	MemberID         string `json:"member_id"`
	MemberName       string `json:"member_name"`
	CreditLimitUnits int64  `json:"credit_limit_units"`
}

type WeekRepository interface {
	CreateWeek(week *Week) error
	GetWeekByID(weekID string) (*Week, error)
	ListWeeks() ([]*Week, error)
	MarkWeekClosed(weekID string, closedAt time.Time) error
}

type WeekMemberRepository interface {
	AddWeekMember(weekMember *WeekMember) error
	GetWeekMember(weekID, memberID string) (*WeekMember, error)
	ListWeekMembers(weekID string) ([]*WeekMember, error)
	UpdateCreditLimit(weekID, memberID string, creditLimitUnits int64) error
	RemoveWeekMember(weekID, memberID string) error
}
