package domain

import "time"

// Member is a pool participant. FreePlayBalance is a running total of
// promotional credit across weeks, owned by the member, not by any week.
type Member struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	FreePlayBalance int64     `json:"free_play_balance"`
	CreatedAt       time.Time `json:"created_at"`
}

type MemberRepository interface {
	CreateMember(member *Member) error
	UpdateMemberName(memberID, name string) error
	GetMemberByID(memberID string) (*Member, error)
	ListMembers() ([]*Member, error)
}
