package domain

import "time"

type AwardSource string

const (
	AwardManual        AwardSource = "MANUAL"
	AwardPromo         AwardSource = "PROMO"
	AwardDefaultRebate AwardSource = "DEFAULT_REBATE"
)

type AwardStatus string

const (
	AwardEarned AwardStatus = "EARNED"
	AwardVoided AwardStatus = "VOIDED"
)

// FreePlayAward is earned promotional credit. AppliedAt is set when the
// amount has been added to the member's free-play balance during week
// close; the balance stage only picks up unstamped awards, which makes a
// close retry safe.
type FreePlayAward struct {
	ID          string      `json:"id"`
	WeekID      string      `json:"week_id"`
	MemberID    string      `json:"member_id"`
	AmountUnits int64       `json:"amount_units"`
	Source      AwardSource `json:"source"`
	Status      AwardStatus `json:"status"`
	PromoID     string      `json:"promo_id,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	AppliedAt   *time.Time  `json:"applied_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

type AwardRepository interface {
	CreateAward(award *FreePlayAward) error
	// CreateAwardIfAbsent inserts the award unless one already exists for
	// the same (promo, member) pair (PROMO source) or the same
	// (week, member) pair (DEFAULT_REBATE source). Returns whether a row
	// was created.
	CreateAwardIfAbsent(award *FreePlayAward) (bool, error)
	// VoidAward marks an award VOIDED. If its amount was already applied
	// to the member balance, the application is reversed.
	VoidAward(awardID string) error
	GetAwardByID(awardID string) (*FreePlayAward, error)
	ListAwardsByWeek(weekID string) ([]*FreePlayAward, error)
	ListEarnedAwardsByWeekMember(weekID, memberID string) ([]*FreePlayAward, error)
	ListEarnedPromoAwards(weekID, memberID string) ([]*FreePlayAward, error)
	// ApplyUnappliedAwards adds every EARNED, not-yet-applied award of the
	// week to its member's free-play balance, stamping appliedAt. Returns
	// the credited total per member.
	ApplyUnappliedAwards(weekID string, appliedAt time.Time) (map[string]int64, error)
}
