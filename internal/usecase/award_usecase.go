package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	publisher "github.com/crewpool/pool-ledger-service/internal/infrastructure/kafka"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/metrics"
	gonanoid "github.com/jaevor/go-nanoid"
)

// NewAwardID generates the short ids used for free-play awards.
var NewAwardID func() string

func init() {
	gen, err := gonanoid.Standard(15)
	if err != nil {
		panic(err)
	}
	NewAwardID = gen
}

type AwardUsecase interface {
	GrantManualAward(weekID, memberID string, amountUnits int64, notes string) (*domain.FreePlayAward, error)
	VoidAward(awardID string) error
	GetAwardByID(awardID string) (*domain.FreePlayAward, error)
	ListAwardsByWeek(weekID string) ([]*domain.FreePlayAward, error)
}

type DefaultAwardUsecase struct {
	AwardRepo      domain.AwardRepository
	WeekRepo       domain.WeekRepository
	WeekMemberRepo domain.WeekMemberRepository
	Publisher      *publisher.LedgerPublisher
	Metrics        *metrics.LedgerMetrics
}

func NewDefaultAwardUsecase(
	awardRepo domain.AwardRepository,
	weekRepo domain.WeekRepository,
	weekMemberRepo domain.WeekMemberRepository,
	ledgerPublisher *publisher.LedgerPublisher,
	ledgerMetrics *metrics.LedgerMetrics,
) *DefaultAwardUsecase {
	return &DefaultAwardUsecase{
		AwardRepo:      awardRepo,
		WeekRepo:       weekRepo,
		WeekMemberRepo: weekMemberRepo,
		Publisher:      ledgerPublisher,
		Metrics:        ledgerMetrics,
	}
}

// GrantManualAward hands out free play outside any promo. The member must
// be enrolled in the week and the week must still be open; the amount is
// added to the balance at week close with every other earned award.
func (uc *DefaultAwardUsecase) GrantManualAward(weekID, memberID string, amountUnits int64, notes string) (*domain.FreePlayAward, error) {
	if amountUnits <= 0 {
		return nil, fmt.Errorf("%w: award amount must be positive, got %d", domain.ErrInvalidState, amountUnits)
	}

	week, err := uc.WeekRepo.GetWeekByID(weekID)
	if err != nil {
		return nil, err
	}
	if week.Status != domain.WeekOpen {
		return nil, fmt.Errorf("%w: week %s is %s", domain.ErrInvalidState, weekID, week.Status)
	}

	if _, err := uc.WeekMemberRepo.GetWeekMember(weekID, memberID); err != nil {
		return nil, err
	}

	award := &domain.FreePlayAward{
		ID:          NewAwardID(),
		WeekID:      weekID,
		MemberID:    memberID,
		AmountUnits: amountUnits,
		Source:      domain.AwardManual,
		Status:      domain.AwardEarned,
		Notes:       notes,
	}
	if err := uc.AwardRepo.CreateAward(award); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordAwardIssued(string(domain.AwardManual), amountUnits)
	}
	if uc.Publisher != nil {
		go func() {
			event := publisher.AwardEvent{
				Type:        publisher.EventAwardIssued,
				AwardID:     award.ID,
				WeekID:      weekID,
				MemberID:    memberID,
				Source:      string(domain.AwardManual),
				AmountUnits: amountUnits,
				At:          time.Now(),
			}
			if err := uc.Publisher.PublishAwardEvent(event); err != nil {
				slog.Error("failed to publish award event", "awardID", award.ID, "error", err.Error())
			}
		}()
	}

	return award, nil
}

// VoidAward cancels an earned award. If the week already applied its
// amount to the member balance, the repository reverses the application.
func (uc *DefaultAwardUsecase) VoidAward(awardID string) error {
	award, err := uc.AwardRepo.GetAwardByID(awardID)
	if err != nil {
		return err
	}

	if err := uc.AwardRepo.VoidAward(awardID); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordAwardVoided(string(award.Source))
	}
	return nil
}

func (uc *DefaultAwardUsecase) GetAwardByID(awardID string) (*domain.FreePlayAward, error) {
	return uc.AwardRepo.GetAwardByID(awardID)
}

func (uc *DefaultAwardUsecase) ListAwardsByWeek(weekID string) ([]*domain.FreePlayAward, error) {
	return uc.AwardRepo.ListAwardsByWeek(weekID)
}
