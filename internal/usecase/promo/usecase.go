package usecase

import (
	"fmt"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/metrics"
	promodto "github.com/crewpool/pool-ledger-service/internal/usecase/dto/promo"
	"github.com/google/uuid"
)

type PromoUsecase interface {
	CreatePromo(input *promodto.CreatePromoInput) (*domain.Promo, error)
	UpdatePromo(input *promodto.UpdatePromoInput) (*domain.Promo, error)
	SetPromoActive(promoID string, active bool) error
	DeletePromo(promoID string) error

	GetPromoByID(promoID string) (*promodto.PromoOutput, error)
	ListPromosByWeek(weekID string) ([]*promodto.PromoOutput, error)
	GetPromoProgress(promoID string) ([]*promodto.MemberPromoResult, error)

	GeneratePromoAwards(weekID string) (int, int64, error)
}

type DefaultPromoUsecase struct {
	PromoRepo      domain.PromoRepository
	WeekRepo       domain.WeekRepository
	WeekMemberRepo domain.WeekMemberRepository
	BetRepo        domain.BetRepository
	AwardRepo      domain.AwardRepository
	Metrics        *metrics.LedgerMetrics
}

func NewDefaultPromoUsecase(
	promoRepo domain.PromoRepository,
	weekRepo domain.WeekRepository,
	weekMemberRepo domain.WeekMemberRepository,
	betRepo domain.BetRepository,
	awardRepo domain.AwardRepository,
	ledgerMetrics *metrics.LedgerMetrics,
) *DefaultPromoUsecase {
	return &DefaultPromoUsecase{
		PromoRepo:      promoRepo,
		WeekRepo:       weekRepo,
		WeekMemberRepo: weekMemberRepo,
		BetRepo:        betRepo,
		AwardRepo:      awardRepo,
		Metrics:        ledgerMetrics,
	}
}

func (uc *DefaultPromoUsecase) requireOpenWeek(weekID string) error {
	week, err := uc.WeekRepo.GetWeekByID(weekID)
	if err != nil {
		return err
	}
	if week.Status != domain.WeekOpen {
		return fmt.Errorf("%w: week %s is %s", domain.ErrInvalidState, weekID, week.Status)
	}
	return nil
}

func (uc *DefaultPromoUsecase) CreatePromo(input *promodto.CreatePromoInput) (*domain.Promo, error) {
	if domain.PromoType(input.Type) != domain.PromoLossRebate {
		return nil, fmt.Errorf("%w: unsupported promo type %q", domain.ErrInvalidState, input.Type)
	}
	if err := uc.requireOpenWeek(input.WeekID); err != nil {
		return nil, err
	}

	rule, err := domain.ParseLossRebateRule(input.RuleJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidState, err.Error())
	}

	promo := &domain.Promo{
		ID:       uuid.New().String(),
		WeekID:   input.WeekID,
		Name:     input.Name,
		Type:     domain.PromoLossRebate,
		Active:   true,
		RuleJSON: string(input.RuleJSON),
		Rule:     rule,
	}
	if err := uc.PromoRepo.CreatePromo(promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (uc *DefaultPromoUsecase) UpdatePromo(input *promodto.UpdatePromoInput) (*domain.Promo, error) {
	promo, err := uc.PromoRepo.GetPromoByID(input.PromoID)
	if err != nil {
		return nil, err
	}
	if err := uc.requireOpenWeek(promo.WeekID); err != nil {
		return nil, err
	}

	if input.Name != "" {
		promo.Name = input.Name
	}
	if len(input.RuleJSON) > 0 {
		rule, err := domain.ParseLossRebateRule(input.RuleJSON)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidState, err.Error())
		}
		promo.RuleJSON = string(input.RuleJSON)
		promo.Rule = rule
	}

	if err := uc.PromoRepo.UpdatePromo(promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (uc *DefaultPromoUsecase) SetPromoActive(promoID string, active bool) error {
	promo, err := uc.PromoRepo.GetPromoByID(promoID)
	if err != nil {
		return err
	}
	if err := uc.requireOpenWeek(promo.WeekID); err != nil {
		return err
	}
	return uc.PromoRepo.SetPromoActive(promoID, active)
}

// DeletePromo removes a promo that never paid out. Promos with awards are
// protected by the repository; deactivate those instead.
func (uc *DefaultPromoUsecase) DeletePromo(promoID string) error {
	promo, err := uc.PromoRepo.GetPromoByID(promoID)
	if err != nil {
		return err
	}
	if err := uc.requireOpenWeek(promo.WeekID); err != nil {
		return err
	}
	return uc.PromoRepo.DeletePromo(promoID)
}
