// Package testutil provides an in-memory implementation of the repository
// interfaces for usecase tests. Semantics mirror the postgres layer:
// guarded placement, free-play accounting, idempotent award creation.
package testutil

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/crewpool/pool-ledger-service/internal/domain"
)

type Store struct {
	mu         sync.Mutex
	Members    map[string]*domain.Member
	Weeks      map[string]*domain.Week
	WeekMembs  map[string]*domain.WeekMember
	Bets       map[string]*domain.Bet
	Promos     map[string]*domain.Promo
	Awards     map[string]*domain.FreePlayAward
	Statements map[string]*domain.WeekStatement
}

func NewStore() *Store {
	return &Store{
		Members:    make(map[string]*domain.Member),
		Weeks:      make(map[string]*domain.Week),
		WeekMembs:  make(map[string]*domain.WeekMember),
		Bets:       make(map[string]*domain.Bet),
		Promos:     make(map[string]*domain.Promo),
		Awards:     make(map[string]*domain.FreePlayAward),
		Statements: make(map[string]*domain.WeekStatement),
	}
}

func weekMemberKey(weekID, memberID string) string {
	return weekID + "/" + memberID
}

// --- MemberRepository ---

func (s *Store) CreateMember(member *domain.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *member
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
	}
	s.Members[copied.ID] = &copied
	return nil
}

func (s *Store) UpdateMemberName(memberID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	member, ok := s.Members[memberID]
	if !ok {
		return fmt.Errorf("%w: member %s", domain.ErrNotFound, memberID)
	}
	member.Name = name
	return nil
}

func (s *Store) GetMemberByID(memberID string) (*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	member, ok := s.Members[memberID]
	if !ok {
		return nil, fmt.Errorf("%w: member %s", domain.ErrNotFound, memberID)
	}
	copied := *member
	return &copied, nil
}

func (s *Store) ListMembers() ([]*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	members := make([]*domain.Member, 0, len(s.Members))
	for _, member := range s.Members {
		copied := *member
		members = append(members, &copied)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members, nil
}

// --- WeekRepository ---

func (s *Store) CreateWeek(week *domain.Week) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *week
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
	}
	s.Weeks[copied.ID] = &copied
	return nil
}

func (s *Store) GetWeekByID(weekID string) (*domain.Week, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	week, ok := s.Weeks[weekID]
	if !ok {
		return nil, fmt.Errorf("%w: week %s", domain.ErrNotFound, weekID)
	}
	copied := *week
	return &copied, nil
}

func (s *Store) ListWeeks() ([]*domain.Week, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	weeks := make([]*domain.Week, 0, len(s.Weeks))
	for _, week := range s.Weeks {
		copied := *week
		weeks = append(weeks, &copied)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].StartAt.After(weeks[j].StartAt) })
	return weeks, nil
}

func (s *Store) MarkWeekClosed(weekID string, closedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	week, ok := s.Weeks[weekID]
	if !ok {
		return fmt.Errorf("%w: week %s", domain.ErrNotFound, weekID)
	}
	if week.Status != domain.WeekOpen {
		return fmt.Errorf("%w: week %s is %s", domain.ErrInvalidState, weekID, week.Status)
	}
	week.Status = domain.WeekClosed
	week.ClosedAt = &closedAt
	return nil
}

// --- WeekMemberRepository ---

func (s *Store) AddWeekMember(weekMember *domain.WeekMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *weekMember
	if member, ok := s.Members[copied.MemberID]; ok {
		copied.MemberName = member.Name
	}
	s.WeekMembs[weekMemberKey(copied.WeekID, copied.MemberID)] = &copied
	return nil
}

func (s *Store) GetWeekMember(weekID, memberID string) (*domain.WeekMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	weekMember, ok := s.WeekMembs[weekMemberKey(weekID, memberID)]
	if !ok {
		return nil, fmt.Errorf("%w: member %s in week %s", domain.ErrNotFound, memberID, weekID)
	}
	copied := *weekMember
	return &copied, nil
}

func (s *Store) ListWeekMembers(weekID string) ([]*domain.WeekMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	weekMembers := make([]*domain.WeekMember, 0)
	for _, weekMember := range s.WeekMembs {
		if weekMember.WeekID == weekID {
			copied := *weekMember
			weekMembers = append(weekMembers, &copied)
		}
	}
	sort.Slice(weekMembers, func(i, j int) bool {
		return weekMembers[i].MemberName < weekMembers[j].MemberName
	})
	return weekMembers, nil
}

func (s *Store) UpdateCreditLimit(weekID, memberID string, creditLimitUnits int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	weekMember, ok := s.WeekMembs[weekMemberKey(weekID, memberID)]
	if !ok {
		return fmt.Errorf("%w: member %s in week %s", domain.ErrNotFound, memberID, weekID)
	}
	weekMember.CreditLimitUnits = creditLimitUnits
	return nil
}

func (s *Store) RemoveWeekMember(weekID, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := weekMemberKey(weekID, memberID)
	if _, ok := s.WeekMembs[key]; !ok {
		return fmt.Errorf("%w: member %s in week %s", domain.ErrNotFound, memberID, weekID)
	}
	delete(s.WeekMembs, key)
	return nil
}

// --- BetRepository ---

func (s *Store) PlaceBet(bet *domain.Bet, guard func() error) error {
	if guard != nil {
		if err := guard(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if bet.StakeFreePlayUnits > 0 {
		if err := s.deductFreePlayLocked(bet.MemberID, bet.StakeFreePlayUnits); err != nil {
			return err
		}
	}
	copied := *bet
	s.Bets[copied.ID] = &copied
	return nil
}

func (s *Store) deductFreePlayLocked(memberID string, amount int64) error {
	member, ok := s.Members[memberID]
	if !ok {
		return fmt.Errorf("%w: member %s", domain.ErrNotFound, memberID)
	}
	if member.FreePlayBalance < amount {
		return fmt.Errorf("%w: need %d, have %d", domain.ErrFreePlayInsufficient, amount, member.FreePlayBalance)
	}
	member.FreePlayBalance -= amount
	return nil
}

func (s *Store) SettleBet(betID string, result domain.BetResult, payoutCashUnits int64, settledAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bet, ok := s.Bets[betID]
	if !ok {
		return fmt.Errorf("%w: bet %s", domain.ErrNotFound, betID)
	}
	if bet.Status != domain.BetOpen {
		return fmt.Errorf("%w: bet %s is %s", domain.ErrInvalidState, betID, bet.Status)
	}
	bet.Status = domain.BetSettled
	bet.Result = result
	bet.PayoutCashUnits = &payoutCashUnits
	bet.SettledAt = &settledAt
	return nil
}

func (s *Store) VoidBet(betID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bet, ok := s.Bets[betID]
	if !ok {
		return fmt.Errorf("%w: bet %s", domain.ErrNotFound, betID)
	}
	if bet.Status != domain.BetOpen {
		return fmt.Errorf("%w: bet %s is %s", domain.ErrInvalidState, betID, bet.Status)
	}
	bet.Status = domain.BetVoided
	if bet.StakeFreePlayUnits > 0 {
		if member, ok := s.Members[bet.MemberID]; ok {
			member.FreePlayBalance += bet.StakeFreePlayUnits
		}
	}
	return nil
}

func (s *Store) UpdateBet(betID string, upd domain.BetUpdate, freePlayDelta int64, guard func() error) error {
	if guard != nil {
		if err := guard(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	bet, ok := s.Bets[betID]
	if !ok {
		return fmt.Errorf("%w: bet %s", domain.ErrNotFound, betID)
	}
	if bet.Status != domain.BetOpen {
		return fmt.Errorf("%w: bet %s is %s", domain.ErrInvalidState, betID, bet.Status)
	}
	if freePlayDelta > 0 {
		if err := s.deductFreePlayLocked(bet.MemberID, freePlayDelta); err != nil {
			return err
		}
	} else if freePlayDelta < 0 {
		if member, ok := s.Members[bet.MemberID]; ok {
			member.FreePlayBalance += -freePlayDelta
		}
	}
	bet.Description = upd.Description
	bet.EventKey = upd.EventKey
	bet.Sport = upd.Sport
	bet.BetType = upd.BetType
	bet.OddsAmerican = upd.OddsAmerican
	bet.StakeCashUnits = upd.StakeCashUnits
	bet.StakeFreePlayUnits = upd.StakeFreePlayUnits
	return nil
}

func (s *Store) GetBetByID(betID string) (*domain.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bet, ok := s.Bets[betID]
	if !ok {
		return nil, fmt.Errorf("%w: bet %s", domain.ErrNotFound, betID)
	}
	copied := *bet
	return &copied, nil
}

func (s *Store) ListBetsByWeek(weekID string) ([]*domain.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bets := make([]*domain.Bet, 0)
	for _, bet := range s.Bets {
		if bet.WeekID == weekID {
			copied := *bet
			bets = append(bets, &copied)
		}
	}
	sort.Slice(bets, func(i, j int) bool { return bets[i].PlacedAt.Before(bets[j].PlacedAt) })
	return bets, nil
}

func (s *Store) ListBetsByWeekMember(weekID, memberID string) ([]*domain.Bet, error) {
	bets, _ := s.ListBetsByWeek(weekID)
	filtered := make([]*domain.Bet, 0)
	for _, bet := range bets {
		if bet.MemberID == memberID {
			filtered = append(filtered, bet)
		}
	}
	return filtered, nil
}

func (s *Store) CountOpenBets(weekID string) (int64, error) {
	bets, _ := s.ListBetsByWeek(weekID)
	var count int64
	for _, bet := range bets {
		if bet.Status == domain.BetOpen {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountOpenBetsByMember(weekID, memberID string) (int64, error) {
	bets, _ := s.ListBetsByWeekMember(weekID, memberID)
	var count int64
	for _, bet := range bets {
		if bet.Status == domain.BetOpen {
			count++
		}
	}
	return count, nil
}

// --- PromoRepository ---

func (s *Store) CreatePromo(promo *domain.Promo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *promo
	s.Promos[copied.ID] = &copied
	return nil
}

func (s *Store) UpdatePromo(promo *domain.Promo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Promos[promo.ID]; !ok {
		return fmt.Errorf("%w: promo %s", domain.ErrNotFound, promo.ID)
	}
	copied := *promo
	s.Promos[copied.ID] = &copied
	return nil
}

func (s *Store) GetPromoByID(promoID string) (*domain.Promo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	promo, ok := s.Promos[promoID]
	if !ok {
		return nil, fmt.Errorf("%w: promo %s", domain.ErrNotFound, promoID)
	}
	copied := *promo
	return &copied, nil
}

func (s *Store) ListPromosByWeek(weekID string) ([]*domain.Promo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	promos := make([]*domain.Promo, 0)
	for _, promo := range s.Promos {
		if promo.WeekID == weekID {
			copied := *promo
			promos = append(promos, &copied)
		}
	}
	sort.Slice(promos, func(i, j int) bool { return promos[i].Name < promos[j].Name })
	return promos, nil
}

func (s *Store) ListActiveLossRebates(weekID string) ([]*domain.Promo, error) {
	promos, _ := s.ListPromosByWeek(weekID)
	filtered := make([]*domain.Promo, 0)
	for _, promo := range promos {
		if promo.Active && promo.Type == domain.PromoLossRebate {
			filtered = append(filtered, promo)
		}
	}
	return filtered, nil
}

func (s *Store) SetPromoActive(promoID string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	promo, ok := s.Promos[promoID]
	if !ok {
		return fmt.Errorf("%w: promo %s", domain.ErrNotFound, promoID)
	}
	promo.Active = active
	return nil
}

func (s *Store) DeletePromo(promoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Promos[promoID]; !ok {
		return fmt.Errorf("%w: promo %s", domain.ErrNotFound, promoID)
	}
	for _, award := range s.Awards {
		if award.PromoID == promoID {
			return fmt.Errorf("%w: promo %s, deactivate it instead", domain.ErrPromoHasAwards, promoID)
		}
	}
	delete(s.Promos, promoID)
	return nil
}

// --- AwardRepository ---

func (s *Store) CreateAward(award *domain.FreePlayAward) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *award
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
	}
	s.Awards[copied.ID] = &copied
	return nil
}

func (s *Store) CreateAwardIfAbsent(award *domain.FreePlayAward) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.Awards {
		if existing.WeekID != award.WeekID || existing.MemberID != award.MemberID {
			continue
		}
		switch award.Source {
		case domain.AwardPromo:
			if existing.PromoID == award.PromoID {
				return false, nil
			}
		case domain.AwardDefaultRebate:
			if existing.Source == domain.AwardDefaultRebate {
				return false, nil
			}
		default:
			return false, fmt.Errorf("source %s has no idempotence key", award.Source)
		}
	}
	copied := *award
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
	}
	s.Awards[copied.ID] = &copied
	return true, nil
}

func (s *Store) VoidAward(awardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	award, ok := s.Awards[awardID]
	if !ok {
		return fmt.Errorf("%w: award %s", domain.ErrNotFound, awardID)
	}
	if award.Status != domain.AwardEarned {
		return fmt.Errorf("%w: award %s is %s", domain.ErrInvalidState, awardID, award.Status)
	}
	award.Status = domain.AwardVoided
	if award.AppliedAt != nil {
		if member, ok := s.Members[award.MemberID]; ok {
			member.FreePlayBalance -= award.AmountUnits
		}
	}
	return nil
}

func (s *Store) GetAwardByID(awardID string) (*domain.FreePlayAward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	award, ok := s.Awards[awardID]
	if !ok {
		return nil, fmt.Errorf("%w: award %s", domain.ErrNotFound, awardID)
	}
	copied := *award
	return &copied, nil
}

func (s *Store) ListAwardsByWeek(weekID string) ([]*domain.FreePlayAward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	awards := make([]*domain.FreePlayAward, 0)
	for _, award := range s.Awards {
		if award.WeekID == weekID {
			copied := *award
			awards = append(awards, &copied)
		}
	}
	sort.Slice(awards, func(i, j int) bool { return awards[i].ID < awards[j].ID })
	return awards, nil
}

func (s *Store) ListEarnedAwardsByWeekMember(weekID, memberID string) ([]*domain.FreePlayAward, error) {
	awards, _ := s.ListAwardsByWeek(weekID)
	filtered := make([]*domain.FreePlayAward, 0)
	for _, award := range awards {
		if award.MemberID == memberID && award.Status == domain.AwardEarned {
			filtered = append(filtered, award)
		}
	}
	return filtered, nil
}

func (s *Store) ListEarnedPromoAwards(weekID, memberID string) ([]*domain.FreePlayAward, error) {
	awards, _ := s.ListEarnedAwardsByWeekMember(weekID, memberID)
	filtered := make([]*domain.FreePlayAward, 0)
	for _, award := range awards {
		if award.Source == domain.AwardPromo {
			filtered = append(filtered, award)
		}
	}
	return filtered, nil
}

func (s *Store) ApplyUnappliedAwards(weekID string, appliedAt time.Time) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	applied := make(map[string]int64)
	for _, award := range s.Awards {
		if award.WeekID != weekID || award.Status != domain.AwardEarned || award.AppliedAt != nil {
			continue
		}
		stamp := appliedAt
		award.AppliedAt = &stamp
		applied[award.MemberID] += award.AmountUnits
		if member, ok := s.Members[award.MemberID]; ok {
			member.FreePlayBalance += award.AmountUnits
		}
	}
	return applied, nil
}

// --- StatementRepository ---

func (s *Store) UpsertStatement(statement *domain.WeekStatement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := weekMemberKey(statement.WeekID, statement.MemberID)
	copied := *statement
	if existing, ok := s.Statements[key]; ok {
		copied.ID = existing.ID
	}
	if member, ok := s.Members[copied.MemberID]; ok {
		copied.MemberName = member.Name
	}
	if week, ok := s.Weeks[copied.WeekID]; ok {
		copied.WeekName = week.Name
		copied.WeekClosedAt = week.ClosedAt
	}
	s.Statements[key] = &copied
	return nil
}

func (s *Store) ListStatementsByWeek(weekID string) ([]*domain.WeekStatement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	statements := make([]*domain.WeekStatement, 0)
	for _, statement := range s.Statements {
		if statement.WeekID == weekID {
			copied := *statement
			statements = append(statements, &copied)
		}
	}
	sort.Slice(statements, func(i, j int) bool {
		return statements[i].WeeklyScoreUnits > statements[j].WeeklyScoreUnits
	})
	return statements, nil
}

func (s *Store) ListClosedWeekStatements() ([]*domain.WeekStatement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	statements := make([]*domain.WeekStatement, 0)
	for _, statement := range s.Statements {
		week, ok := s.Weeks[statement.WeekID]
		if !ok || week.Status != domain.WeekClosed {
			continue
		}
		copied := *statement
		copied.WeekName = week.Name
		copied.WeekClosedAt = week.ClosedAt
		statements = append(statements, &copied)
	}
	sort.Slice(statements, func(i, j int) bool {
		return statements[i].WeekID < statements[j].WeekID
	})
	return statements, nil
}
