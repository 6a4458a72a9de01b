package usecase

import (
	"strings"

	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/google/uuid"
)

type MemberUsecase interface {
	CreateMember(name string) (*domain.Member, error)
	RenameMember(memberID, name string) error
	GetMember(memberID string) (*domain.Member, error)
	ListMembers() ([]*domain.Member, error)
}

type DefaultMemberUsecase struct {
	MemberRepo domain.MemberRepository
}

func NewDefaultMemberUsecase(memberRepo domain.MemberRepository) *DefaultMemberUsecase {
	return &DefaultMemberUsecase{MemberRepo: memberRepo}
}

func (uc *DefaultMemberUsecase) CreateMember(name string) (*domain.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidState
	}
	member := &domain.Member{ID: uuid.New().String(), Name: name}
	if err := uc.MemberRepo.CreateMember(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (uc *DefaultMemberUsecase) RenameMember(memberID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidState
	}
	return uc.MemberRepo.UpdateMemberName(memberID, name)
}

func (uc *DefaultMemberUsecase) GetMember(memberID string) (*domain.Member, error) {
	return uc.MemberRepo.GetMemberByID(memberID)
}

func (uc *DefaultMemberUsecase) ListMembers() ([]*domain.Member, error) {
	return uc.MemberRepo.ListMembers()
}
