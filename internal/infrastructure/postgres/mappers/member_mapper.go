package mappers

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainMember(model *models.MemberModel) *domain.Member {
	return &domain.Member{
		ID:              model.ID,
		Name:            model.Name,
		FreePlayBalance: model.FreePlayBalance,
		CreatedAt:       model.CreatedAt,
	}
}

func ToGORMMember(member *domain.Member) *models.MemberModel {
	return &models.MemberModel{
		ID:              member.ID,
		Name:            member.Name,
		FreePlayBalance: member.FreePlayBalance,
		CreatedAt:       member.CreatedAt,
	}
}
