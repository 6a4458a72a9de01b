package mappers

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainWeek(model *models.WeekModel) *domain.Week {
	return &domain.Week{
		ID:        model.ID,
		Name:      model.Name,
		Status:    model.Status,
		StartAt:   model.StartAt,
		EndAt:     model.EndAt,
		ClosedAt:  model.ClosedAt,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMWeek(week *domain.Week) *models.WeekModel {
	return &models.WeekModel{
		ID:        week.ID,
		Name:      week.Name,
		Status:    week.Status,
		StartAt:   week.StartAt,
		EndAt:     week.EndAt,
		ClosedAt:  week.ClosedAt,
		CreatedAt: week.CreatedAt,
	}
}

func ToDomainWeekMember(model *models.WeekMemberModel) *domain.WeekMember {
	return &domain.WeekMember{
		WeekID:           model.WeekID,
		MemberID:         model.MemberID,
		MemberName:       model.Member.Name,
		CreditLimitUnits: model.CreditLimitUnits,
	}
}

func ToGORMWeekMember(weekMember *domain.WeekMember) *models.WeekMemberModel {
	return &models.WeekMemberModel{
		WeekID:           weekMember.WeekID,
		MemberID:         weekMember.MemberID,
		CreditLimitUnits: weekMember.CreditLimitUnits,
	}
}
