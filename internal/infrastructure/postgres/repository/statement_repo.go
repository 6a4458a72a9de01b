package repository

import (
	"github.com/crewpool/pool-ledger-service/internal/domain"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultStatementRepository struct {
	DB *gorm.DB
}

func NewDefaultStatementRepository(db *gorm.DB) *DefaultStatementRepository {
	return &DefaultStatementRepository{DB: db}
}

func (r *DefaultStatementRepository) UpsertStatement(statement *domain.WeekStatement) error {
	model := mappers.ToGORMStatement(statement)
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "week_id"}, {Name: "member_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"cash_profit_units",
			"free_play_earned_units",
			"weekly_score_units",
			"owes_house_units",
			"house_owes_units",
			"house_owes_free_play_units",
			"updated_at",
		}),
	}).Create(model).Error
}

func (r *DefaultStatementRepository) ListStatementsByWeek(weekID string) ([]*domain.WeekStatement, error) {
	var statementModels []models.WeekStatementModel
	err := r.DB.Preload("Member").Preload("Week").
		Where("week_id = ?", weekID).
		Order("weekly_score_units DESC").
		Find(&statementModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainStatements(statementModels), nil
}

func (r *DefaultStatementRepository) ListClosedWeekStatements() ([]*domain.WeekStatement, error) {
	var statementModels []models.WeekStatementModel
	err := r.DB.Preload("Member").Preload("Week").
		Joins("JOIN week_models ON week_models.id = week_statement_models.week_id").
		Where("week_models.status = ?", domain.WeekClosed).
		Order("week_models.closed_at DESC").
		Find(&statementModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainStatements(statementModels), nil
}

func toDomainStatements(statementModels []models.WeekStatementModel) []*domain.WeekStatement {
	statements := make([]*domain.WeekStatement, len(statementModels))
	for i := range statementModels {
		statements[i] = mappers.ToDomainStatement(&statementModels[i])
	}
	return statements
}
