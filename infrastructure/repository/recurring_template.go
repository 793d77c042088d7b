package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/taskboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/taskboard-api/internal/domain"
)

const (
	recurringTemplatesTable = "recurring_templates rt"
)

type RecurringTemplateRepository interface {
	CreateTemplate(template *domain.RecurringTemplate) (*domain.RecurringTemplate, error)
	GetTemplateByID(templateID int) (*domain.RecurringTemplate, error)
}

type recurringTemplateRepository struct {
	conn *postgres.Connection
}

func NewRecurringTemplateRepository(conn *postgres.Connection) RecurringTemplateRepository {
	return &recurringTemplateRepository{
		conn: conn,
	}
}

func (r *recurringTemplateRepository) CreateTemplate(template *domain.RecurringTemplate) (*domain.RecurringTemplate, error) {
	query, args, err := squirrel.
		Insert("recurring_templates").
		Columns("title", "content_state", "importance", "creator_id", "leader_id", "assigned_user_ids", "notify_on_completion", "recurrence_type", "start_date", "end_date").
		Values(
			template.Title,
			template.ContentState,
			template.Importance,
			template.CreatorID,
			template.LeaderID,
			pq.Array(toInt64(template.AssignedUserIDs)),
			template.NotifyOnCompletion,
			template.RecurrenceType,
			template.StartDate,
			template.EndDate,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&template.ID, &template.CreatedAt)
	if err != nil {
		return nil, err
	}

	return template, nil
}

func (r *recurringTemplateRepository) GetTemplateByID(templateID int) (*domain.RecurringTemplate, error) {
	query, args, err := squirrel.
		Select("rt.id, rt.title, rt.content_state, rt.importance, rt.creator_id, rt.leader_id, rt.assigned_user_ids, rt.notify_on_completion, rt.recurrence_type, rt.start_date, rt.end_date, rt.created_at").
		From(recurringTemplatesTable).
		Where(squirrel.Eq{"rt.id": templateID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var template domain.RecurringTemplate
	var assignees pq.Int64Array

	err = r.conn.QueryRow(query, args...).Scan(
		&template.ID,
		&template.Title,
		&template.ContentState,
		&template.Importance,
		&template.CreatorID,
		&template.LeaderID,
		&assignees,
		&template.NotifyOnCompletion,
		&template.RecurrenceType,
		&template.StartDate,
		&template.EndDate,
		&template.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear modelo: %w", err)
	}

	template.AssignedUserIDs = fromInt64(assignees)
	return &template, nil
}
