package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/taskboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/taskboard-api/internal/domain"
)

const (
	tasksTable = "tasks t"
)

type TaskRepository interface {
	CreateTask(task *domain.Task) (*domain.Task, error)
	UpdateTask(task *domain.Task) error
	UpdateStatus(taskID int, status domain.TaskStatus) error
	MarkPublished(taskID int, publishedAt time.Time) error
	DeleteTask(taskID int) error
	GetTaskByID(taskID int) (*domain.Task, error)
	ListByAssignee(userID int, onlyActive bool) ([]*domain.Task, error)
	ListByDeadlineRange(startDate, endDate time.Time, userID *int) ([]*domain.Task, error)
	ListAll() ([]*domain.Task, error)
}

type taskRepository struct {
	conn *postgres.Connection
}

func NewTaskRepository(conn *postgres.Connection) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

const taskColumns = "t.id, t.title, t.content_state, t.importance, t.status, t.creator_id, t.leader_id, t.assigned_user_ids, t.deadline, t.notify_on_completion, t.recurring_template_id, t.published_at, t.created_at, t.updated_at"

func (r *taskRepository) CreateTask(task *domain.Task) (*domain.Task, error) {
	queryBuilder := squirrel.
		Insert("tasks").
		Columns("title", "content_state", "importance", "status", "creator_id", "leader_id", "assigned_user_ids", "deadline", "notify_on_completion", "recurring_template_id").
		Values(
			task.Title,
			task.ContentState,
			task.Importance,
			task.Status,
			task.CreatorID,
			task.LeaderID,
			pq.Array(toInt64(task.AssignedUserIDs)),
			task.Deadline,
			task.NotifyOnCompletion,
			task.RecurringTemplateID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) UpdateTask(task *domain.Task) error {
	query, args, err := squirrel.
		Update("tasks").
		Set("title", task.Title).
		Set("content_state", task.ContentState).
		Set("importance", task.Importance).
		Set("leader_id", task.LeaderID).
		Set("assigned_user_ids", pq.Array(toInt64(task.AssignedUserIDs))).
		Set("deadline", task.Deadline).
		Set("notify_on_completion", task.NotifyOnCompletion).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": task.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *taskRepository) UpdateStatus(taskID int, status domain.TaskStatus) error {
	query, args, err := squirrel.
		Update("tasks").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": taskID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *taskRepository) MarkPublished(taskID int, publishedAt time.Time) error {
	query, args, err := squirrel.
		Update("tasks").
		Set("status", domain.StatusInProgress).
		Set("published_at", publishedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": taskID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *taskRepository) DeleteTask(taskID int) error {
	query, args, err := squirrel.
		Delete("tasks").
		Where(squirrel.Eq{"id": taskID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *taskRepository) GetTaskByID(taskID int) (*domain.Task, error) {
	query, args, err := squirrel.
		Select(taskColumns).
		From(tasksTable).
		Where(squirrel.Eq{"t.id": taskID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	task, err := r.scanTask(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tarefa: %w", err)
	}

	return task, nil
}

func (r *taskRepository) ListByAssignee(userID int, onlyActive bool) ([]*domain.Task, error) {
	queryBuilder := squirrel.
		Select(taskColumns).
		From(tasksTable).
		Where(squirrel.Expr("? = ANY(t.assigned_user_ids)", userID)).
		OrderBy("t.deadline ASC NULLS LAST")

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"t.status": domain.StatusInProgress})
	}

	return r.queryTasks(queryBuilder)
}

func (r *taskRepository) ListByDeadlineRange(startDate, endDate time.Time, userID *int) ([]*domain.Task, error) {
	queryBuilder := squirrel.
		Select(taskColumns).
		From(tasksTable).
		Where(squirrel.GtOrEq{"t.deadline": startDate}).
		Where(squirrel.LtOrEq{"t.deadline": endDate}).
		Where(squirrel.NotEq{"t.status": domain.StatusDraft}).
		OrderBy("t.deadline ASC")

	if userID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Expr("? = ANY(t.assigned_user_ids)", *userID))
	}

	return r.queryTasks(queryBuilder)
}

func (r *taskRepository) ListAll() ([]*domain.Task, error) {
	queryBuilder := squirrel.
		Select(taskColumns).
		From(tasksTable).
		OrderBy("t.created_at DESC")

	return r.queryTasks(queryBuilder)
}

func (r *taskRepository) queryTasks(queryBuilder squirrel.SelectBuilder) ([]*domain.Task, error) {
	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := r.scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tarefa: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tasks, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *taskRepository) scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var assignees pq.Int64Array

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.ContentState,
		&task.Importance,
		&task.Status,
		&task.CreatorID,
		&task.LeaderID,
		&assignees,
		&task.Deadline,
		&task.NotifyOnCompletion,
		&task.RecurringTemplateID,
		&task.PublishedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.AssignedUserIDs = fromInt64(assignees)
	return &task, nil
}

func toInt64(ids []int) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

func fromInt64(ids []int64) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
