package domain

import "time"

// Status possíveis de um quadro de tarefa
type TaskStatus string

const (
	StatusDraft      TaskStatus = "draft"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// IsValid verifica se o status informado é um dos status conhecidos
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Importância da tarefa (define a cor no calendário do frontend)
type TaskImportance string

const (
	ImportanceLow    TaskImportance = "low"
	ImportanceNormal TaskImportance = "normal"
	ImportanceHigh   TaskImportance = "high"
)

func (i TaskImportance) IsValid() bool {
	switch i {
	case ImportanceLow, ImportanceNormal, ImportanceHigh:
		return true
	}
	return false
}

type Task struct {
	ID                  int            `json:"id"`
	Title               string         `json:"title"`
	ContentState        string         `json:"content_state"`
	Importance          TaskImportance `json:"importance"`
	Status              TaskStatus     `json:"status"`
	CreatorID           int            `json:"creator_id"`
	LeaderID            int            `json:"leader_id"`
	AssignedUserIDs     []int          `json:"assigned_user_ids"`
	Deadline            *time.Time     `json:"deadline"`
	NotifyOnCompletion  bool           `json:"notify_on_completion"`
	RecurringTemplateID *int           `json:"recurring_template_id,omitempty"`
	PublishedAt         *time.Time     `json:"published_at,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// UpdateTaskRequest representa uma atualização parcial de rascunho
type UpdateTaskRequest struct {
	ID                 int             `json:"id"`
	Title              *string         `json:"title"`
	ContentState       *string         `json:"content_state"`
	Importance         *TaskImportance `json:"importance"`
	LeaderID           *int            `json:"leader_id"`
	AssignedUserIDs    []int           `json:"assigned_user_ids"`
	Deadline           *time.Time      `json:"deadline"`
	NotifyOnCompletion *bool           `json:"notify_on_completion"`
}

// TaskFilters define os filtros das listagens de tarefas
type TaskFilters struct {
	UserID    *int
	Status    *TaskStatus
	StartDate *time.Time
	EndDate   *time.Time
}
