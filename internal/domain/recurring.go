package domain

import "time"

// Cadência de repetição de um modelo de tarefa cíclica
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

func (r RecurrenceType) IsValid() bool {
	switch r {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// RecurringTemplate é o modelo reutilizável a partir do qual as instâncias
// concretas de tarefa são expandidas. O modelo é gravado uma única vez na
// publicação; não existe operação de edição com re-expansão.
type RecurringTemplate struct {
	ID                 int            `json:"id"`
	Title              string         `json:"title"`
	ContentState       string         `json:"content_state"`
	Importance         TaskImportance `json:"importance"`
	CreatorID          int            `json:"creator_id"`
	LeaderID           int            `json:"leader_id"`
	AssignedUserIDs    []int          `json:"assigned_user_ids"`
	NotifyOnCompletion bool           `json:"notify_on_completion"`
	RecurrenceType     RecurrenceType `json:"recurrence_type"`
	StartDate          time.Time      `json:"start_date"`
	EndDate            time.Time      `json:"end_date"`
	CreatedAt          time.Time      `json:"created_at"`
}

// BatchResult resume a materialização de um lote de tarefas cíclicas.
// Falhas individuais não abortam o lote; apenas são contabilizadas.
type BatchResult struct {
	BatchID    string `json:"batch_id"`
	TemplateID int    `json:"template_id"`
	Created    int    `json:"created"`
	Failed     int    `json:"failed"`
	TaskIDs    []int  `json:"task_ids"`
}
