package tasking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/taskboard-api/infrastructure/repository"
	"github.com/vfg2006/taskboard-api/internal/config"
	"github.com/vfg2006/taskboard-api/internal/domain"
	"github.com/vfg2006/taskboard-api/pkg/utils"
)

// Notifier envia notificações push aos usuários envolvidos em uma tarefa.
// O envio é sempre melhor-esforço: falhas são registradas, nunca propagadas.
type Notifier interface {
	NotifyUsers(ctx context.Context, userIDs []int, message *domain.PushMessage) error
}

type TaskService interface {
	CreateDraft(task *domain.Task) (*domain.Task, error)
	UpdateDraft(req *domain.UpdateTaskRequest) (*domain.Task, error)
	DeleteDraft(taskID int) error
	GetTask(taskID int) (*domain.Task, error)
	PublishTask(ctx context.Context, taskID int) (*domain.Task, error)
	ChangeStatus(ctx context.Context, taskID int, status domain.TaskStatus) (*domain.Task, error)
	ListCalendar(userID *int, startDate, endDate time.Time) ([]*domain.Task, error)
	ListActive(userID int) ([]*domain.Task, error)
	ListAll() ([]*domain.Task, error)
	PublishRecurring(ctx context.Context, template *domain.RecurringTemplate) (*domain.BatchResult, error)
}

type Service struct {
	taskRepo     repository.TaskRepository
	templateRepo repository.RecurringTemplateRepository
	notifier     Notifier
	cfg          *config.Config
}

func NewService(
	taskRepo repository.TaskRepository,
	templateRepo repository.RecurringTemplateRepository,
	notifier Notifier,
	cfg *config.Config,
) TaskService {
	return &Service{
		taskRepo:     taskRepo,
		templateRepo: templateRepo,
		notifier:     notifier,
		cfg:          cfg,
	}
}

func (s *Service) CreateDraft(task *domain.Task) (*domain.Task, error) {
	if task.Title == "" {
		return nil, ErrMissingRequiredData
	}

	if task.Importance == "" {
		task.Importance = domain.ImportanceNormal
	}

	if !task.Importance.IsValid() {
		return nil, ErrInvalidStatus
	}

	// Sem líder explícito, o criador assume a liderança da tarefa
	if task.LeaderID == 0 {
		task.LeaderID = task.CreatorID
	}

	task.Status = domain.StatusDraft

	return s.taskRepo.CreateTask(task)
}

func (s *Service) UpdateDraft(req *domain.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.taskRepo.GetTaskByID(req.ID)
	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, ErrTaskNotFound
	}

	if req.Title != nil {
		task.Title = *req.Title
	}

	if req.ContentState != nil {
		task.ContentState = *req.ContentState
	}

	if req.Importance != nil {
		if !req.Importance.IsValid() {
			return nil, ErrInvalidStatus
		}
		task.Importance = *req.Importance
	}

	if req.LeaderID != nil {
		task.LeaderID = *req.LeaderID
	}

	if req.AssignedUserIDs != nil {
		task.AssignedUserIDs = req.AssignedUserIDs
	}

	if req.Deadline != nil {
		task.Deadline = req.Deadline
	}

	if req.NotifyOnCompletion != nil {
		task.NotifyOnCompletion = *req.NotifyOnCompletion
	}

	if err := s.taskRepo.UpdateTask(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *Service) DeleteDraft(taskID int) error {
	task, err := s.taskRepo.GetTaskByID(taskID)
	if err != nil {
		return err
	}

	if task == nil {
		return ErrTaskNotFound
	}

	if task.Status != domain.StatusDraft {
		return ErrTaskNotDraft
	}

	return s.taskRepo.DeleteTask(taskID)
}

func (s *Service) GetTask(taskID int) (*domain.Task, error) {
	task, err := s.taskRepo.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

// PublishTask ativa um rascunho: status passa a "em andamento" e os usuários
// atribuídos recebem uma notificação push.
func (s *Service) PublishTask(ctx context.Context, taskID int) (*domain.Task, error) {
	task, err := s.taskRepo.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, ErrTaskNotFound
	}

	if task.Title == "" || len(task.AssignedUserIDs) == 0 {
		return nil, ErrMissingRequiredData
	}

	now := time.Now()
	if err := s.taskRepo.MarkPublished(taskID, now); err != nil {
		return nil, err
	}

	task.Status = domain.StatusInProgress
	task.PublishedAt = &now

	s.notifyAssignees(ctx, task)

	return task, nil
}

func (s *Service) ChangeStatus(ctx context.Context, taskID int, status domain.TaskStatus) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	task, err := s.taskRepo.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, ErrTaskNotFound
	}

	if err := s.taskRepo.UpdateStatus(taskID, status); err != nil {
		return nil, err
	}

	previousStatus := task.Status
	task.Status = status

	// Notificar o criador quando a tarefa for concluída, se solicitado
	if status == domain.StatusCompleted && previousStatus != domain.StatusCompleted && task.NotifyOnCompletion {
		message := &domain.PushMessage{
			Title: "Tarefa concluída",
			Body:  fmt.Sprintf("A tarefa \"%s\" foi marcada como concluída.", task.Title),
			Data:  map[string]string{"task_id": fmt.Sprintf("%d", task.ID)},
		}

		if err := s.notifier.NotifyUsers(ctx, []int{task.CreatorID}, message); err != nil {
			logrus.WithError(err).WithField("task_id", task.ID).Warn("Erro ao notificar conclusão de tarefa")
		}
	}

	return task, nil
}

func (s *Service) ListCalendar(userID *int, startDate, endDate time.Time) ([]*domain.Task, error) {
	return s.taskRepo.ListByDeadlineRange(startDate, endDate, userID)
}

func (s *Service) ListActive(userID int) ([]*domain.Task, error) {
	return s.taskRepo.ListByAssignee(userID, true)
}

func (s *Service) ListAll() ([]*domain.Task, error) {
	return s.taskRepo.ListAll()
}

// PublishRecurring grava o modelo cíclico e materializa o lote completo de
// instâncias. O modelo precisa estar persistido (com ID atribuído) antes de
// qualquer criação de instância; a partir daí as criações são independentes
// entre si e falhas individuais não abortam o lote.
func (s *Service) PublishRecurring(ctx context.Context, template *domain.RecurringTemplate) (*domain.BatchResult, error) {
	if template.Title == "" || len(template.AssignedUserIDs) == 0 {
		return nil, ErrMissingRequiredData
	}

	if !template.RecurrenceType.IsValid() {
		return nil, ErrInvalidStatus
	}

	if template.StartDate.After(template.EndDate) {
		return nil, ErrInvalidDateWindow
	}

	if template.Importance == "" {
		template.Importance = domain.ImportanceNormal
	}

	if template.LeaderID == 0 {
		template.LeaderID = template.CreatorID
	}

	template, err := s.templateRepo.CreateTemplate(template)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar modelo de tarefa cíclica")
		return nil, ErrTemplateCreation
	}

	instances := Expand(template, s.cfg.RecurringBatch.MaxInstances)

	batchID, err := utils.GenerateID()
	if err != nil {
		batchID = fmt.Sprintf("batch-%d", template.ID)
	}

	result := s.materialize(ctx, batchID, template, instances)

	logrus.WithFields(logrus.Fields{
		"batch_id":    result.BatchID,
		"template_id": result.TemplateID,
		"created":     result.Created,
		"failed":      result.Failed,
	}).Info("Materialização de tarefas cíclicas finalizada")

	s.notifyAssignees(ctx, &domain.Task{
		Title:           template.Title,
		AssignedUserIDs: template.AssignedUserIDs,
	})

	return result, nil
}

// materialize cria e publica as instâncias do lote com concorrência limitada.
// Cada criação é uma requisição independente: a falha de uma instância é
// contabilizada e registrada, sem cancelar as demais.
func (s *Service) materialize(ctx context.Context, batchID string, template *domain.RecurringTemplate, instances []*domain.Task) *domain.BatchResult {
	result := &domain.BatchResult{
		BatchID:    batchID,
		TemplateID: template.ID,
		TaskIDs:    make([]int, 0, len(instances)),
	}

	maxConcurrent := s.cfg.RecurringBatch.MaxConcurrentCreates
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		semaphore = make(chan struct{}, maxConcurrent)
	)

	for _, instance := range instances {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(instance *domain.Task) {
			defer wg.Done()
			defer func() { <-semaphore }()

			created, err := s.taskRepo.CreateTask(instance)
			if err == nil {
				err = s.taskRepo.MarkPublished(created.ID, time.Now())
			}

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				result.Failed++
				logrus.WithError(err).WithFields(logrus.Fields{
					"batch_id":    batchID,
					"template_id": template.ID,
					"title":       instance.Title,
				}).Error("Erro ao criar instância de tarefa cíclica")
				return
			}

			result.Created++
			result.TaskIDs = append(result.TaskIDs, created.ID)
		}(instance)
	}

	wg.Wait()

	return result
}

func (s *Service) notifyAssignees(ctx context.Context, task *domain.Task) {
	if len(task.AssignedUserIDs) == 0 {
		return
	}

	message := &domain.PushMessage{
		Title: "Nova tarefa atribuída",
		Body:  fmt.Sprintf("Você recebeu a tarefa \"%s\".", task.Title),
	}

	if task.ID != 0 {
		message.Data = map[string]string{"task_id": fmt.Sprintf("%d", task.ID)}
	}

	if err := s.notifier.NotifyUsers(ctx, task.AssignedUserIDs, message); err != nil {
		logrus.WithError(err).Warn("Erro ao notificar usuários atribuídos")
	}
}
