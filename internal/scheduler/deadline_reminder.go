package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/taskboard-api/infrastructure/repository"
	"github.com/vfg2006/taskboard-api/internal/config"
	"github.com/vfg2006/taskboard-api/internal/domain"
	"github.com/vfg2006/taskboard-api/internal/usecases/notifying"
)

// DeadlineReminderConfig representa a configuração do agendador de lembretes de prazo
type DeadlineReminderConfig struct {
	CronSchedule    string
	ReminderEnabled bool
}

// DeadlineReminderService gerencia o envio diário de lembretes para tarefas
// cujo prazo vence no dia corrente
type DeadlineReminderService struct {
	scheduler          *gocron.Scheduler
	config             DeadlineReminderConfig
	appConfig          *config.Config
	taskRepo           repository.TaskRepository
	notifier           notifying.NotificationService
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewDeadlineReminderService cria uma nova instância do serviço de lembretes de prazo
func NewDeadlineReminderService(
	taskRepo repository.TaskRepository,
	notifier notifying.NotificationService,
	appConfig *config.Config,
) *DeadlineReminderService {
	reminderConfig := DeadlineReminderConfig{
		CronSchedule:    appConfig.DeadlineReminder.CronSchedule,
		ReminderEnabled: appConfig.DeadlineReminder.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    reminderConfig.CronSchedule,
		"reminder_enabled": reminderConfig.ReminderEnabled,
	}).Info("Configuração do agendador de lembretes de prazo carregada")

	return &DeadlineReminderService{
		scheduler:  scheduler,
		config:     reminderConfig,
		appConfig:  appConfig,
		taskRepo:   taskRepo,
		notifier:   notifier,
		runRunning: false,
	}
}

// Start inicia o agendador
func (s *DeadlineReminderService) Start(ctx context.Context) error {
	if !s.config.ReminderEnabled {
		logrus.Info("Lembretes de prazo desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de lembretes de prazo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.remindDueTasks(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar lembretes de prazo: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de lembretes de prazo")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun dispara a rodada de lembretes fora do horário agendado.
// Usado pelo endpoint manual de cron.
func (s *DeadlineReminderService) TriggerManualRun() {
	go s.remindDueTasks(context.Background())
}

// GetStatus devolve o estado da última rodada de lembretes
func (s *DeadlineReminderService) GetStatus() map[string]interface{} {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]interface{}{
		"enabled":               s.config.ReminderEnabled,
		"cron_schedule":         s.config.CronSchedule,
		"running":               s.runRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}

// remindDueTasks busca as tarefas ativas com prazo no dia corrente e envia
// um push para cada responsável
func (s *DeadlineReminderService) remindDueTasks(ctx context.Context) {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Rodada de lembretes de prazo já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	endOfDay := startOfDay.AddDate(0, 0, 1).Add(-time.Second)

	logrus.WithField("date", startOfDay.Format(time.DateOnly)).Info("Iniciando rodada de lembretes de prazo")

	tasks, err := s.taskRepo.ListByDeadlineRange(startOfDay, endOfDay, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tarefas com prazo no dia")
		return
	}

	notified := 0
	for _, task := range tasks {
		if task.Status == domain.StatusCompleted || len(task.AssignedUserIDs) == 0 {
			continue
		}

		message := &domain.PushMessage{
			Title: "Prazo vence hoje",
			Body:  fmt.Sprintf("A tarefa %q vence hoje. Não esqueça de concluí-la.", task.Title),
			Data: map[string]string{
				"task_id": fmt.Sprintf("%d", task.ID),
				"type":    "deadline_reminder",
			},
		}

		if err := s.notifier.NotifyUsers(ctx, task.AssignedUserIDs, message); err != nil {
			logrus.WithError(err).WithField("task_id", task.ID).Warn("Erro ao enviar lembrete de prazo")
			continue
		}
		notified++
	}

	logrus.WithFields(logrus.Fields{
		"tasks_due": len(tasks),
		"notified":  notified,
		"duration":  time.Since(s.lastRunStartedAt).String(),
	}).Info("Rodada de lembretes de prazo concluída")
}
