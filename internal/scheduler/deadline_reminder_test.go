package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/taskboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/taskboard-api/internal/domain"
	notifymocks "github.com/vfg2006/taskboard-api/internal/usecases/notifying/mocks"
	"go.uber.org/mock/gomock"
)

func deadlineAt(hour int) *time.Time {
	now := time.Now()
	d := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.Local)
	return &d
}

// TestDeadlineReminderService_RemindDueTasks testa os cenários da rodada de lembretes
func TestDeadlineReminderService_RemindDueTasks(t *testing.T) {
	tests := []struct {
		name  string
		tasks []*domain.Task
		setup func(notifier *notifymocks.MockNotificationService)
	}{
		{
			name: "Notifica responsáveis de tarefas ativas com prazo no dia",
			tasks: []*domain.Task{
				{
					ID:              10,
					Title:           "Fechar o caixa",
					Status:          domain.StatusInProgress,
					AssignedUserIDs: []int{2, 3},
					Deadline:        deadlineAt(18),
				},
			},
			setup: func(notifier *notifymocks.MockNotificationService) {
				notifier.EXPECT().
					NotifyUsers(gomock.Any(), []int{2, 3}, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ []int, message *domain.PushMessage) error {
						assert.Equal(t, "Prazo vence hoje", message.Title)
						assert.Contains(t, message.Body, "Fechar o caixa")
						assert.Equal(t, "10", message.Data["task_id"])
						assert.Equal(t, "deadline_reminder", message.Data["type"])
						return nil
					})
			},
		},
		{
			name: "Ignora tarefas concluídas e sem responsáveis",
			tasks: []*domain.Task{
				{
					ID:              11,
					Title:           "Conferir estoque",
					Status:          domain.StatusCompleted,
					AssignedUserIDs: []int{2},
					Deadline:        deadlineAt(12),
				},
				{
					ID:       12,
					Title:    "Limpar vitrine",
					Status:   domain.StatusInProgress,
					Deadline: deadlineAt(12),
				},
			},
			setup: func(notifier *notifymocks.MockNotificationService) {},
		},
		{
			name: "Continua a rodada quando o envio de um lembrete falha",
			tasks: []*domain.Task{
				{
					ID:              13,
					Title:           "Abrir a loja",
					Status:          domain.StatusInProgress,
					AssignedUserIDs: []int{2},
					Deadline:        deadlineAt(9),
				},
				{
					ID:              14,
					Title:           "Fechar a loja",
					Status:          domain.StatusInProgress,
					AssignedUserIDs: []int{3},
					Deadline:        deadlineAt(19),
				},
			},
			setup: func(notifier *notifymocks.MockNotificationService) {
				notifier.EXPECT().
					NotifyUsers(gomock.Any(), []int{2}, gomock.Any()).
					Return(errors.New("token inválido"))
				notifier.EXPECT().
					NotifyUsers(gomock.Any(), []int{3}, gomock.Any()).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			taskRepo := mocks.NewMockTaskRepository(ctrl)
			notifier := notifymocks.NewMockNotificationService(ctrl)

			taskRepo.EXPECT().
				ListByDeadlineRange(gomock.Any(), gomock.Any(), gomock.Nil()).
				DoAndReturn(func(start, end time.Time, _ *int) ([]*domain.Task, error) {
					assert.Equal(t, 0, start.Hour())
					assert.True(t, end.After(start))
					return tt.tasks, nil
				})

			tt.setup(notifier)

			service := &DeadlineReminderService{
				config: DeadlineReminderConfig{
					CronSchedule:    "0 8 * * *",
					ReminderEnabled: true,
				},
				taskRepo: taskRepo,
				notifier: notifier,
			}

			service.remindDueTasks(context.Background())

			status := service.GetStatus()
			assert.False(t, status["running"].(bool))
			assert.False(t, status["last_run_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestDeadlineReminderService_SkipsWhenListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	taskRepo := mocks.NewMockTaskRepository(ctrl)
	notifier := notifymocks.NewMockNotificationService(ctrl)

	taskRepo.EXPECT().
		ListByDeadlineRange(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, fmt.Errorf("conexão recusada"))

	service := &DeadlineReminderService{
		config:   DeadlineReminderConfig{ReminderEnabled: true},
		taskRepo: taskRepo,
		notifier: notifier,
	}

	service.remindDueTasks(context.Background())

	status := service.GetStatus()
	assert.False(t, status["running"].(bool))
}
