package tasking

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/taskboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/taskboard-api/internal/config"
	"github.com/vfg2006/taskboard-api/internal/domain"
	taskingmocks "github.com/vfg2006/taskboard-api/internal/usecases/tasking/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockTaskRepository, *mocks.MockRecurringTemplateRepository, *taskingmocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	taskRepo := mocks.NewMockTaskRepository(ctrl)
	templateRepo := mocks.NewMockRecurringTemplateRepository(ctrl)
	notifier := taskingmocks.NewMockNotifier(ctrl)

	cfg := &config.Config{
		RecurringBatch: config.RecurringBatch{
			MaxConcurrentCreates: 2,
			MaxInstances:         1000,
		},
	}

	service := &Service{
		taskRepo:     taskRepo,
		templateRepo: templateRepo,
		notifier:     notifier,
		cfg:          cfg,
	}

	return service, taskRepo, templateRepo, notifier
}

func TestPublishRecurring_FullBatch(t *testing.T) {
	service, taskRepo, templateRepo, notifier := newTestService(t)

	template := &domain.RecurringTemplate{
		Title:           "Abrir a loja",
		CreatorID:       1,
		AssignedUserIDs: []int{2, 3},
		RecurrenceType:  domain.RecurrenceDaily,
		StartDate:       date(2024, time.May, 1),
		EndDate:         date(2024, time.May, 3),
	}

	templateRepo.EXPECT().
		CreateTemplate(gomock.Any()).
		DoAndReturn(func(tpl *domain.RecurringTemplate) (*domain.RecurringTemplate, error) {
			tpl.ID = 7
			return tpl, nil
		})

	var nextID int32
	taskRepo.EXPECT().
		CreateTask(gomock.Any()).
		Times(3).
		DoAndReturn(func(task *domain.Task) (*domain.Task, error) {
			created := *task
			created.ID = int(atomic.AddInt32(&nextID, 1))
			return &created, nil
		})

	taskRepo.EXPECT().
		MarkPublished(gomock.Any(), gomock.Any()).
		Times(3).
		Return(nil)

	notifier.EXPECT().
		NotifyUsers(gomock.Any(), []int{2, 3}, gomock.Any()).
		Return(nil)

	result, err := service.PublishRecurring(context.Background(), template)

	require.NoError(t, err)
	assert.Equal(t, 7, result.TemplateID)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, result.TaskIDs, 3)
	assert.NotEmpty(t, result.BatchID)
}

// Falha na criação de uma instância não aborta o lote: as demais instâncias
// são criadas e a falha é apenas contabilizada
func TestPublishRecurring_PartialBatch(t *testing.T) {
	service, taskRepo, templateRepo, notifier := newTestService(t)

	template := &domain.RecurringTemplate{
		Title:           "Fechar o caixa",
		CreatorID:       1,
		AssignedUserIDs: []int{2},
		RecurrenceType:  domain.RecurrenceDaily,
		StartDate:       date(2024, time.May, 1),
		EndDate:         date(2024, time.May, 3),
	}

	templateRepo.EXPECT().
		CreateTemplate(gomock.Any()).
		DoAndReturn(func(tpl *domain.RecurringTemplate) (*domain.RecurringTemplate, error) {
			tpl.ID = 8
			return tpl, nil
		})

	var nextID int32
	taskRepo.EXPECT().
		CreateTask(gomock.Any()).
		Times(3).
		DoAndReturn(func(task *domain.Task) (*domain.Task, error) {
			if strings.HasSuffix(task.Title, "#2") {
				return nil, errors.New("conexão perdida")
			}
			created := *task
			created.ID = int(atomic.AddInt32(&nextID, 1))
			return &created, nil
		})

	taskRepo.EXPECT().
		MarkPublished(gomock.Any(), gomock.Any()).
		Times(2).
		Return(nil)

	notifier.EXPECT().
		NotifyUsers(gomock.Any(), []int{2}, gomock.Any()).
		Return(nil)

	result, err := service.PublishRecurring(context.Background(), template)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.TaskIDs, 2)
}

// Falha ao gravar o modelo é um erro duro: nenhuma instância pode ser criada
func TestPublishRecurring_TemplateFailure(t *testing.T) {
	service, _, templateRepo, _ := newTestService(t)

	template := &domain.RecurringTemplate{
		Title:           "Fechar o caixa",
		CreatorID:       1,
		AssignedUserIDs: []int{2},
		RecurrenceType:  domain.RecurrenceDaily,
		StartDate:       date(2024, time.May, 1),
		EndDate:         date(2024, time.May, 3),
	}

	templateRepo.EXPECT().
		CreateTemplate(gomock.Any()).
		Return(nil, errors.New("erro de banco"))

	result, err := service.PublishRecurring(context.Background(), template)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTemplateCreation)
}

func TestPublishRecurring_InvalidWindow(t *testing.T) {
	service, _, _, _ := newTestService(t)

	template := &domain.RecurringTemplate{
		Title:           "Fechar o caixa",
		CreatorID:       1,
		AssignedUserIDs: []int{2},
		RecurrenceType:  domain.RecurrenceDaily,
		StartDate:       date(2024, time.May, 10),
		EndDate:         date(2024, time.May, 1),
	}

	result, err := service.PublishRecurring(context.Background(), template)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidDateWindow)
}

func TestPublishRecurring_MissingAssignees(t *testing.T) {
	service, _, _, _ := newTestService(t)

	template := &domain.RecurringTemplate{
		Title:          "Fechar o caixa",
		CreatorID:      1,
		RecurrenceType: domain.RecurrenceDaily,
		StartDate:      date(2024, time.May, 1),
		EndDate:        date(2024, time.May, 3),
	}

	_, err := service.PublishRecurring(context.Background(), template)

	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestPublishTask(t *testing.T) {
	service, taskRepo, _, notifier := newTestService(t)

	taskRepo.EXPECT().
		GetTaskByID(10).
		Return(&domain.Task{
			ID:              10,
			Title:           "Organizar vitrine",
			Status:          domain.StatusDraft,
			CreatorID:       1,
			AssignedUserIDs: []int{4},
		}, nil)

	taskRepo.EXPECT().
		MarkPublished(10, gomock.Any()).
		Return(nil)

	notifier.EXPECT().
		NotifyUsers(gomock.Any(), []int{4}, gomock.Any()).
		Return(nil)

	task, err := service.PublishTask(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, task.Status)
	require.NotNil(t, task.PublishedAt)
}

func TestChangeStatus_NotifiesCreatorOnCompletion(t *testing.T) {
	service, taskRepo, _, notifier := newTestService(t)

	taskRepo.EXPECT().
		GetTaskByID(10).
		Return(&domain.Task{
			ID:                 10,
			Title:              "Organizar vitrine",
			Status:             domain.StatusInProgress,
			CreatorID:          1,
			AssignedUserIDs:    []int{4},
			NotifyOnCompletion: true,
		}, nil)

	taskRepo.EXPECT().
		UpdateStatus(10, domain.StatusCompleted).
		Return(nil)

	notifier.EXPECT().
		NotifyUsers(gomock.Any(), []int{1}, gomock.Any()).
		Return(nil)

	task, err := service.ChangeStatus(context.Background(), 10, domain.StatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, task.Status)
}

func TestChangeStatus_NoNotificationWhenDisabled(t *testing.T) {
	service, taskRepo, _, _ := newTestService(t)

	taskRepo.EXPECT().
		GetTaskByID(10).
		Return(&domain.Task{
			ID:        10,
			Title:     "Organizar vitrine",
			Status:    domain.StatusInProgress,
			CreatorID: 1,
		}, nil)

	taskRepo.EXPECT().
		UpdateStatus(10, domain.StatusCompleted).
		Return(nil)

	_, err := service.ChangeStatus(context.Background(), 10, domain.StatusCompleted)

	require.NoError(t, err)
}

func TestDeleteDraft_RejectsPublishedTask(t *testing.T) {
	service, taskRepo, _, _ := newTestService(t)

	taskRepo.EXPECT().
		GetTaskByID(10).
		Return(&domain.Task{
			ID:     10,
			Status: domain.StatusInProgress,
		}, nil)

	err := service.DeleteDraft(10)

	assert.ErrorIs(t, err, ErrTaskNotDraft)
}

func TestGetTask_NotFound(t *testing.T) {
	service, taskRepo, _, _ := newTestService(t)

	taskRepo.EXPECT().
		GetTaskByID(99).
		Return(nil, nil)

	_, err := service.GetTask(99)

	assert.ErrorIs(t, err, ErrTaskNotFound)
}
