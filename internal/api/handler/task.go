package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/taskboard-api/internal/domain"
	"github.com/vfg2006/taskboard-api/internal/usecases/tasking"
	"github.com/vfg2006/taskboard-api/pkg/apiErrors"
	"github.com/vfg2006/taskboard-api/pkg/middleware"
	"github.com/vfg2006/taskboard-api/pkg/utils"
)

type ChangeStatusRequest struct {
	Status domain.TaskStatus `json:"status"`
}

// CreateTask cria um rascunho de tarefa
func CreateTask(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateTask")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var task *domain.Task
		if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		task.CreatorID = userClaims.UserID

		task, err := service.CreateDraft(task)
		if err != nil {
			handleTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(task); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetTask retorna uma tarefa por ID
func GetTask(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, ok := taskIDFromRequest(w, r)
		if !ok {
			return
		}

		task, err := service.GetTask(taskID)
		if err != nil {
			handleTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(task); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateTask atualiza um rascunho de tarefa
func UpdateTask(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateTask")

		taskID, ok := taskIDFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.UpdateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		req.ID = taskID

		task, err := service.UpdateDraft(&req)
		if err != nil {
			handleTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(task); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeleteTask remove um rascunho de tarefa
func DeleteTask(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteTask")

		taskID, ok := taskIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteDraft(taskID); err != nil {
			handleTaskError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// PublishTask publica um rascunho, tornando a tarefa visível aos responsáveis
func PublishTask(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PublishTask")

		taskID, ok := taskIDFromRequest(w, r)
		if !ok {
			return
		}

		task, err := service.PublishTask(r.Context(), taskID)
		if err != nil {
			handleTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(task); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ChangeTaskStatus altera o status de uma tarefa publicada
func ChangeTaskStatus(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChangeTaskStatus")

		taskID, ok := taskIDFromRequest(w, r)
		if !ok {
			return
		}

		var req ChangeStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		task, err := service.ChangeStatus(r.Context(), taskID, req.Status)
		if err != nil {
			handleTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(task); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListCalendarTasks lista as tarefas com prazo dentro da janela informada.
// Parâmetros de query: start_date e end_date (AAAA-MM-DD), user_id opcional.
func ListCalendarTasks(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startStr := r.URL.Query().Get("start_date")
		endStr := r.URL.Query().Get("end_date")
		if startStr == "" || endStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start_date e end_date são obrigatórios", nil)
			return
		}

		startDate, err := utils.ParseDate(startStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(endStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		var userID *int
		if userIDStr := r.URL.Query().Get("user_id"); userIDStr != "" {
			id, err := strconv.Atoi(userIDStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
				return
			}
			userID = &id
		}

		tasks, err := service.ListCalendar(userID, *startDate, *endDate)
		if err != nil {
			handleTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tasks); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListActiveTasks lista as tarefas publicadas e não concluídas do usuário logado
func ListActiveTasks(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		tasks, err := service.ListActive(userClaims.UserID)
		if err != nil {
			handleTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tasks); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListAllTasks lista todas as tarefas do quadro, visão restrita à gestão
func ListAllTasks(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := service.ListAll()
		if err != nil {
			handleTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tasks); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// PublishRecurringTask cria o modelo cíclico e materializa o lote de instâncias
func PublishRecurringTask(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PublishRecurringTask")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var template *domain.RecurringTemplate
		if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		template.CreatorID = userClaims.UserID

		result, err := service.PublishRecurring(r.Context(), template)
		if err != nil {
			handleTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// taskIDFromRequest extrai e valida o parâmetro :id da URL
func taskIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tarefa não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da tarefa inválido", nil)
		return 0, false
	}

	return id, true
}

// handleTaskError mapeia os erros do caso de uso de tarefas para a resposta HTTP
func handleTaskError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, tasking.ErrTaskNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTaskNotFound, "Tarefa não encontrada", nil)

	case errors.Is(err, tasking.ErrTaskNotDraft):
		apiErrors.WriteError(w, apiErrors.ErrTaskNotDraft, "Operação permitida apenas para rascunhos", nil)

	case errors.Is(err, tasking.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, tasking.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, tasking.ErrInvalidDateWindow):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateWindow, err.Error(), nil)

	case errors.Is(err, tasking.ErrTemplateCreation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar modelo de tarefa cíclica", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar tarefa", nil)
	}
}
