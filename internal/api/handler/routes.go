package handler

import (
	"net/http"

	"github.com/vfg2006/taskboard-api/internal/api/handler/router"
	"github.com/vfg2006/taskboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/taskboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/taskboard-api/internal/usecases/notifying"
	"github.com/vfg2006/taskboard-api/internal/usecases/tasking"
	"github.com/vfg2006/taskboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Tasks(service tasking.TaskService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tasks",
			Method:      http.MethodPost,
			Handler:     CreateTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/tasks",
			Method:      http.MethodGet,
			Handler:     ListAllTasks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/tasks/active",
			Method:      http.MethodGet,
			Handler:     ListActiveTasks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tasks/calendar",
			Method:      http.MethodGet,
			Handler:     ListCalendarTasks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tasks/:id",
			Method:      http.MethodGet,
			Handler:     GetTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tasks/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/tasks/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/tasks/:id/publish",
			Method:      http.MethodPost,
			Handler:     PublishTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/tasks/:id/status",
			Method:      http.MethodPatch,
			Handler:     ChangeTaskStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tasks/recurring",
			Method:      http.MethodPost,
			Handler:     PublishRecurringTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func SalesStats(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stats",
			Method:      http.MethodGet,
			Handler:     ListSalesStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/stats",
			Method:      http.MethodPut,
			Handler:     UpsertSalesStat(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/stats/summary",
			Method:      http.MethodGet,
			Handler:     GetSalesSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/stats/suggestions",
			Method:      http.MethodGet,
			Handler:     GetSalesSuggestions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Notifications(service notifying.NotificationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/notifications/tokens",
			Method:      http.MethodPost,
			Handler:     RegisterDeviceToken(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/notifications/tokens/unregister",
			Method:      http.MethodPost,
			Handler:     UnregisterDeviceToken(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
